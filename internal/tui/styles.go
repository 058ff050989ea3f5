package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selfStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	senderStyle = lipgloss.NewStyle().Bold(true)
	unreadStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)
