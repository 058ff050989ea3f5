package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// lines typed faster than the conversation loop sends them are buffered up
// to this many
const chatOutboxSize = 32

// chatRenderer forwards what the conversation loop renders to the program.
type chatRenderer struct {
	id   int
	send func(tea.Msg)
}

var _ service.ChatRenderer = (*chatRenderer)(nil)

func (r *chatRenderer) RenderHistory(lines []models.ChatLine) {
	r.send(chatHistoryMsg{id: r.id, lines: lines})
}

func (r *chatRenderer) RenderMessage(line models.ChatLine) {
	r.send(chatLineMsg{id: r.id, line: line})
}

func (r *chatRenderer) RenderError(err error) {
	r.send(chatErrorMsg{id: r.id, err: err})
}

type chatView struct {
	id     int
	peer   models.Peer
	outbox chan string
	cancel context.CancelFunc

	lines    []models.ChatLine
	loading  bool
	errMsg   string
	input    textinput.Model
	viewport viewport.Model
}

func newChatView(id int, peer models.Peer, cancel context.CancelFunc, width, height int) *chatView {
	input := textinput.New()
	input.Placeholder = "сообщение, " + service.ExitCommand + " для выхода"
	input.CharLimit = 4096
	input.Focus()

	c := &chatView{
		id:       id,
		peer:     peer,
		outbox:   make(chan string, chatOutboxSize),
		cancel:   cancel,
		loading:  true,
		input:    input,
		viewport: viewport.New(width, height),
	}
	c.resize(width, height)
	return c
}

// resize leaves room for the page frame, the input line and the status.
func (c *chatView) resize(width, height int) {
	c.viewport.Width = max(width-4, 20)
	c.viewport.Height = max(height-12, 5)
	c.input.Width = max(width-10, 20)
	c.refresh()
}

func (c *chatView) setHistory(lines []models.ChatLine) {
	c.loading = false
	c.lines = append([]models.ChatLine(nil), lines...)
	c.refresh()
}

func (c *chatView) appendLine(line models.ChatLine) {
	c.loading = false
	c.lines = append(c.lines, line)
	c.refresh()
}

func (c *chatView) refresh() {
	var b strings.Builder
	for i, line := range c.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatChatLine(line))
	}
	c.viewport.SetContent(b.String())
	c.viewport.GotoBottom()
}

// submit queues a typed line for the conversation loop. It never blocks and
// reports false when the queue is full.
func (c *chatView) submit(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	select {
	case c.outbox <- line:
		c.errMsg = ""
		return true
	default:
		return false
	}
}

func (c *chatView) lastContent() (string, bool) {
	if len(c.lines) == 0 {
		return "", false
	}
	return c.lines[len(c.lines)-1].Content, true
}

func (c *chatView) View(status string) string {
	var b strings.Builder

	if c.loading {
		b.WriteString("Загрузка истории...\n")
	} else if len(c.lines) == 0 {
		b.WriteString("Сообщений пока нет\n")
	} else {
		b.WriteString(c.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n> ")
	b.WriteString(c.input.View())
	b.WriteString("\n")

	if status != "" {
		b.WriteString("\nСтатус: ")
		b.WriteString(status)
		b.WriteString("\n")
	}
	if c.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + c.errMsg))
		b.WriteString("\n")
	}

	return renderPage(
		chatTitle(c.peer),
		strings.TrimRight(b.String(), "\n"),
		"enter: отправить │ esc: назад │ pgup/pgdown: прокрутка │ ctrl+y: копировать",
	)
}

func chatTitle(peer models.Peer) string {
	switch peer.Target.(type) {
	case models.GroupTarget:
		return "ГРУППА " + valueOrDash(peer.Name)
	default:
		return "ЧАТ С " + valueOrDash(peer.Name)
	}
}

func formatChatLine(line models.ChatLine) string {
	stamp := "--:--"
	if !line.Time.IsZero() {
		stamp = line.Time.Local().Format("15:04")
	}

	if line.Self {
		return fmt.Sprintf("[%s] %s: %s", stamp, selfStyle.Render("вы"), line.Content)
	}
	return fmt.Sprintf("[%s] %s: %s", stamp, senderStyle.Render(line.Sender), line.Content)
}
