package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) viewFriends() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n\n")
	}

	switch {
	case m.friendsLoading:
		b.WriteString("Загрузка списка друзей...\n")
	case len(m.friends) == 0:
		b.WriteString("Друзей пока нет\n")
	default:
		b.WriteString("  │ ID     │ Имя\n")
		b.WriteString("──┼────────┼──────────────────────────────\n")
		for i, friend := range m.friends {
			marker := " "
			if i == m.friendsIdx {
				marker = ">"
			}
			b.WriteString(fmt.Sprintf("%s │ %-6d │ %s\n", marker, friend.ID, fitText(friend.Name, 30)))
		}
	}

	return renderPage("ДРУЗЬЯ", strings.TrimRight(b.String(), "\n"), "enter: написать │ a: добавить │ r: заявки │ ↑/↓: нав. │ esc: назад │ q: выход")
}
