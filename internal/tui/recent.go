package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/models"
)

// recentView is the render-side copy of the conversation snapshot.
type recentView struct {
	items   []models.ConversationSummary
	cursor  int
	version uint64
	loaded  bool
}

// refresh copies the snapshot when a new list was published or the cursor
// moved.
func (r *recentView) refresh(snapshot *service.ConversationSnapshot) {
	items, cursor, version := snapshot.View()
	if r.loaded && version == r.version && cursor == r.cursor {
		return
	}
	r.items, r.cursor, r.version = items, cursor, version
	r.loaded = r.loaded || version > 0
}

func (m mainLoopModel) viewRecent() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Пользователь: %s (#%d)\n", m.claims.Name, m.claims.ID))
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}
	b.WriteString("\n")

	switch {
	case !m.recent.loaded:
		b.WriteString("Загрузка разговоров...\n")
	case len(m.recent.items) == 0:
		b.WriteString("Разговоров пока нет\n")
	default:
		b.WriteString(renderConversationTable(m.recent.items, m.recent.cursor))
	}

	return renderPage(
		"НЕДАВНИЕ РАЗГОВОРЫ",
		strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ ↑/↓: нав. │ f: друзья │ a: добавить │ r: заявки │ l: выйти из аккаунта │ q: выход",
	)
}

func renderConversationTable(items []models.ConversationSummary, cursor int) string {
	var b strings.Builder

	b.WriteString("  │ Собеседник           │ Новых │ Время │ Последнее сообщение\n")
	b.WriteString("──┼──────────────────────┼───────┼───────┼──────────────────────────────\n")

	for i, item := range items {
		marker := " "
		if i == cursor {
			marker = ">"
		}

		unread := ""
		if n := conversationUnread(item); n > 0 {
			unread = unreadStyle.Render(fmt.Sprintf("%d", n))
		}

		b.WriteString(fmt.Sprintf("%s │ %s │ %s │ %s │ %s\n",
			marker,
			padRight(fitText(conversationTitle(item), 20), 20),
			padRight(unread, 5),
			padRight(formatActivity(models.LastActivity(item)), 5),
			fitText(conversationPreview(item), 40),
		))
	}

	return b.String()
}

func conversationTitle(c models.ConversationSummary) string {
	switch v := c.(type) {
	case models.UserConversation:
		return valueOrDash(v.UserName)
	case models.GroupConversation:
		return "[G] " + valueOrDash(v.GroupName)
	default:
		return "?"
	}
}

func conversationPreview(c models.ConversationSummary) string {
	switch v := c.(type) {
	case models.UserConversation:
		return oneLine(v.Msg)
	case models.GroupConversation:
		return valueOrDash(v.UserName) + ": " + oneLine(v.Msg)
	default:
		return ""
	}
}

func conversationUnread(c models.ConversationSummary) int64 {
	var unread *models.Unread
	switch v := c.(type) {
	case models.UserConversation:
		unread = v.Unread
	case models.GroupConversation:
		unread = v.Unread
	}
	if unread == nil {
		return 0
	}
	return int64(*unread)
}

func formatActivity(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("15:04")
}

func oneLine(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
