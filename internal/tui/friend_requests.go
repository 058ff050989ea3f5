package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// findUserView is the "add friend" screen: a name query and its matches.
type findUserView struct {
	query     textinput.Model
	results   []models.Friend
	idx       int
	inResults bool
	searching bool
	searched  bool
}

func newFindUserView() findUserView {
	query := textinput.New()
	query.Placeholder = "имя пользователя"
	query.CharLimit = 64
	query.Width = 40
	query.Focus()

	return findUserView{query: query}
}

func (v *findUserView) focusQuery() {
	v.inResults = false
	v.query.Focus()
}

func (v *findUserView) focusResults() {
	if len(v.results) == 0 {
		return
	}
	v.inResults = true
	v.query.Blur()
}

// requestsView lists friend requests addressed to the user.
type requestsView struct {
	items   []models.FriendRequest
	idx     int
	loading bool
}

func (v *requestsView) selected() (models.FriendRequest, bool) {
	if v.idx < 0 || v.idx >= len(v.items) {
		return models.FriendRequest{}, false
	}
	return v.items[v.idx], true
}

func (m mainLoopModel) openFindUser(from screen) (tea.Model, tea.Cmd) {
	m.find = newFindUserView()
	m.friendReturn = from
	m.screen = screenFindUser
	m.errMsg = ""
	return m, textinput.Blink
}

func (m mainLoopModel) openRequests(from screen) (tea.Model, tea.Cmd) {
	m.requests = requestsView{loading: true}
	m.friendReturn = from
	m.screen = screenRequests
	m.errMsg = ""
	return m, m.cmdLoadRequests()
}

func (m mainLoopModel) updateFindUser(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = m.friendReturn
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		if m.find.inResults {
			m.find.focusQuery()
		} else {
			m.find.focusResults()
		}
		return m, nil
	}

	if !m.find.inResults {
		if key.Matches(keyMsg, keys.enter) {
			name := strings.TrimSpace(m.find.query.Value())
			if name == "" {
				m.errMsg = "Введите имя для поиска"
				return m, nil
			}
			m.find.searching = true
			m.errMsg = ""
			return m, m.cmdFindUsers(name)
		}

		var cmd tea.Cmd
		m.find.query, cmd = m.find.query.Update(keyMsg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.find.idx > 0 {
			m.find.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.find.idx < len(m.find.results)-1 {
			m.find.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.find.idx >= len(m.find.results) {
			return m, nil
		}
		return m, m.cmdSendFriendRequest(m.find.results[m.find.idx])
	}

	return m, nil
}

func (m mainLoopModel) updateRequests(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.screen = m.friendReturn
		m.errMsg = ""
	case key.Matches(keyMsg, keys.up):
		if m.requests.idx > 0 {
			m.requests.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.requests.idx < len(m.requests.items)-1 {
			m.requests.idx++
		}
	case key.Matches(keyMsg, keys.approve), key.Matches(keyMsg, keys.reject):
		req, ok := m.requests.selected()
		if !ok {
			return m, nil
		}
		if !req.Status.Pending() {
			m.status = "Заявка уже рассмотрена"
			return m, clearStatusAfter()
		}
		return m, m.cmdReviewRequest(req, key.Matches(keyMsg, keys.approve))
	}

	return m, nil
}

func (m mainLoopModel) onUsersFound(msg usersFoundMsg) (tea.Model, tea.Cmd) {
	m.find.searching = false
	m.find.searched = true
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.errMsg = ""
	m.find.results = msg.users
	m.find.idx = 0
	m.find.focusResults()
	return m, nil
}

func (m mainLoopModel) onFriendRequestSent(msg friendRequestSentMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}
	m.errMsg = ""
	m.status = "Заявка отправлена: " + msg.name
	return m, clearStatusAfter()
}

func (m mainLoopModel) onRequestsLoaded(msg friendRequestsLoadedMsg) (tea.Model, tea.Cmd) {
	m.requests.loading = false
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}
	m.errMsg = ""
	m.requests.items = msg.requests
	if m.requests.idx >= len(msg.requests) {
		m.requests.idx = max(len(msg.requests)-1, 0)
	}
	return m, nil
}

func (m mainLoopModel) onRequestReviewed(msg friendRequestReviewedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.errMsg = ""
	m.status = "Заявка отклонена"
	if msg.approved {
		m.status = "Заявка принята"
	}
	m.requests.loading = true
	return m, tea.Batch(clearStatusAfter(), m.cmdLoadRequests())
}

func (m mainLoopModel) cmdFindUsers(name string) tea.Cmd {
	ctx, friends := m.ctx, m.services.Friends
	return func() tea.Msg {
		users, err := friends.Find(ctx, name)
		return usersFoundMsg{users: users, err: err}
	}
}

func (m mainLoopModel) cmdSendFriendRequest(user models.Friend) tea.Cmd {
	ctx, friends := m.ctx, m.services.Friends
	return func() tea.Msg {
		err := friends.Request(ctx, user.ID)
		return friendRequestSentMsg{name: user.Name, err: err}
	}
}

func (m mainLoopModel) cmdLoadRequests() tea.Cmd {
	ctx, friends := m.ctx, m.services.Friends
	return func() tea.Msg {
		reqs, err := friends.Requests(ctx)
		return friendRequestsLoadedMsg{requests: reqs, err: err}
	}
}

func (m mainLoopModel) cmdReviewRequest(req models.FriendRequest, approve bool) tea.Cmd {
	ctx, friends := m.ctx, m.services.Friends
	return func() tea.Msg {
		err := friends.Review(ctx, req, approve)
		return friendRequestReviewedMsg{approved: approve, err: err}
	}
}

func (m mainLoopModel) viewFindUser() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n\n")
	}

	b.WriteString("Имя: " + m.find.query.View() + "\n\n")

	switch {
	case m.find.searching:
		b.WriteString("Поиск...\n")
	case !m.find.searched:
	case len(m.find.results) == 0:
		b.WriteString("Никого не нашлось\n")
	default:
		b.WriteString(renderUserMatches(m.find.results, m.find.idx, m.find.inResults))
	}

	hotKeys := "enter: искать │ tab: к результатам │ esc: назад"
	if m.find.inResults {
		hotKeys = "enter: отправить заявку │ ↑/↓: нав. │ tab: к поиску │ esc: назад │ q: выход"
	}
	return renderPage("ДОБАВИТЬ ДРУГА", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func renderUserMatches(users []models.Friend, cursor int, active bool) string {
	var b strings.Builder
	b.WriteString("  │ ID     │ Имя\n")
	b.WriteString("──┼────────┼──────────────────────────────\n")
	for i, user := range users {
		marker := " "
		if active && i == cursor {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("%s │ %-6d │ %s\n", marker, user.ID, fitText(user.Name, 30)))
	}
	return b.String()
}

func (m mainLoopModel) viewRequests() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n\n")
	}

	switch {
	case m.requests.loading:
		b.WriteString("Загрузка заявок...\n")
	case len(m.requests.items) == 0:
		b.WriteString("Заявок в друзья нет\n")
	default:
		b.WriteString(renderFriendRequests(m.requests.items, m.requests.idx))
	}

	return renderPage(
		"ЗАЯВКИ В ДРУЗЬЯ",
		strings.TrimRight(b.String(), "\n"),
		"y: принять │ n: отклонить │ ↑/↓: нав. │ esc: назад │ q: выход",
	)
}

func renderFriendRequests(reqs []models.FriendRequest, cursor int) string {
	var b strings.Builder
	b.WriteString("  │ Имя                  │ Сообщение                      │ Статус       │ Дата\n")
	b.WriteString("──┼──────────────────────┼────────────────────────────────┼──────────────┼────────────────\n")
	for i, req := range reqs {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("%s │ %s │ %s │ %s │ %s\n",
			marker,
			padRight(fitText(req.RequestName, 20), 20),
			padRight(fitText(oneLine(requestReason(req)), 30), 30),
			padRight(requestStatusLabel(req.Status), 12),
			formatRequestDate(req.CreateTime.Time),
		))
	}
	return b.String()
}

func formatRequestDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02.01.2006 15:04")
}

func requestReason(req models.FriendRequest) string {
	if req.Reason == nil || strings.TrimSpace(*req.Reason) == "" {
		return "хочет добавить вас в друзья"
	}
	return *req.Reason
}

func requestStatusLabel(status models.FriendRequestStatus) string {
	switch status {
	case models.FriendRequestWait:
		return "ожидает"
	case models.FriendRequestApprove:
		return "принята"
	case models.FriendRequestReject:
		return "отклонена"
	default:
		return string(status)
	}
}
