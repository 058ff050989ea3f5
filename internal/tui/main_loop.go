package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenRecent screen = iota
	screenFriends
	screenChat
	screenFindUser
	screenRequests
)

const (
	snapshotRefreshInterval = 300 * time.Millisecond
	statusTTL               = 3 * time.Second
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	claims   models.UserClaims
	program  *programRef
	logger   *logger.Logger

	screen screen
	width  int
	height int

	recent recentView

	friends        []models.Friend
	friendsIdx     int
	friendsLoading bool

	find         findUserView
	requests     requestsView
	friendReturn screen

	chat       *chatView
	chatSeq    int
	chatReturn screen

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, claims models.UserClaims, program *programRef, log *logger.Logger) mainLoopModel {
	m := mainLoopModel{
		ctx:      ctx,
		services: services,
		claims:   claims,
		program:  program,
		logger:   log,
		screen:   screenRecent,
		width:    80,
		height:   24,
	}
	m.recent.refresh(services.Snapshot)
	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return tickSnapshot()
}

func tickSnapshot() tea.Cmd {
	return tea.Tick(snapshotRefreshInterval, func(time.Time) tea.Msg { return snapshotTickMsg{} })
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.chat != nil {
			m.chat.resize(m.width, m.height)
		}
		return m, nil
	case snapshotTickMsg:
		m.recent.refresh(m.services.Snapshot)
		return m, tickSnapshot()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case friendsLoadedMsg:
		m.friendsLoading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.friends = msg.friends
		if m.friendsIdx >= len(m.friends) {
			m.friendsIdx = max(len(m.friends)-1, 0)
		}
		return m, nil
	case chatHistoryMsg:
		if m.chat != nil && m.chat.id == msg.id {
			m.chat.setHistory(msg.lines)
		}
		return m, nil
	case chatLineMsg:
		if m.chat != nil && m.chat.id == msg.id {
			m.chat.appendLine(msg.line)
		}
		return m, nil
	case chatErrorMsg:
		if m.chat != nil && m.chat.id == msg.id {
			m.chat.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case chatClosedMsg:
		return m.onChatClosed(msg)
	case usersFoundMsg:
		return m.onUsersFound(msg)
	case friendRequestSentMsg:
		return m.onFriendRequestSent(msg)
	case friendRequestsLoadedMsg:
		return m.onRequestsLoaded(msg)
	case friendRequestReviewedMsg:
		return m.onRequestReviewed(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		switch {
		case m.screen == screenChat && m.chat != nil:
			m.chat.input, cmd = m.chat.input.Update(msg)
		case m.screen == screenFindUser:
			m.find.query, cmd = m.find.query.Update(msg)
		}
		return m, cmd
	}

	if keyMsg.String() == "ctrl+c" {
		m.closeChat()
		return m, tea.Quit
	}

	switch m.screen {
	case screenChat:
		return m.updateChat(keyMsg)
	case screenFriends:
		return m.updateFriends(keyMsg)
	case screenFindUser:
		return m.updateFindUser(keyMsg)
	case screenRequests:
		return m.updateRequests(keyMsg)
	default:
		return m.updateRecent(keyMsg)
	}
}

func (m mainLoopModel) updateRecent(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.services.Navigator.Move(-1)
		m.recent.refresh(m.services.Snapshot)
	case key.Matches(keyMsg, keys.down):
		m.services.Navigator.Move(1)
		m.recent.refresh(m.services.Snapshot)
	case key.Matches(keyMsg, keys.enter):
		selected, ok := m.services.Snapshot.Selected()
		if !ok {
			m.status = "Нет разговоров"
			return m, clearStatusAfter()
		}
		peer, err := models.ConversationPeer(selected)
		if err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		return m.openChat(peer, screenRecent)
	case key.Matches(keyMsg, keys.friends):
		m.screen = screenFriends
		m.friendsLoading = true
		m.errMsg = ""
		return m, m.cmdLoadFriends()
	case key.Matches(keyMsg, keys.addFriend):
		return m.openFindUser(screenRecent)
	case key.Matches(keyMsg, keys.requests):
		return m.openRequests(screenRecent)
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateFriends(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenRecent
		m.errMsg = ""
	case key.Matches(keyMsg, keys.up):
		if m.friendsIdx > 0 {
			m.friendsIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.friendsIdx < len(m.friends)-1 {
			m.friendsIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.friendsIdx >= len(m.friends) {
			m.status = "Список друзей пуст"
			return m, clearStatusAfter()
		}
		friend := m.friends[m.friendsIdx]
		return m.openChat(models.Peer{Target: models.UserTarget{UID: friend.ID}, Name: friend.Name}, screenFriends)
	case key.Matches(keyMsg, keys.addFriend):
		return m.openFindUser(screenFriends)
	case key.Matches(keyMsg, keys.requests):
		return m.openRequests(screenFriends)
	}

	return m, nil
}

func (m mainLoopModel) updateChat(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.chat == nil {
		m.screen = m.chatReturn
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.closeChat()
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		text, ok := m.chat.lastContent()
		if !ok {
			m.status = "Нечего копировать"
			return m, clearStatusAfter()
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.chat.errMsg = "Ошибка копирования: " + err.Error()
			return m, nil
		}
		m.status = "Скопировано"
		return m, clearStatusAfter()
	case key.Matches(keyMsg, keys.pageUp), key.Matches(keyMsg, keys.pageDown):
		var cmd tea.Cmd
		m.chat.viewport, cmd = m.chat.viewport.Update(keyMsg)
		return m, cmd
	case key.Matches(keyMsg, keys.enter):
		line := m.chat.input.Value()
		m.chat.input.SetValue("")
		if !m.chat.submit(line) {
			m.status = "Сообщения отправляются слишком часто"
			return m, clearStatusAfter()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(keyMsg)
	return m, cmd
}

// openChat starts the conversation loop for peer in the background. Lines
// typed on the chat screen are fed to it through a buffered channel.
func (m mainLoopModel) openChat(peer models.Peer, from screen) (tea.Model, tea.Cmd) {
	m.closeChat()

	m.chatSeq++
	ctx, cancel := context.WithCancel(m.ctx)
	m.chat = newChatView(m.chatSeq, peer, cancel, m.width, m.height)
	m.chatReturn = from
	m.screen = screenChat
	m.errMsg = ""

	renderer := &chatRenderer{id: m.chat.id, send: m.program.Send}
	chat := m.services.ChatService
	id, input := m.chat.id, m.chat.outbox

	return m, tea.Batch(textinput.Blink, func() tea.Msg {
		err := chat.Open(ctx, peer, input, renderer)
		return chatClosedMsg{id: id, err: err}
	})
}

// closeChat leaves the chat screen. The loop itself stops asynchronously and
// reports through chatClosedMsg.
func (m *mainLoopModel) closeChat() {
	if m.chat == nil {
		return
	}
	m.chat.cancel()
	m.chat = nil
	m.screen = m.chatReturn
}

func (m mainLoopModel) onChatClosed(msg chatClosedMsg) (tea.Model, tea.Cmd) {
	if m.chat != nil && m.chat.id == msg.id {
		m.closeChat()
	}

	switch {
	case msg.err == nil:
		return m, nil
	case errors.Is(msg.err, session.ErrNoSession):
		// the session is gone, so is every screen that depends on it
		m.logout = true
		return m, tea.Quit
	default:
		m.logger.Warn().Err(msg.err).Int("chat", msg.id).Msg("conversation ended with error")
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}
}

func (m mainLoopModel) cmdLoadFriends() tea.Cmd {
	ctx := m.ctx
	chat := m.services.ChatService

	return func() tea.Msg {
		friends, err := chat.Friends(ctx)
		return friendsLoadedMsg{friends: friends, err: err}
	}
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenChat:
		if m.chat != nil {
			return m.chat.View(m.status)
		}
	case screenFriends:
		return m.viewFriends()
	case screenFindUser:
		return m.viewFindUser()
	case screenRequests:
		return m.viewRequests()
	}
	return m.viewRecent()
}
