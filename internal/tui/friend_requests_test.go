package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewCall struct {
	id      int64
	approve bool
}

// fakeFriends: FriendService, отвечающий заготовленными данными
type fakeFriends struct {
	users    []models.Friend
	requests []models.FriendRequest

	searched  []string
	requested []int64
	reviewed  []reviewCall
}

func (f *fakeFriends) Find(_ context.Context, name string) ([]models.Friend, error) {
	f.searched = append(f.searched, name)
	return f.users, nil
}

func (f *fakeFriends) Request(_ context.Context, uid int64) error {
	f.requested = append(f.requested, uid)
	return nil
}

func (f *fakeFriends) Requests(context.Context) ([]models.FriendRequest, error) {
	return f.requests, nil
}

func (f *fakeFriends) Review(_ context.Context, req models.FriendRequest, approve bool) error {
	f.reviewed = append(f.reviewed, reviewCall{id: req.ID, approve: approve})
	return nil
}

func newFriendsTestModel(friends *fakeFriends) mainLoopModel {
	services := &service.ClientServices{
		Snapshot: service.NewConversationSnapshot(),
		Friends:  friends,
	}
	return newMainLoopModel(context.Background(), services, models.UserClaims{ID: 10, Name: "alice"}, &programRef{}, logger.Nop())
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	return model, cmd
}

func TestMainLoop_FindUserAndSendRequest(t *testing.T) {
	friends := &fakeFriends{users: []models.Friend{{ID: 11, Name: "bob"}, {ID: 14, Name: "bobby"}}}
	m := newFriendsTestModel(friends)

	m, _ = update(t, m, runeKey("a"))
	require.Equal(t, screenFindUser, m.screen)

	// буквы уходят в поле поиска, а не в горячие клавиши
	for _, r := range "bob" {
		m, _ = update(t, m, runeKey(string(r)))
	}
	assert.Equal(t, screenFindUser, m.screen)
	assert.Equal(t, "bob", m.find.query.Value())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.find.searching)

	m, _ = update(t, m, cmd())
	assert.Equal(t, []string{"bob"}, friends.searched)
	assert.True(t, m.find.inResults)
	assert.Contains(t, m.View(), "bobby")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, []int64{14}, friends.requested)
	assert.Equal(t, "Заявка отправлена: bobby", m.status)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenRecent, m.screen)
}

func TestMainLoop_FindUserEmptyQuery(t *testing.T) {
	m := newFriendsTestModel(&fakeFriends{})

	m, _ = update(t, m, runeKey("a"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Введите имя для поиска", m.errMsg)
}

func TestMainLoop_ReviewRequests(t *testing.T) {
	reason := "мы вместе учились"
	friends := &fakeFriends{requests: []models.FriendRequest{
		{ID: 1, RequestID: 12, RequestName: "carol", Reason: &reason, Status: models.FriendRequestWait},
		{ID: 2, RequestID: 13, RequestName: "dave", Status: models.FriendRequestApprove},
	}}
	m := newFriendsTestModel(friends)

	m, cmd := update(t, m, runeKey("r"))
	require.Equal(t, screenRequests, m.screen)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Len(t, m.requests.items, 2)
	assert.Contains(t, m.View(), "мы вместе учились")

	m, cmd = update(t, m, runeKey("y"))
	require.NotNil(t, cmd)
	m, cmd = update(t, m, cmd())
	assert.Equal(t, []reviewCall{{id: 1, approve: true}}, friends.reviewed)
	assert.Equal(t, "Заявка принята", m.status)
	assert.NotNil(t, cmd, "список заявок перезагружается")

	// рассмотренную заявку повторно не отправляем
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runeKey("n"))
	assert.Len(t, friends.reviewed, 1)
	assert.Equal(t, "Заявка уже рассмотрена", m.status)
}

func TestRenderFriendRequests(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
	reqs := []models.FriendRequest{
		{ID: 1, RequestName: "carol", CreateTime: models.Timestamp{Time: created}, Status: models.FriendRequestWait},
		{ID: 2, RequestName: "dave", Status: models.FriendRequestReject},
	}

	lines := strings.Split(strings.TrimRight(renderFriendRequests(reqs, 1), "\n"), "\n")

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "  │ carol"))
	assert.Contains(t, lines[2], "хочет добавить вас в друзья")
	assert.Contains(t, lines[2], "ожидает")
	assert.Contains(t, lines[2], "01.03.2024 12:30")
	assert.True(t, strings.HasPrefix(lines[3], "> │ dave"))
	assert.Contains(t, lines[3], "отклонена")
	assert.Contains(t, lines[3], "-")
}
