package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/mock"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	aliceID = 10
	bobID   = 11
)

var bob = models.Peer{Target: models.UserTarget{UID: bobID}, Name: "bob"}

// recordingRenderer собирает всё, что чат вывел на экран
type recordingRenderer struct {
	mu       sync.Mutex
	history  []models.ChatLine
	messages []models.ChatLine
	errs     []error
}

func (r *recordingRenderer) RenderHistory(lines []models.ChatLine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = lines
}

func (r *recordingRenderer) RenderMessage(line models.ChatLine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, line)
}

func (r *recordingRenderer) RenderError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recordingRenderer) Messages() []models.ChatLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ChatLine(nil), r.messages...)
}

func (r *recordingRenderer) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

func (r *recordingRenderer) History() []models.ChatLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history
}

type chatFixture struct {
	svc      ChatService
	adapter  *mock.MockServerAdapter
	store    *session.Store
	tracker  *spyTracker
	renderer *recordingRenderer
	input    chan string
	stream   *io.PipeWriter
}

// newChatFixture подготавливает сессию alice и поток событий на io.Pipe.
// История и открытие потока настраиваются в каждом тесте.
func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	store := session.NewStore()
	require.NoError(t, store.Set(models.UserClaims{ID: aliceID, Name: "alice"}, "T1"))
	tracker := &spyTracker{}

	return &chatFixture{
		svc:      NewChatService(mockAdapter, store, tracker, logger.Nop()),
		adapter:  mockAdapter,
		store:    store,
		tracker:  tracker,
		renderer: &recordingRenderer{},
		input:    make(chan string),
	}
}

// expectStream отдаёт чату читающий конец трубы
func (f *chatFixture) expectStream() {
	pr, pw := io.Pipe()
	f.stream = pw
	f.adapter.EXPECT().OpenEventStream(gomock.Any(), "T1").Return(pr, nil)
}

func (f *chatFixture) expectHistory(target models.Target, history []models.HistoryMessage) {
	f.adapter.EXPECT().History(gomock.Any(), "T1", target).Return(history, nil)
}

func (f *chatFixture) open(peer models.Peer) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- f.svc.Open(context.Background(), peer, f.input, f.renderer)
	}()
	return done
}

// feed пишет кадры в поток в отдельной горутине: запись в трубу
// блокируется до чтения.
func (f *chatFixture) feed(frames ...string) {
	go func() {
		for _, frame := range frames {
			if _, err := io.WriteString(f.stream, frame); err != nil {
				return
			}
		}
	}()
}

func waitResult(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("conversation did not close")
		return nil
	}
}

func messageFrame(mid, from int64, target, content string) string {
	return fmt.Sprintf(
		"event: message\ndata: {\"ChatMessage\":{\"mid\":%d,\"payload\":{\"from_uid\":%d,\"created_at\":\"2024-09-12T23:15:05Z\",\"target\":%s,\"detail\":{\"Normal\":{\"content\":{\"content\":%q}}}}}}\n\n",
		mid, from, target, content,
	)
}

func heartbeatFrame() string {
	return "data: {\"Heartbeat\":{\"time\":\"2024-09-12T23:15:05Z\"}}\n\n"
}

func userTargetJSON(uid int64) string  { return fmt.Sprintf(`{"User":{"uid":%d}}`, uid) }
func groupTargetJSON(gid int64) string { return fmt.Sprintf(`{"Group":{"gid":%d}}`, gid) }

func historyOf(msgs ...models.HistoryMessage) []models.HistoryMessage { return msgs }

func historyMessage(mid, from int64, name, msg string) models.HistoryMessage {
	return models.HistoryMessage{
		Mid:      mid,
		Msg:      msg,
		Time:     models.Timestamp{Time: time.Date(2024, 9, 12, 23, 0, 0, 0, time.UTC)},
		FromUID:  from,
		FromName: name,
	}
}

// ── Open ─────────────────────────────────────────────────────────────────────

// N сообщений и M heartbeat-кадров дают ровно N отрисовок и N пушей
// индекса прочтения, плюс один пуш при открытии.
func TestChatService_Open_RendersMessagesAndDropsHeartbeats(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, historyOf(
		historyMessage(96, bobID, "", "hi"),
		historyMessage(97, aliceID, "", "hello"),
	))
	f.expectStream()

	done := f.open(bob)
	f.feed(
		messageFrame(98, bobID, userTargetJSON(aliceID), "how are you?"),
		heartbeatFrame(),
		messageFrame(99, bobID, userTargetJSON(aliceID), "still there?"),
		heartbeatFrame(),
		heartbeatFrame(),
		messageFrame(100, bobID, userTargetJSON(aliceID), "bye"),
		heartbeatFrame(),
	)

	require.Eventually(t, func() bool { return len(f.renderer.Messages()) == 3 }, time.Second, time.Millisecond)
	f.input <- ExitCommand
	require.NoError(t, waitResult(t, done))

	msgs := f.renderer.Messages()
	assert.Equal(t, []int64{98, 99, 100}, []int64{msgs[0].Mid, msgs[1].Mid, msgs[2].Mid})
	assert.Equal(t, "bob", msgs[0].Sender)
	assert.False(t, msgs[0].Self)

	assert.Equal(t, []pushCall{
		{Target: bob.Target, Mid: 97},
		{Target: bob.Target, Mid: 98},
		{Target: bob.Target, Mid: 99},
		{Target: bob.Target, Mid: 100},
	}, f.tracker.Calls())

	hist := f.renderer.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "bob", hist[0].Sender)
	assert.True(t, hist[1].Self)
	assert.Empty(t, f.renderer.Errors())
}

func TestChatService_Open_HeartbeatsNeverPush(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.expectStream()

	done := f.open(bob)

	// запись в трубу завершается только после чтения, так что после
	// последнего WriteString все кадры уже у читателя
	wrote := make(chan struct{})
	go func() {
		defer close(wrote)
		for i := 0; i < 5; i++ {
			if _, err := io.WriteString(f.stream, heartbeatFrame()); err != nil {
				return
			}
		}
	}()
	<-wrote

	f.input <- ExitCommand
	require.NoError(t, waitResult(t, done))

	assert.Empty(t, f.renderer.Messages())
	assert.Empty(t, f.tracker.Calls(), "пустая история и heartbeat не отмечают прочтение")
}

// exit завершает разговор, даже если сервер продолжает слать события.
func TestChatService_Open_ExitWithPendingEvents(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.expectStream()

	done := f.open(bob)
	go func() {
		for {
			if _, err := io.WriteString(f.stream, heartbeatFrame()); err != nil {
				return
			}
		}
	}()

	f.input <- "  exit  "
	require.NoError(t, waitResult(t, done))
}

func TestChatService_Open_InputClosed(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.expectStream()

	done := f.open(bob)
	close(f.input)
	require.NoError(t, waitResult(t, done))
}

func TestChatService_Open_ContextCancelled(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.expectStream()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.svc.Open(ctx, bob, f.input, f.renderer) }()

	cancel()
	require.NoError(t, waitResult(t, done))
}

func TestChatService_Open_SendsCollapsedText(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.expectStream()

	gomock.InOrder(
		f.adapter.EXPECT().SendMessage(gomock.Any(), "T1", bob.Target, "hello world").Return(nil),
		f.adapter.EXPECT().SendMessage(gomock.Any(), "T1", bob.Target, "second").
			Return(fmt.Errorf("%w: boom", adapter.ErrInternalServerError)),
		f.adapter.EXPECT().SendMessage(gomock.Any(), "T1", bob.Target, "third").Return(nil),
	)

	done := f.open(bob)
	f.input <- "  hello \n\t world  "
	f.input <- "   "
	f.input <- "second"
	f.input <- "third"
	f.input <- ExitCommand
	require.NoError(t, waitResult(t, done))

	errs := f.renderer.Errors()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrSendMessage)
	assert.ErrorIs(t, errs[0], adapter.ErrInternalServerError)
}

// Собственное сообщение, пришедшее обратно из потока, рисуется как своё.
func TestChatService_Open_SelfEcho(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.expectStream()

	done := f.open(bob)
	f.feed(messageFrame(98, aliceID, userTargetJSON(bobID), "ping"))

	require.Eventually(t, func() bool { return len(f.renderer.Messages()) == 1 }, time.Second, time.Millisecond)
	f.input <- ExitCommand
	require.NoError(t, waitResult(t, done))

	line := f.renderer.Messages()[0]
	assert.True(t, line.Self)
	assert.Empty(t, line.Sender)
	assert.Equal(t, "ping", line.Content)
	assert.Equal(t, []pushCall{{Target: bob.Target, Mid: 98}}, f.tracker.Calls())
}

func TestChatService_Open_DropsForeignAndMalformed(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.expectStream()

	done := f.open(bob)
	f.feed(
		"data: not json\n\n",
		"data: {\"Typing\":{\"uid\":11}}\n\n",
		messageFrame(50, 12, userTargetJSON(aliceID), "from carol"),
		messageFrame(51, bobID, groupTargetJSON(3), "in the group"),
		messageFrame(52, aliceID, userTargetJSON(12), "to carol"),
		messageFrame(98, bobID, userTargetJSON(aliceID), "for alice"),
	)

	require.Eventually(t, func() bool { return len(f.renderer.Messages()) == 1 }, time.Second, time.Millisecond)
	f.input <- ExitCommand
	require.NoError(t, waitResult(t, done))

	assert.Equal(t, int64(98), f.renderer.Messages()[0].Mid)
	assert.Equal(t, []pushCall{{Target: bob.Target, Mid: 98}}, f.tracker.Calls())
}

func TestChatService_Open_Group(t *testing.T) {
	f := newChatFixture(t)
	team := models.Peer{Target: models.GroupTarget{GID: 3}, Name: "team"}
	f.expectHistory(team.Target, historyOf(
		historyMessage(40, 12, "carol", "morning"),
		historyMessage(38, aliceID, "alice", "hey"),
	))
	f.expectStream()

	done := f.open(team)
	f.feed(
		messageFrame(41, 12, groupTargetJSON(3), "coffee?"),
		messageFrame(42, 13, groupTargetJSON(3), "yes"),
		messageFrame(43, 12, groupTargetJSON(4), "other group"),
	)

	require.Eventually(t, func() bool { return len(f.renderer.Messages()) == 2 }, time.Second, time.Millisecond)
	f.input <- ExitCommand
	require.NoError(t, waitResult(t, done))

	msgs := f.renderer.Messages()
	assert.Equal(t, "carol", msgs[0].Sender)
	assert.Equal(t, "#13", msgs[1].Sender)

	hist := f.renderer.History()
	require.Len(t, hist, 2)
	assert.True(t, hist[1].Self)
	assert.Empty(t, hist[1].Sender)

	// last_seen_mid открытия: максимальный mid истории
	assert.Equal(t, []pushCall{
		{Target: team.Target, Mid: 40},
		{Target: team.Target, Mid: 41},
		{Target: team.Target, Mid: 42},
	}, f.tracker.Calls())
}

func TestChatService_Open_HistoryFailureIsNotFatal(t *testing.T) {
	f := newChatFixture(t)
	f.adapter.EXPECT().History(gomock.Any(), "T1", bob.Target).
		Return(nil, fmt.Errorf("%w: boom", adapter.ErrInternalServerError))
	f.expectStream()

	done := f.open(bob)
	f.input <- ExitCommand
	require.NoError(t, waitResult(t, done))

	errs := f.renderer.Errors()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrLoadHistory)
	assert.Empty(t, f.renderer.History())
	assert.Empty(t, f.tracker.Calls())
}

func TestChatService_Open_StreamFailure(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.expectStream()

	done := f.open(bob)
	f.feed(messageFrame(98, bobID, userTargetJSON(aliceID), "last words"))
	require.Eventually(t, func() bool { return len(f.renderer.Messages()) == 1 }, time.Second, time.Millisecond)

	f.stream.CloseWithError(errors.New("connection reset"))

	err := waitResult(t, done)
	assert.ErrorIs(t, err, ErrStreamClosed)
}

func TestChatService_Open_StreamOpenFailure(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.adapter.EXPECT().OpenEventStream(gomock.Any(), "T1").
		Return(nil, fmt.Errorf("%w: expired", adapter.ErrUnauthorized))

	err := f.svc.Open(context.Background(), bob, f.input, f.renderer)
	assert.ErrorIs(t, err, ErrOpenStream)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// Выход из аккаунта закрывает открытый разговор.
func TestChatService_Open_SessionCleared(t *testing.T) {
	f := newChatFixture(t)
	f.expectHistory(bob.Target, nil)
	f.expectStream()

	done := f.open(bob)
	// дождаться, пока чат начнёт читать ввод
	f.input <- ""
	f.store.Clear()

	err := waitResult(t, done)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestChatService_Open_NoSession(t *testing.T) {
	f := newChatFixture(t)
	f.store.Clear()

	err := f.svc.Open(context.Background(), bob, f.input, f.renderer)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

// ── Friends ──────────────────────────────────────────────────────────────────

func TestChatService_Friends(t *testing.T) {
	f := newChatFixture(t)
	friends := []models.Friend{{ID: bobID, Name: "bob"}}
	f.adapter.EXPECT().Friends(gomock.Any(), "T1").Return(friends, nil)

	got, err := f.svc.Friends(context.Background())
	require.NoError(t, err)
	assert.Equal(t, friends, got)

	f.store.Clear()
	_, err = f.svc.Friends(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"  hello  ", "hello"},
		{"hello   world", "hello world"},
		{"line one\nline two\r\n\tthree", "line one line two three"},
		{" \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseWhitespace(tt.in))
		})
	}
}
