package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/internal/sse"
	"github.com/MKhiriev/go-chat-client/models"
	"golang.org/x/sync/errgroup"
)

// ExitCommand typed as a whole line leaves the conversation.
const ExitCommand = "exit"

type chatService struct {
	adapter adapter.ServerAdapter
	session *session.Store
	tracker ReadIndexTracker

	logger *logger.Logger
}

// NewChatService creates a ChatService.
func NewChatService(serverAdapter adapter.ServerAdapter, store *session.Store, tracker ReadIndexTracker, log *logger.Logger) ChatService {
	return &chatService{
		adapter: serverAdapter,
		session: store,
		tracker: tracker,
		logger:  log.Component("chat"),
	}
}

// Friends implements ChatService.
func (s *chatService) Friends(ctx context.Context) ([]models.Friend, error) {
	token, err := s.session.Token()
	if err != nil {
		return nil, err
	}

	friends, err := s.adapter.Friends(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("load friends: %w", err)
	}
	return friends, nil
}

// conversation is the state of one open chat. It is only touched by the loop
// goroutine.
type conversation struct {
	peer     models.Peer
	selfID   int64
	renderer ChatRenderer

	lastSeenMid int64
	// names of group members seen in the history, by uid
	names map[int64]string
}

// Open implements ChatService.
//
// Opening a conversation fetches the history, marks it read up to its last
// message and attaches to the event stream. Inbound events and input lines
// are then handled one at a time by a single loop; the stream is read by a
// separate goroutine that only decodes frames.
func (s *chatService) Open(ctx context.Context, peer models.Peer, input <-chan string, renderer ChatRenderer) error {
	claims, token, err := s.session.Snapshot()
	if err != nil {
		return err
	}
	sessionDone := s.session.Done()
	log := s.logger.With().Str("peer", peer.Target.Key()).Logger()

	conv := &conversation{
		peer:     peer,
		selfID:   claims.ID,
		renderer: renderer,
		names:    make(map[int64]string),
	}

	// a missing history is reported but does not prevent chatting
	history, err := s.adapter.History(ctx, token, peer.Target)
	if err != nil {
		log.Err(err).Msg("history fetch failed")
		renderer.RenderError(fmt.Errorf("%w: %w", ErrLoadHistory, err))
		history = nil
	}
	renderer.RenderHistory(conv.historyLines(history))

	if len(history) > 0 {
		conv.lastSeenMid = lastMid(history)
		s.tracker.Push(peer.Target, conv.lastSeenMid)
	}

	streamCtx, cancelStream := context.WithCancel(ctx)
	defer cancelStream()

	body, err := s.adapter.OpenEventStream(streamCtx, token)
	if err != nil {
		log.Err(err).Msg("event stream open failed")
		return fmt.Errorf("%w: %w", ErrOpenStream, err)
	}

	g, gctx := errgroup.WithContext(streamCtx)
	events := make(chan models.InboundEvent)

	g.Go(func() error {
		defer close(events)
		return s.readEvents(gctx, body, events)
	})

	g.Go(func() error {
		// leaving the loop tears the stream down so the reader unblocks;
		// the context is cancelled before the body is closed
		defer body.Close()
		defer cancelStream()
		return s.loop(gctx, conv, events, input, sessionDone)
	})

	err = g.Wait()
	switch {
	case err == nil:
		log.Info().Int64("last_seen_mid", conv.lastSeenMid).Msg("conversation closed")
		return nil
	case errors.Is(err, session.ErrNoSession):
		log.Info().Msg("session cleared, conversation closed")
	default:
		log.Err(err).Msg("conversation aborted")
	}
	return err
}

func (s *chatService) loop(ctx context.Context, conv *conversation, events <-chan models.InboundEvent, input <-chan string, sessionDone <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sessionDone:
			return session.ErrNoSession
		case event, ok := <-events:
			if !ok {
				// the reader has returned; its error is reported by the group
				return nil
			}
			s.handleEvent(conv, event)
		case line, ok := <-input:
			if !ok {
				return nil
			}
			if s.handleInput(ctx, conv, line) {
				return nil
			}
		}
	}
}

func (s *chatService) handleEvent(conv *conversation, event models.InboundEvent) {
	switch ev := event.(type) {
	case models.Heartbeat:
		// liveness only
	case models.ChatMessage:
		if !conv.includes(ev) {
			s.logger.Debug().Int64("mid", ev.Mid).Msg("message for another conversation dropped")
			return
		}

		conv.renderer.RenderMessage(conv.eventLine(ev))
		conv.lastSeenMid = ev.Mid
		s.tracker.Push(conv.peer.Target, ev.Mid)
	}
}

// handleInput reports whether the loop must stop.
func (s *chatService) handleInput(ctx context.Context, conv *conversation, line string) bool {
	text := strings.TrimSpace(line)
	switch text {
	case ExitCommand:
		return true
	case "":
		return false
	}

	token, err := s.session.Token()
	if err != nil {
		conv.renderer.RenderError(err)
		return false
	}

	if err = s.adapter.SendMessage(ctx, token, conv.peer.Target, CollapseWhitespace(text)); err != nil {
		s.logger.Warn().Err(err).Str("peer", conv.peer.Target.Key()).Msg("send failed")
		conv.renderer.RenderError(fmt.Errorf("%w: %w", ErrSendMessage, err))
	}
	return false
}

func (s *chatService) readEvents(ctx context.Context, body io.Reader, events chan<- models.InboundEvent) error {
	reader := sse.NewReader(body)

	for {
		frame, err := reader.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%w: %w", ErrStreamClosed, err)
		}

		event, err := models.DecodeInboundEvent([]byte(frame.Data))
		if err != nil {
			s.logger.Warn().Err(err).Str("data", frame.Data).Msg("malformed event dropped")
			continue
		}

		select {
		case events <- event:
		case <-ctx.Done():
			return nil
		}
	}
}

// includes reports whether msg belongs to this conversation: a group message
// posted to the open group, or a direct message between the user and the
// peer in either direction.
func (c *conversation) includes(msg models.ChatMessage) bool {
	switch peer := c.peer.Target.(type) {
	case models.GroupTarget:
		return models.SameTarget(msg.Target, peer)
	case models.UserTarget:
		to, ok := msg.Target.(models.UserTarget)
		if !ok {
			return false
		}
		return (msg.From == peer.UID && to.UID == c.selfID) ||
			(msg.From == c.selfID && to.UID == peer.UID)
	default:
		return false
	}
}

func (c *conversation) historyLines(history []models.HistoryMessage) []models.ChatLine {
	lines := make([]models.ChatLine, 0, len(history))
	for _, m := range history {
		if m.FromName != "" {
			c.names[m.FromUID] = m.FromName
		}
		lines = append(lines, models.ChatLine{
			Mid:     m.Mid,
			FromUID: m.FromUID,
			Sender:  c.senderName(m.FromUID, m.FromName),
			Self:    m.FromUID == c.selfID,
			Time:    m.Time.Time,
			Content: m.Msg,
		})
	}
	return lines
}

func (c *conversation) eventLine(msg models.ChatMessage) models.ChatLine {
	return models.ChatLine{
		Mid:     msg.Mid,
		FromUID: msg.From,
		Sender:  c.senderName(msg.From, ""),
		Self:    msg.From == c.selfID,
		Time:    msg.CreatedAt,
		Content: msg.Content,
	}
}

// senderName resolves the display name of uid. Messages authored by the
// logged-in user get an empty name.
func (c *conversation) senderName(uid int64, known string) string {
	if uid == c.selfID {
		return ""
	}
	if known != "" {
		return known
	}
	if peer, ok := c.peer.Target.(models.UserTarget); ok && peer.UID == uid {
		return c.peer.Name
	}
	if name, ok := c.names[uid]; ok {
		return name
	}
	return fmt.Sprintf("#%d", uid)
}

func lastMid(history []models.HistoryMessage) int64 {
	var last int64
	for _, m := range history {
		if m.Mid > last {
			last = m.Mid
		}
	}
	return last
}

// CollapseWhitespace trims text and replaces every run of whitespace,
// including line breaks, with a single space.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
