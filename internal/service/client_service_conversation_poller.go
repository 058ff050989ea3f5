package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/session"
)

const (
	defaultPollInterval   = 5 * time.Second
	defaultRecentPageSize = 100
)

type conversationPoller struct {
	adapter  adapter.ServerAdapter
	session  *session.Store
	snapshot *ConversationSnapshot
	// cache is optional.
	cache ConversationCache

	interval time.Duration
	pageSize int

	job    periodicJob
	logger *logger.Logger
}

// NewConversationPoller creates a ConversationPoller publishing into snapshot.
// Zero or negative interval and pageSize fall back to 5 seconds and 100
// entries. cache may be nil.
func NewConversationPoller(
	serverAdapter adapter.ServerAdapter,
	store *session.Store,
	snapshot *ConversationSnapshot,
	cache ConversationCache,
	interval time.Duration,
	pageSize int,
	log *logger.Logger,
) ConversationPoller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if pageSize <= 0 {
		pageSize = defaultRecentPageSize
	}

	return &conversationPoller{
		adapter:  serverAdapter,
		session:  store,
		snapshot: snapshot,
		cache:    cache,
		interval: interval,
		pageSize: pageSize,
		logger:   log.Component("conversation-poller"),
	}
}

// PollOnce implements ConversationPoller.
func (p *conversationPoller) PollOnce(ctx context.Context) error {
	claims, token, epoch, err := p.session.Lease()
	if err != nil {
		return err
	}

	items, err := p.adapter.RecentConversations(ctx, token, p.pageSize)
	if err != nil {
		return fmt.Errorf("fetch recent conversations: %w", err)
	}

	// the list belongs to the session that fetched it
	if !p.session.IfCurrent(epoch, func() { p.snapshot.Replace(items) }) {
		p.logger.Debug().Int64("uid", claims.ID).Msg("session ended during poll, list dropped")
		return session.ErrNoSession
	}

	if p.cache != nil {
		if err = p.cache.SaveConversations(ctx, claims.ID, items); err != nil {
			p.logger.Warn().Err(err).Int64("uid", claims.ID).Msg("unable to cache conversations")
		}
	}

	return nil
}

// Seed implements ConversationPoller.
func (p *conversationPoller) Seed(ctx context.Context, userID int64) error {
	if p.cache == nil {
		return nil
	}

	items, err := p.cache.LoadConversations(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cached conversations: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	p.snapshot.Replace(items)
	return nil
}

// Start implements ConversationPoller.
func (p *conversationPoller) Start(ctx context.Context) {
	p.job.start(ctx, p.interval, p.session.Done(), true, func(ctx context.Context) bool {
		err := p.PollOnce(ctx)
		switch {
		case err == nil:
		case errors.Is(err, session.ErrNoSession):
			p.logger.Info().Msg("session cleared, poller stops")
			return false
		default:
			// stale but available: the previous snapshot stays published
			p.logger.Warn().Err(err).Msg("conversation poll failed")
		}
		return true
	})
}

// Stop implements ConversationPoller.
func (p *conversationPoller) Stop() {
	p.job.stop()
}
