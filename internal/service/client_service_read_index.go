package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/models"
)

type readIndexTracker struct {
	adapter adapter.ServerAdapter
	session *session.Store

	wg     sync.WaitGroup
	logger *logger.Logger
}

// NewReadIndexTracker creates a ReadIndexTracker.
func NewReadIndexTracker(serverAdapter adapter.ServerAdapter, store *session.Store, log *logger.Logger) ReadIndexTracker {
	return &readIndexTracker{
		adapter: serverAdapter,
		session: store,
		logger:  log.Component("read-index"),
	}
}

// Push implements ReadIndexTracker. The token is taken from the session at
// call time; without a session the push is skipped.
func (t *readIndexTracker) Push(target models.Target, mid int64) {
	if target == nil {
		return
	}

	token, err := t.session.Token()
	if err != nil {
		t.logger.Debug().Err(err).Msg("read index skipped")
		return
	}

	update := models.ReadIndexUpdate{Target: target, Mid: mid}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		if err := t.adapter.PutReadIndex(context.Background(), token, update); err != nil {
			t.logger.Warn().Err(err).
				Str("peer", target.Key()).
				Int64("mid", mid).
				Msg("read index push failed")
		}
	}()
}

// Wait implements ReadIndexTracker.
func (t *readIndexTracker) Wait() {
	t.wg.Wait()
}
