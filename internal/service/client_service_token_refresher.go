package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/internal/utils"
)

const defaultRenewInterval = 60 * time.Second

type tokenRefresher struct {
	adapter  adapter.ServerAdapter
	session  *session.Store
	signKey  string
	interval time.Duration

	job    periodicJob
	logger *logger.Logger
}

// NewTokenRefresher creates a TokenRefresher renewing every interval,
// defaulting to one minute if interval is zero or negative. It is idle until
// Start is called.
func NewTokenRefresher(serverAdapter adapter.ServerAdapter, store *session.Store, signKey string, interval time.Duration, log *logger.Logger) TokenRefresher {
	if interval <= 0 {
		interval = defaultRenewInterval
	}

	return &tokenRefresher{
		adapter:  serverAdapter,
		session:  store,
		signKey:  signKey,
		interval: interval,
		logger:   log.Component("token-refresher"),
	}
}

// RenewOnce implements TokenRefresher.
func (r *tokenRefresher) RenewOnce(ctx context.Context) error {
	token, err := r.session.Token()
	if err != nil {
		return err
	}

	renewed, err := r.adapter.RenewToken(ctx, token)
	if err != nil {
		return fmt.Errorf("renew token: %w", err)
	}

	claims, err := utils.ParseUserClaims(renewed, r.signKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !r.session.Refresh(token, claims, renewed) {
		return ErrSessionChanged
	}

	return nil
}

// Start implements TokenRefresher. The first renewal happens one interval
// after Start.
func (r *tokenRefresher) Start(ctx context.Context) {
	r.job.start(ctx, r.interval, r.session.Done(), false, func(ctx context.Context) bool {
		err := r.RenewOnce(ctx)
		switch {
		case err == nil:
			r.logger.Debug().Msg("token renewed")
		case errors.Is(err, session.ErrNoSession):
			r.logger.Info().Msg("session cleared, refresher stops")
			return false
		default:
			// the current token stays in use until a renewal succeeds
			r.logger.Warn().Err(err).Msg("token renewal failed")
		}
		return true
	})
}

// Stop implements TokenRefresher.
func (r *tokenRefresher) Stop() {
	r.job.stop()
}
