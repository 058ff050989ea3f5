package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
)

// ClientStorages groups the client-side storage repositories.
type ClientStorages struct {
	// ConversationCache keeps the last published conversation list per user.
	// It is nil when no local database is configured.
	ConversationCache ConversationCache

	db *DB
}

// NewClientStorages opens the local SQLite database at cfg.DB.DSN, creating
// the file if needed, and applies pending migrations. An empty DSN disables
// local storage: the returned value has no cache and Close is a no-op.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		logger.Info().Msg("local storage disabled")
		return &ClientStorages{}, nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ConversationCache: NewConversationCache(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
