package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
)

type conversationCache struct {
	*DB
	logger *logger.Logger
}

// NewConversationCache returns a ConversationCache backed by db. The list is
// stored as one JSON document per user in the backend wire format.
func NewConversationCache(db *DB, logger *logger.Logger) ConversationCache {
	return &conversationCache{
		DB:     db,
		logger: logger,
	}
}

func (c *conversationCache) SaveConversations(ctx context.Context, userID int64, items []models.ConversationSummary) error {
	payload, err := models.EncodeConversations(items)
	if err != nil {
		return fmt.Errorf("encode conversations: %w", err)
	}

	query, args, err := buildSaveConversationsQuery(userID, payload)
	if err != nil {
		c.logger.Err(err).
			Str("func", "conversationCache.SaveConversations").
			Int64("user_id", userID).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).
			Str("func", "conversationCache.SaveConversations").
			Int64("user_id", userID).
			Msg("failed to execute upsert for conversations")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (c *conversationCache) LoadConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	query, args, err := buildLoadConversationsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		c.logger.Err(err).
			Str("func", "conversationCache.LoadConversations").
			Int64("user_id", userID).
			Msg("failed to query cached conversations")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	items, err := models.DecodeConversations([]byte(payload))
	if err != nil {
		c.logger.Warn().Err(err).
			Int64("user_id", userID).
			Msg("cached conversation list is unreadable")
		return nil, fmt.Errorf("%w: %w", ErrCorruptedSnapshot, err)
	}

	return items, nil
}
