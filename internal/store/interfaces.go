package store

import (
	"context"

	"github.com/MKhiriev/go-chat-client/models"
)

// ConversationCache persists the most recently published conversation list
// of each user.
type ConversationCache interface {
	// SaveConversations replaces the stored list of userID.
	SaveConversations(ctx context.Context, userID int64, items []models.ConversationSummary) error

	// LoadConversations returns the stored list of userID, or nil when
	// nothing was stored yet.
	LoadConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error)
}
