package service

import (
	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/session"
)

// ClientServices wires every client service around one session store and one
// conversation snapshot.
type ClientServices struct {
	Session   *session.Store
	Snapshot  *ConversationSnapshot
	Navigator *ConversationNavigator

	AuthService AuthService
	Refresher   TokenRefresher
	Poller      ConversationPoller
	ReadIndex   ReadIndexTracker
	ChatService ChatService
	Friends     FriendService
}

// NewClientServices builds the service graph. cache may be nil.
func NewClientServices(cfg *config.ClientConfig, serverAdapter adapter.ServerAdapter, cache ConversationCache, log *logger.Logger) *ClientServices {
	store := session.NewStore()
	snapshot := NewConversationSnapshot()
	tracker := NewReadIndexTracker(serverAdapter, store, log)

	return &ClientServices{
		Session:   store,
		Snapshot:  snapshot,
		Navigator: NewConversationNavigator(snapshot, tracker),

		AuthService: NewClientAuthService(serverAdapter, store, snapshot, cfg.App.TokenSignKey, log),
		Refresher:   NewTokenRefresher(serverAdapter, store, cfg.App.TokenSignKey, cfg.Workers.RenewInterval, log),
		Poller: NewConversationPoller(serverAdapter, store, snapshot, cache,
			cfg.Workers.PollInterval, cfg.Workers.RecentPageSize, log),
		ReadIndex:   tracker,
		ChatService: NewChatService(serverAdapter, store, tracker, log),
		Friends:     NewFriendService(serverAdapter, store, log),
	}
}
