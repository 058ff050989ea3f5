package service

import (
	"context"

	"github.com/MKhiriev/go-chat-client/models"
)

// AuthService defines the client-side contract for account registration and
// session lifecycle.
type AuthService interface {
	// Login exchanges creds for a bearer token, decodes its claims and
	// populates the session store. Returns [ErrWrongCredentials] on a 401.
	Login(ctx context.Context, creds models.Credentials) (models.UserClaims, error)

	// Register creates an account. Returns [ErrNameAlreadyTaken] on a 409.
	Register(ctx context.Context, creds models.Credentials) error

	// Logout clears the session, which stops every background task bound to
	// it, and drops the published conversation list.
	Logout()
}

// TokenRefresher renews the bearer token on a fixed period for as long as the
// session is active.
type TokenRefresher interface {
	// RenewOnce performs a single renewal using the current session token.
	// The session is only updated when the renewal succeeds and the session
	// that issued the old token is still current.
	RenewOnce(ctx context.Context) error

	// Start launches the background renewal goroutine. Any previously running
	// refresher is stopped first. The goroutine exits when ctx is cancelled,
	// the session is cleared or Stop is called.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// ConversationPoller periodically publishes the recent-conversation list into
// the shared [ConversationSnapshot].
type ConversationPoller interface {
	// PollOnce fetches the list once and replaces the snapshot on success.
	// On failure the previous snapshot is kept.
	PollOnce(ctx context.Context) error

	// Seed publishes the locally cached list of userID, if any, so the UI has
	// something to show before the first poll completes.
	Seed(ctx context.Context, userID int64) error

	// Start launches the polling goroutine; the first poll runs immediately.
	Start(ctx context.Context)

	// Stop signals the polling goroutine to exit and waits for it.
	Stop()
}

// ReadIndexTracker pushes the last read message id of a conversation to the
// backend. Pushes are fire-and-forget.
type ReadIndexTracker interface {
	// Push sends the update asynchronously and returns immediately. Failures
	// are logged and never retried.
	Push(target models.Target, mid int64)

	// Wait blocks until every push started so far has finished.
	Wait()
}

// ChatRenderer displays the open conversation. Implementations must not block
// for long: they are called from the chat loop.
type ChatRenderer interface {
	RenderHistory(lines []models.ChatLine)
	RenderMessage(line models.ChatLine)
	RenderError(err error)
}

// ChatService runs conversations.
type ChatService interface {
	// Open runs the realtime loop for peer until the user types the exit
	// command, input is closed, ctx is cancelled, the session is cleared or
	// the event stream fails. Lines read from input are sent to the peer.
	Open(ctx context.Context, peer models.Peer, input <-chan string, renderer ChatRenderer) error

	// Friends lists the friends of the logged-in user.
	Friends(ctx context.Context) ([]models.Friend, error)
}

// FriendService manages friend requests: finding people, asking them to be
// friends and answering their requests.
type FriendService interface {
	// Find searches accounts by name. A blank name returns [ErrEmptySearch].
	Find(ctx context.Context, name string) ([]models.Friend, error)

	// Request asks uid to become a friend. Returns [ErrAlreadyRequested]
	// when the backend answers 409.
	Request(ctx context.Context, uid int64) error

	// Requests lists requests addressed to the logged-in user.
	Requests(ctx context.Context) ([]models.FriendRequest, error)

	// Review approves or rejects req. Requests that are no longer pending
	// return [ErrRequestReviewed] without calling the backend.
	Review(ctx context.Context, req models.FriendRequest, approve bool) error
}

// ConversationCache persists the last published conversation list per user.
type ConversationCache interface {
	SaveConversations(ctx context.Context, userID int64, items []models.ConversationSummary) error
	LoadConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error)
}
