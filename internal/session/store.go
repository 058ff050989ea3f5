package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chat-client/models"
)

var (
	// ErrNoSession is returned when no user is logged in.
	ErrNoSession = errors.New("no active session")

	// ErrEmptyToken is returned by [Store.Set] for a blank token.
	ErrEmptyToken = errors.New("session token is empty")
)

// Store is the lock-guarded session handle shared by the foreground UI and the
// background workers. The zero value is not usable; create one with [NewStore].
type Store struct {
	mu sync.Mutex

	claims models.UserClaims
	token  string
	active bool
	// epoch changes whenever a session starts or ends; renewals keep it.
	epoch uint64

	// done is closed when the current session is cleared or replaced.
	done chan struct{}
}

// NewStore returns an empty store with no active session.
func NewStore() *Store {
	done := make(chan struct{})
	close(done)

	return &Store{done: done}
}

// Set replaces the session with claims and token atomically. A previously
// active session is ended first, so anything waiting on its [Store.Done]
// channel is released.
func (s *Store) Set(claims models.UserClaims, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		close(s.done)
	}

	s.claims = claims
	s.token = token
	s.active = true
	s.epoch++
	s.done = make(chan struct{})

	return nil
}

// Refresh swaps in a renewed token only while the session that issued
// prevToken is still current. It reports whether the swap happened.
//
// A renewal that completes after logout, or after another renewal already
// replaced prevToken, is discarded instead of reviving a stale session.
func (s *Store) Refresh(prevToken string, claims models.UserClaims, token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.token != prevToken {
		return false
	}

	s.claims = claims
	s.token = token
	return true
}

// Clear ends the session. It is safe to call on an empty store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	close(s.done)
	s.claims = models.UserClaims{}
	s.token = ""
	s.active = false
	s.epoch++
}

// Snapshot returns a consistent copy of the current claims and token, or
// [ErrNoSession] when nobody is logged in.
func (s *Store) Snapshot() (models.UserClaims, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return models.UserClaims{}, "", ErrNoSession
	}
	return s.claims, s.token, nil
}

// Lease is like [Store.Snapshot] but also returns the epoch of the session,
// to be handed back to [Store.IfCurrent] once a request made with the token
// completes.
func (s *Store) Lease() (models.UserClaims, string, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return models.UserClaims{}, "", 0, ErrNoSession
	}
	return s.claims, s.token, s.epoch, nil
}

// IfCurrent runs fn while holding the store lock, provided the session
// identified by epoch is still active. It reports whether fn ran. Results
// fetched for a session that has since been cleared or replaced are thus
// never published; a [Store.Clear] either happens before fn, and fn is
// skipped, or after it.
//
// fn must not call back into the store.
func (s *Store) IfCurrent(epoch uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.epoch != epoch {
		return false
	}
	fn()
	return true
}

// Token returns the current bearer token.
func (s *Store) Token() (string, error) {
	_, token, err := s.Snapshot()
	return token, err
}

// Active reports whether a session is present.
func (s *Store) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// Done returns a channel that is closed once the current session ends. With
// no active session the returned channel is already closed.
func (s *Store) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}
