package service

import (
	"sync"

	"github.com/MKhiriev/go-chat-client/models"
)

// ConversationSnapshot is the latest published conversation list plus the
// selected position in it. The poller replaces the list wholesale; readers
// always get a copy of a complete published list.
type ConversationSnapshot struct {
	mu sync.RWMutex

	items   []models.ConversationSummary
	cursor  int
	version uint64
}

// NewConversationSnapshot returns an empty snapshot.
func NewConversationSnapshot() *ConversationSnapshot {
	return &ConversationSnapshot{}
}

// Replace publishes items as the new list. The slice is copied. When the
// previously selected conversation is still present the cursor follows it,
// otherwise the cursor is clamped to the new bounds.
func (s *ConversationSnapshot) Replace(items []models.ConversationSummary) {
	next := make([]models.ConversationSummary, len(items))
	copy(next, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	cursor := s.cursor
	if prevKey, ok := s.selectedKeyLocked(); ok {
		cursor = indexOfKey(next, prevKey, cursor)
	}

	s.items = next
	s.cursor = clamp(cursor, len(next))
	s.version++
}

// Reset drops the published list.
func (s *ConversationSnapshot) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.cursor = 0
	s.version++
}

// Items returns a copy of the published list.
func (s *ConversationSnapshot) Items() []models.ConversationSummary {
	items, _, _ := s.View()
	return items
}

// View returns a copy of the list together with the cursor and the
// publication version, all taken under one lock.
func (s *ConversationSnapshot) View() ([]models.ConversationSummary, int, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ConversationSummary, len(s.items))
	copy(out, s.items)
	return out, s.cursor, s.version
}

// Len returns the number of published conversations.
func (s *ConversationSnapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Selected returns the conversation under the cursor.
func (s *ConversationSnapshot) Selected() (models.ConversationSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[s.cursor], true
}

// Move shifts the cursor by delta, clamped to the list bounds, and returns
// the newly selected conversation. ok is false when the cursor did not move.
func (s *ConversationSnapshot) Move(delta int) (models.ConversationSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return nil, false
	}

	next := clamp(s.cursor+delta, len(s.items))
	if next == s.cursor {
		return s.items[s.cursor], false
	}

	s.cursor = next
	return s.items[next], true
}

func (s *ConversationSnapshot) selectedKeyLocked() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}

	target, err := models.ConversationTarget(s.items[s.cursor])
	if err != nil {
		return "", false
	}
	return target.Key(), true
}

func indexOfKey(items []models.ConversationSummary, key string, fallback int) int {
	for i, item := range items {
		target, err := models.ConversationTarget(item)
		if err == nil && target.Key() == key {
			return i
		}
	}
	return fallback
}

func clamp(i, n int) int {
	switch {
	case n == 0 || i < 0:
		return 0
	case i >= n:
		return n - 1
	default:
		return i
	}
}

// ConversationNavigator moves through the conversation list and reports every
// step to the backend as a read-index update, so unread counters elsewhere
// follow what the user has looked at.
type ConversationNavigator struct {
	snapshot *ConversationSnapshot
	tracker  ReadIndexTracker
}

// NewConversationNavigator creates a navigator over snapshot.
func NewConversationNavigator(snapshot *ConversationSnapshot, tracker ReadIndexTracker) *ConversationNavigator {
	return &ConversationNavigator{snapshot: snapshot, tracker: tracker}
}

// Move shifts the selection by delta. When the selection changes, the newly
// selected conversation is pushed as read up to its last message.
func (n *ConversationNavigator) Move(delta int) (models.ConversationSummary, bool) {
	item, moved := n.snapshot.Move(delta)
	if !moved {
		return item, false
	}

	target, err := models.ConversationTarget(item)
	if err != nil {
		return item, true
	}
	mid, err := models.ConversationLastMid(item)
	if err != nil {
		return item, true
	}

	n.tracker.Push(target, mid)
	return item, true
}
