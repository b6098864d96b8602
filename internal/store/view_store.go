package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
)

// View is the rendered result of one interaction.
type View struct {
	Token  uint64
	Sort   string
	Filter string
	Teams  []teams.TeamWithGames
	At     time.Time
}

// ViewStore keeps the most recently published view. Publishes carrying a token
// older than (or equal to) the current one are ignored.
type ViewStore struct {
	mu     sync.RWMutex
	latest View
	has    bool
}

// NewViewStore constructs an empty ViewStore.
func NewViewStore() *ViewStore {
	return &ViewStore{}
}

// Publish stores view under token and reports whether it was accepted.
func (s *ViewStore) Publish(token uint64, view View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.has && token <= s.latest.Token {
		return false
	}
	view.Token = token
	s.latest = view
	s.has = true
	return true
}

// Latest returns the last accepted view.
func (s *ViewStore) Latest() (View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.has
}

// Token returns the token of the last accepted view, or zero.
func (s *ViewStore) Token() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest.Token
}
