// Package session owns per-conversation turn history. Each session
// keeps at most maxTurns recent turns; older turns are evicted
// oldest-first. The store is safe for concurrent request handlers.
package session

import (
	"sync"

	"github.com/google/uuid"

	"sherlok/internal/model"
)

const maxTurns = 6

type Store struct {
	mu       sync.Mutex
	sessions map[string][]model.Turn
}

func NewStore() *Store {
	return &Store{sessions: make(map[string][]model.Turn)}
}

// Ensure returns the given session id, or a freshly minted one when
// the caller did not supply any.
func (s *Store) Ensure(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// Turns returns a copy of the session's history, oldest first.
func (s *Store) Turns(id string) []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.sessions[id]
	out := make([]model.Turn, len(turns))
	copy(out, turns)
	return out
}

// Append records one or more turns, then truncates the history to the
// most recent maxTurns entries.
func (s *Store) Append(id string, turns ...model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[id], turns...)
	if len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}
	s.sessions[id] = history
}

// Reset clears a session's history. Resetting an unknown session is a
// no-op.
func (s *Store) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}
