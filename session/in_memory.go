// Package session houses concrete implementations of core.SessionStore.
// The interface itself lives in the core package to centralize domain
// contracts; keeping only implementations here prevents higher level
// packages from depending on concrete storage.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/dinersim/core"
)

// ErrNotFound is returned when a session id has no stored record.
var ErrNotFound = errors.New("session not found")

// InMemoryStore is a volatile SessionStore implementation storing sessions
// in a process local map. It is safe for concurrent access and best suited
// for tests or single-process runs. Each returned session is cloned to
// prevent external mutation of internal state; the conditional update runs
// under the write lock, so the per-session compare-and-swap holds even when
// two callers race on the same id.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Create persists a clone of the given session.
func (s *InMemoryStore) Create(_ context.Context, sess *core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[sess.ID]; exists {
		return fmt.Errorf("session %s already exists", sess.ID)
	}
	s.sessions[sess.ID] = sess.Clone()
	return nil
}

// Get returns a clone of an existing session.
func (s *InMemoryStore) Get(_ context.Context, id string) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess.Clone(), nil
}

// ConditionalUpdate applies the update and advances the state, but only if
// the stored state still equals expected. Returns the matched record count
// (0 or 1).
func (s *InMemoryStore) ConditionalUpdate(
	_ context.Context,
	id string,
	expected core.PipelineState,
	update core.SessionUpdate,
	next core.PipelineState,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if sess.State != expected {
		return 0, nil
	}
	sess.Apply(update, next)
	return 1, nil
}
