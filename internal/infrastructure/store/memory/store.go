// Package memory provides the in-process history store implementation.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/intentbot/chat-client/internal/core/store"
)

// Store implements the store.Store interface with in-process maps.
type Store struct {
	mu           sync.Mutex
	sessions     map[string]bool
	seq          map[string]int64
	histories    map[string][]store.Record
	interactions map[string][]store.Interaction
}

// NewStore creates a new in-memory history store.
func NewStore() *Store {
	return &Store{
		sessions:     make(map[string]bool),
		seq:          make(map[string]int64),
		histories:    make(map[string][]store.Record),
		interactions: make(map[string][]store.Interaction),
	}
}

// CreateSession issues a new session identifier.
func (s *Store) CreateSession(ctx context.Context) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = true
	return id, nil
}

// SessionExists reports whether the session identifier is known.
func (s *Store) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionID], nil
}

// AppendMessage appends a record to the session history.
func (s *Store) AppendMessage(ctx context.Context, sessionID string, rec store.Record) (store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq[sessionID]++
	rec.ID = s.seq[sessionID]
	s.histories[sessionID] = append(s.histories[sessionID], rec)
	return rec, nil
}

// History returns up to limit records in chronological order.
func (s *Store) History(ctx context.Context, sessionID string, limit int) ([]store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.histories[sessionID]
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	out := make([]store.Record, len(records))
	copy(out, records)
	return out, nil
}

// ClearHistory removes all message records for the session. Interaction
// samples and the session itself are kept.
func (s *Store) ClearHistory(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.histories, sessionID)
	return nil
}

// RecordInteraction stores one analytics sample for the session.
func (s *Store) RecordInteraction(ctx context.Context, sessionID string, in store.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions[sessionID] = append(s.interactions[sessionID], in)
	return nil
}

// Interactions returns all analytics samples for the session.
func (s *Store) Interactions(ctx context.Context, sessionID string) ([]store.Interaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]store.Interaction, len(s.interactions[sessionID]))
	copy(out, s.interactions[sessionID])
	return out, nil
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// Close releases no resources for the in-memory store.
func (s *Store) Close() error {
	return nil
}
