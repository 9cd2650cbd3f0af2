// Package conversation owns the ordered message history for the active session.
package conversation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/intentbot/chat-client/internal/domain/models"
	"github.com/intentbot/chat-client/internal/pkg/confirm"
	"github.com/intentbot/chat-client/internal/services/gateway"
)

// ClearedText is the system message swapped in after the history is cleared.
const ClearedText = "Chat cleared! How can I help you?"

// clearPrompt is shown before the destructive clear operation.
const clearPrompt = "Are you sure you want to clear the chat history?"

// exportTimeLayout formats timestamps in exported transcripts.
const exportTimeLayout = "2006-01-02 15:04:05"

// SessionRef exposes read-only access to the active session identifier.
// An empty string means no session has been established.
type SessionRef interface {
	SessionID() string
}

// Store owns the ordered sequence of messages for the active session.
// Insertion order equals chronological order; IDs are strictly increasing.
type Store struct {
	mu      sync.Mutex
	gateway gateway.Client
	confirm confirm.Confirmer
	logger  zerolog.Logger

	session  SessionRef
	seq      int64
	messages []models.Message
}

// Config holds the dependencies for the conversation store.
type Config struct {
	Gateway   gateway.Client
	Confirmer confirm.Confirmer
}

// NewStore creates a new conversation store.
func NewStore(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Gateway == nil {
		return nil, fmt.Errorf("gateway client is required")
	}
	if cfg.Confirmer == nil {
		return nil, fmt.Errorf("confirmer is required")
	}

	return &Store{
		gateway: cfg.Gateway,
		confirm: cfg.Confirmer,
		logger:  log.With().Str("component", "conversation").Logger(),
	}, nil
}

// BindSession attaches the session reference used by Clear. The store only
// reads the identifier; session ownership stays with the controller.
func (s *Store) BindSession(ref SessionRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = ref
}

// Append adds the message to the end of the sequence, assigning the next ID.
// The stamped message is returned; the sequence is never reordered.
func (s *Store) Append(m models.Message) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	m.ID = s.seq
	s.messages = append(s.messages, m)
	return m
}

// ReplaceAll atomically replaces the whole sequence. Messages without an ID
// are assigned fresh ones; the ID sequence never moves backwards.
func (s *Store) ReplaceAll(msgs []models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.ID == 0 {
			s.seq++
			m.ID = s.seq
		} else if m.ID > s.seq {
			s.seq = m.ID
		}
		replaced = append(replaced, m)
	}
	s.messages = replaced
}

// Messages returns a copy of the current sequence in store order.
func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of stored messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Clear asks for confirmation, requests a backend clear when a session
// exists, and swaps in a single "chat cleared" system message. A backend
// failure is logged but never blocks the local swap. Returns false when the
// user declined.
func (s *Store) Clear(ctx context.Context) bool {
	if !s.confirm.Confirm(clearPrompt) {
		return false
	}

	s.mu.Lock()
	ref := s.session
	s.mu.Unlock()

	if ref != nil {
		if sessionID := ref.SessionID(); sessionID != "" {
			if err := s.gateway.ClearHistory(ctx, sessionID); err != nil {
				s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear backend history")
			}
		}
	}

	s.ReplaceAll([]models.Message{
		models.NewBotMessage(ClearedText, time.Time{}, "system", models.SentimentNeutral, 0),
	})
	return true
}

// ExportAsText renders the history as plain text, one block per message in
// store order, blocks separated by a blank line.
func (s *Store) ExportAsText() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocks := make([]string, 0, len(s.messages))
	for _, m := range s.messages {
		blocks = append(blocks, fmt.Sprintf("[%s] %s: %s",
			m.Timestamp.Local().Format(exportTimeLayout), m.Author(), m.Text))
	}
	return strings.Join(blocks, "\n\n")
}
