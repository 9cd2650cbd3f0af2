// Package session manages the lifecycle of the backend conversation session.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/intentbot/chat-client/internal/domain/models"
	"github.com/intentbot/chat-client/internal/pkg/confirm"
	"github.com/intentbot/chat-client/internal/services/conversation"
	"github.com/intentbot/chat-client/internal/services/gateway"
)

// WelcomeText is the greeting message seeded into a fresh conversation.
const WelcomeText = "Hello! 👋 I'm your AI assistant. How can I help you today?"

// resetPrompt is shown before discarding the current session.
const resetPrompt = "Start a new conversation? This will create a new session."

// Controller owns the session identifier. It is the only component allowed
// to assign it.
type Controller struct {
	mu      sync.RWMutex
	gateway gateway.Client
	store   *conversation.Store
	confirm confirm.Confirmer
	logger  zerolog.Logger

	sessionID string
}

// Config holds the dependencies for the session controller.
type Config struct {
	Gateway   gateway.Client
	Store     *conversation.Store
	Confirmer confirm.Confirmer
}

// NewController creates a new session controller.
func NewController(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Gateway == nil {
		return nil, fmt.Errorf("gateway client is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("conversation store is required")
	}
	if cfg.Confirmer == nil {
		return nil, fmt.Errorf("confirmer is required")
	}

	return &Controller{
		gateway: cfg.Gateway,
		store:   cfg.Store,
		confirm: cfg.Confirmer,
		logger:  log.With().Str("component", "session").Logger(),
	}, nil
}

// SessionID returns the current session identifier, or "" before
// initialization completes.
func (c *Controller) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// InitializeSession requests a new session from the backend. On success the
// identifier is stored and the history is reset to a single greeting
// message. On failure the identifier stays empty, history is untouched, and
// the error is reported to the caller.
func (c *Controller) InitializeSession(ctx context.Context) error {
	id, err := c.gateway.CreateSession(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to create session")
		return fmt.Errorf("failed to create session: %w", err)
	}

	c.mu.Lock()
	c.sessionID = id
	c.mu.Unlock()

	c.store.ReplaceAll([]models.Message{
		models.NewBotMessage(WelcomeText, time.Time{}, "greeting", models.SentimentPositive, 0),
	})

	c.logger.Info().Str("session_id", id).Msg("session initialized")
	return nil
}

// ResetSession discards the current session and history after confirmation.
// Declining is not an error; the session is left untouched.
func (c *Controller) ResetSession(ctx context.Context) error {
	if !c.confirm.Confirm(resetPrompt) {
		return nil
	}
	return c.InitializeSession(ctx)
}
