// Package exchange drives the user/assistant message exchange flow.
package exchange

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/intentbot/chat-client/internal/domain/models"
	"github.com/intentbot/chat-client/internal/services/conversation"
	"github.com/intentbot/chat-client/internal/services/gateway"
)

// ErrorText is the assistant message synthesized when a send fails. Raw
// backend error detail never reaches the transcript.
const ErrorText = "Sorry, I'm having trouble connecting. Please try again."

// DefaultTypingDelay keeps the typing indicator visible even when the
// backend replies instantly. It runs after the call resolves, so perceived
// latency is network time plus this delay.
const DefaultTypingDelay = 500 * time.Millisecond

// SessionRef exposes read-only access to the active session identifier.
type SessionRef interface {
	SessionID() string
}

// Orchestrator runs one message exchange at a time: optimistic user append,
// backend call, minimum typing delay, then the resolved outcome.
type Orchestrator struct {
	gateway gateway.Client
	store   *conversation.Store
	session SessionRef
	logger  zerolog.Logger

	typingDelay time.Duration
	sleep       func(time.Duration)
	onTyping    func(bool)

	inFlight atomic.Bool
	typing   atomic.Bool
}

// Config holds the dependencies for the orchestrator.
type Config struct {
	Gateway gateway.Client
	Store   *conversation.Store
	Session SessionRef

	// TypingDelay overrides DefaultTypingDelay when positive.
	TypingDelay time.Duration
	// OnTyping is invoked on every typing-signal transition.
	OnTyping func(bool)
	// Sleep overrides the delay function, mainly for tests.
	Sleep func(time.Duration)
}

// NewOrchestrator creates a new message exchange orchestrator.
func NewOrchestrator(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Gateway == nil {
		return nil, fmt.Errorf("gateway client is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("conversation store is required")
	}
	if cfg.Session == nil {
		return nil, fmt.Errorf("session reference is required")
	}

	delay := cfg.TypingDelay
	if delay <= 0 {
		delay = DefaultTypingDelay
	}

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	return &Orchestrator{
		gateway:     cfg.Gateway,
		store:       cfg.Store,
		session:     cfg.Session,
		logger:      log.With().Str("component", "exchange").Logger(),
		typingDelay: delay,
		sleep:       sleep,
		onTyping:    cfg.OnTyping,
	}, nil
}

// SendUserMessage runs one exchange. Empty input and reentrant calls are
// silent no-ops; backend failures surface as a synthesized assistant message
// and are never returned to the caller. The user message stays in history
// regardless of the outcome. Returns whether the message was accepted.
func (o *Orchestrator) SendUserMessage(ctx context.Context, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if !o.inFlight.CompareAndSwap(false, true) {
		return false
	}
	defer o.inFlight.Store(false)

	sessionID := o.session.SessionID()
	o.store.Append(models.NewUserMessage(trimmed))

	o.setTyping(true)
	defer o.setTyping(false)

	reply, err := o.gateway.SendMessage(ctx, trimmed, sessionID)

	o.sleep(o.typingDelay)

	// A reset may have replaced the session while the call was in flight;
	// a reply addressed to the dead session must not be appended.
	if current := o.session.SessionID(); current != sessionID {
		o.logger.Warn().
			Str("session_id", sessionID).
			Str("current_session_id", current).
			Msg("discarding reply for superseded session")
		return true
	}

	if err != nil {
		o.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to send message")
		o.store.Append(models.NewBotMessage(ErrorText, time.Time{}, "error", models.SentimentNegative, 0))
		return true
	}

	o.store.Append(models.NewBotMessage(reply.Response, reply.Timestamp, reply.Intent, reply.Sentiment, reply.Confidence))
	return true
}

// Typing reports whether an exchange is awaiting its resolved outcome.
func (o *Orchestrator) Typing() bool {
	return o.typing.Load()
}

// InFlight reports whether an exchange is currently running.
func (o *Orchestrator) InFlight() bool {
	return o.inFlight.Load()
}

func (o *Orchestrator) setTyping(v bool) {
	o.typing.Store(v)
	if o.onTyping != nil {
		o.onTyping(v)
	}
}
