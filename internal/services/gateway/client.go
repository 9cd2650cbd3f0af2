// Package gateway provides the typed client for the chat backend API.
package gateway

import (
	"context"
	"fmt"

	"github.com/intentbot/chat-client/internal/domain/models"
)

// Client defines the interface for the chat backend gateway.
type Client interface {
	// CreateSession requests a new conversation session from the backend.
	CreateSession(ctx context.Context) (string, error)

	// SendMessage sends a user message for the given session and returns
	// the classified reply.
	SendMessage(ctx context.Context, message, sessionID string) (*ChatReply, error)

	// History retrieves up to limit messages for the session in
	// chronological order.
	History(ctx context.Context, sessionID string, limit int) ([]models.Message, error)

	// ClearHistory deletes the stored history for the session. An empty or
	// 204 response is treated as success.
	ClearHistory(ctx context.Context, sessionID string) error

	// Analytics retrieves interaction statistics for the session.
	Analytics(ctx context.Context, sessionID string) (*models.Analytics, error)

	// Intents lists the intent labels the backend can classify.
	Intents(ctx context.Context) ([]string, error)

	// ReloadRules asks the backend to reload its classification rules.
	ReloadRules(ctx context.Context) error

	// Health reports backend health.
	Health(ctx context.Context) (*HealthStatus, error)
}

// APIError is returned for any non-success HTTP outcome. Detail carries the
// backend's "detail" field when the body is parseable, or a generic fallback.
type APIError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}
