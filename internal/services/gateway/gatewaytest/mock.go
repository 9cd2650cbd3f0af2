// Package gatewaytest provides a mock gateway client for testing.
package gatewaytest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/intentbot/chat-client/internal/domain/models"
	"github.com/intentbot/chat-client/internal/services/gateway"
)

// MockClient is a mock implementation of gateway.Client.
type MockClient struct {
	mock.Mock
}

// CreateSession requests a new session.
func (m *MockClient) CreateSession(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// SendMessage sends a user message.
func (m *MockClient) SendMessage(ctx context.Context, message, sessionID string) (*gateway.ChatReply, error) {
	args := m.Called(ctx, message, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.ChatReply), args.Error(1)
}

// History retrieves session history.
func (m *MockClient) History(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

// ClearHistory deletes session history.
func (m *MockClient) ClearHistory(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// Analytics retrieves session statistics.
func (m *MockClient) Analytics(ctx context.Context, sessionID string) (*models.Analytics, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Analytics), args.Error(1)
}

// Intents lists known intents.
func (m *MockClient) Intents(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// ReloadRules reloads backend rules.
func (m *MockClient) ReloadRules(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Health reports backend health.
func (m *MockClient) Health(ctx context.Context) (*gateway.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.HealthStatus), args.Error(1)
}
