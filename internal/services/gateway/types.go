package gateway

import (
	"time"

	"github.com/intentbot/chat-client/internal/domain/models"
)

// ChatReply is the backend's response to a sent message.
type ChatReply struct {
	Response   string           `json:"response"`
	SessionID  string           `json:"session_id"`
	Intent     string           `json:"intent"`
	Sentiment  models.Sentiment `json:"sentiment"`
	Confidence float64          `json:"confidence"`
	Timestamp  time.Time        `json:"timestamp"`
}

// HealthStatus is the backend's health report.
type HealthStatus struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	Uptime      float64 `json:"uptime"`
	Store       string  `json:"store"`
	RulesLoaded int     `json:"rules_loaded"`
}

// chatRequest is the request body for the chat endpoint.
type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// sessionResponse is the response body for session creation.
type sessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// historyResponse is the response body for history retrieval.
type historyResponse struct {
	SessionID     string           `json:"session_id"`
	Messages      []models.Message `json:"messages"`
	TotalMessages int              `json:"total_messages"`
}

// intentsResponse is the response body for intent listing.
type intentsResponse struct {
	Intents []string `json:"intents"`
	Total   int      `json:"total"`
}

// errorBody is the error payload shape shared by all endpoints.
type errorBody struct {
	Detail string `json:"detail"`
}
