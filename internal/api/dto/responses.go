// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "time"

// ErrorResponse is the error payload shared by all endpoints. Detail is the
// field clients surface; Code is machine-readable.
type ErrorResponse struct {
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail"`
}

// ChatResponse is the reply to a chat request.
type ChatResponse struct {
	Response   string    `json:"response"`
	SessionID  string    `json:"session_id"`
	Intent     string    `json:"intent,omitempty"`
	Sentiment  string    `json:"sentiment,omitempty"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// SessionResponse is the reply to session creation.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageRecord is one stored message in a history response.
type MessageRecord struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	IsUser    bool      `json:"is_user"`
	Intent    string    `json:"intent,omitempty"`
	Sentiment string    `json:"sentiment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse is the reply to history retrieval.
type HistoryResponse struct {
	SessionID     string          `json:"session_id"`
	Messages      []MessageRecord `json:"messages"`
	TotalMessages int             `json:"total_messages"`
}

// AnalyticsResponse is the reply to analytics retrieval.
type AnalyticsResponse struct {
	SessionID          string         `json:"session_id"`
	TotalInteractions  int            `json:"total_interactions"`
	AvgResponseTimeMs  float64        `json:"avg_response_time_ms"`
	IntentDistribution map[string]int `json:"intent_distribution"`
}

// IntentsResponse is the reply to intent listing.
type IntentsResponse struct {
	Intents []string `json:"intents"`
	Total   int      `json:"total"`
}

// ReloadRulesResponse is the reply to a rules reload.
type ReloadRulesResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse is the reply to a health check.
type HealthResponse struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	Uptime      float64 `json:"uptime"`
	Store       string  `json:"store"`
	RulesLoaded int     `json:"rules_loaded"`
}
