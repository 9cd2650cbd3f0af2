// Package store defines the history store port for the reference backend.
package store

import (
	"context"
	"time"
)

// Type represents the type of history store.
type Type string

const (
	// TypeMemory is the in-process store.
	TypeMemory Type = "memory"
	// TypeRedis is the Redis-backed store.
	TypeRedis Type = "redis"
)

// Record is one stored message within a session.
type Record struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	IsUser    bool      `json:"is_user"`
	Intent    string    `json:"intent,omitempty"`
	Sentiment string    `json:"sentiment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Interaction is one analytics sample recorded per exchange.
type Interaction struct {
	Intent         string `json:"intent"`
	MatchedPattern string `json:"matched_pattern,omitempty"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

// Store persists sessions, their message history, and interaction samples.
type Store interface {
	// CreateSession issues a new opaque session identifier.
	CreateSession(ctx context.Context) (string, error)

	// SessionExists reports whether the session identifier is known.
	SessionExists(ctx context.Context, sessionID string) (bool, error)

	// AppendMessage appends a record to the session history, assigning the
	// next ID within the session. The stamped record is returned.
	AppendMessage(ctx context.Context, sessionID string, rec Record) (Record, error)

	// History returns up to limit records in chronological order.
	History(ctx context.Context, sessionID string, limit int) ([]Record, error)

	// ClearHistory removes all message records for the session. Clearing an
	// already-empty session is not an error.
	ClearHistory(ctx context.Context, sessionID string) error

	// RecordInteraction stores one analytics sample for the session.
	RecordInteraction(ctx context.Context, sessionID string, in Interaction) error

	// Interactions returns all analytics samples for the session.
	Interactions(ctx context.Context, sessionID string) ([]Interaction, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error

	// Close releases store resources.
	Close() error
}
