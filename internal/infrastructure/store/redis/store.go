// Package redis provides the Redis-backed history store implementation.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/intentbot/chat-client/internal/core/store"
)

// Config holds Redis connection configuration.
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
	// TTL bounds session lifetime. Zero keeps sessions indefinitely.
	TTL time.Duration
}

// Store implements the store.Store interface for Redis. History lives in a
// list of JSON records per session; IDs come from a per-session counter.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new Redis history store.
func NewStore(cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func sessionKey(id string) string      { return "chat:session:" + id }
func seqKey(id string) string          { return "chat:seq:" + id }
func historyKey(id string) string      { return "chat:history:" + id }
func interactionsKey(id string) string { return "chat:interactions:" + id }

// CreateSession issues a new session identifier.
func (s *Store) CreateSession(ctx context.Context) (string, error) {
	id := uuid.NewString()

	if err := s.client.Set(ctx, sessionKey(id), "1", s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// SessionExists reports whether the session identifier is known.
func (s *Store) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session %s: %w", sessionID, err)
	}
	return n > 0, nil
}

// AppendMessage appends a record to the session history.
func (s *Store) AppendMessage(ctx context.Context, sessionID string, rec store.Record) (store.Record, error) {
	id, err := s.client.Incr(ctx, seqKey(sessionID)).Result()
	if err != nil {
		return store.Record{}, fmt.Errorf("failed to advance sequence for session %s: %w", sessionID, err)
	}
	rec.ID = id

	data, err := json.Marshal(rec)
	if err != nil {
		return store.Record{}, fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := s.client.RPush(ctx, historyKey(sessionID), data).Err(); err != nil {
		return store.Record{}, fmt.Errorf("failed to append record for session %s: %w", sessionID, err)
	}

	if s.ttl > 0 {
		s.client.Expire(ctx, historyKey(sessionID), s.ttl)
		s.client.Expire(ctx, seqKey(sessionID), s.ttl)
	}
	return rec, nil
}

// History returns up to limit records in chronological order.
func (s *Store) History(ctx context.Context, sessionID string, limit int) ([]store.Record, error) {
	end := int64(-1)
	if limit > 0 {
		end = int64(limit) - 1
	}

	raw, err := s.client.LRange(ctx, historyKey(sessionID), 0, end).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history for session %s: %w", sessionID, err)
	}

	records := make([]store.Record, 0, len(raw))
	for _, item := range raw {
		var rec store.Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode record for session %s: %w", sessionID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ClearHistory removes all message records for the session.
func (s *Store) ClearHistory(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, historyKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear history for session %s: %w", sessionID, err)
	}
	return nil
}

// RecordInteraction stores one analytics sample for the session.
func (s *Store) RecordInteraction(ctx context.Context, sessionID string, in store.Interaction) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal interaction: %w", err)
	}

	if err := s.client.RPush(ctx, interactionsKey(sessionID), data).Err(); err != nil {
		return fmt.Errorf("failed to record interaction for session %s: %w", sessionID, err)
	}

	if s.ttl > 0 {
		s.client.Expire(ctx, interactionsKey(sessionID), s.ttl)
	}
	return nil
}

// Interactions returns all analytics samples for the session.
func (s *Store) Interactions(ctx context.Context, sessionID string) ([]store.Interaction, error) {
	raw, err := s.client.LRange(ctx, interactionsKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read interactions for session %s: %w", sessionID, err)
	}

	interactions := make([]store.Interaction, 0, len(raw))
	for _, item := range raw {
		var in store.Interaction
		if err := json.Unmarshal([]byte(item), &in); err != nil {
			return nil, fmt.Errorf("failed to decode interaction for session %s: %w", sessionID, err)
		}
		interactions = append(interactions, in)
	}
	return interactions, nil
}

// Ping checks if the Redis connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}
	return nil
}
