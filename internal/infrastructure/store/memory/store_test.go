package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentbot/chat-client/internal/core/store"
	"github.com/intentbot/chat-client/internal/infrastructure/store/memory"
)

func TestStore_CreateSession(t *testing.T) {
	// Arrange
	s := memory.NewStore()
	ctx := context.Background()

	// Act
	first, err := s.CreateSession(ctx)
	require.NoError(t, err)
	second, err := s.CreateSession(ctx)
	require.NoError(t, err)

	// Assert
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	exists, err := s.SessionExists(ctx, first)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.SessionExists(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_AppendMessage_AssignsSequentialIDs(t *testing.T) {
	// Arrange
	s := memory.NewStore()
	ctx := context.Background()

	sessionID, err := s.CreateSession(ctx)
	require.NoError(t, err)

	// Act
	first, err := s.AppendMessage(ctx, sessionID, store.Record{Message: "hello", IsUser: true, Timestamp: time.Now()})
	require.NoError(t, err)
	second, err := s.AppendMessage(ctx, sessionID, store.Record{Message: "hi!", Intent: "greeting"})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestStore_AppendMessage_SequencesPerSession(t *testing.T) {
	// Arrange
	s := memory.NewStore()
	ctx := context.Background()

	a, _ := s.CreateSession(ctx)
	b, _ := s.CreateSession(ctx)

	// Act
	recA, err := s.AppendMessage(ctx, a, store.Record{Message: "one"})
	require.NoError(t, err)
	recB, err := s.AppendMessage(ctx, b, store.Record{Message: "one"})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, int64(1), recA.ID)
	assert.Equal(t, int64(1), recB.ID)
}

func TestStore_History_Limit(t *testing.T) {
	// Arrange
	s := memory.NewStore()
	ctx := context.Background()

	sessionID, _ := s.CreateSession(ctx)
	for _, msg := range []string{"a", "b", "c", "d"} {
		_, err := s.AppendMessage(ctx, sessionID, store.Record{Message: msg})
		require.NoError(t, err)
	}

	// Act
	limited, err := s.History(ctx, sessionID, 2)
	require.NoError(t, err)
	all, err := s.History(ctx, sessionID, 0)
	require.NoError(t, err)

	// Assert
	require.Len(t, limited, 2)
	assert.Equal(t, "a", limited[0].Message)
	assert.Equal(t, "b", limited[1].Message)
	assert.Len(t, all, 4)
}

func TestStore_History_UnknownSession(t *testing.T) {
	// Arrange
	s := memory.NewStore()

	// Act
	records, err := s.History(context.Background(), "nope", 10)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_ClearHistory(t *testing.T) {
	// Arrange
	s := memory.NewStore()
	ctx := context.Background()

	sessionID, _ := s.CreateSession(ctx)
	_, err := s.AppendMessage(ctx, sessionID, store.Record{Message: "bye"})
	require.NoError(t, err)
	require.NoError(t, s.RecordInteraction(ctx, sessionID, store.Interaction{Intent: "goodbye"}))

	// Act
	require.NoError(t, s.ClearHistory(ctx, sessionID))

	// Assert
	records, err := s.History(ctx, sessionID, 0)
	require.NoError(t, err)
	assert.Empty(t, records)

	// The session and its analytics survive a clear
	exists, err := s.SessionExists(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, exists)

	interactions, err := s.Interactions(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, interactions, 1)
}

func TestStore_ClearHistory_UnknownSession(t *testing.T) {
	// Act & Assert
	assert.NoError(t, memory.NewStore().ClearHistory(context.Background(), "nope"))
}

func TestStore_Interactions(t *testing.T) {
	// Arrange
	s := memory.NewStore()
	ctx := context.Background()

	sessionID, _ := s.CreateSession(ctx)
	require.NoError(t, s.RecordInteraction(ctx, sessionID, store.Interaction{Intent: "greeting", ResponseTimeMs: 12}))
	require.NoError(t, s.RecordInteraction(ctx, sessionID, store.Interaction{Intent: "pricing", ResponseTimeMs: 8}))

	// Act
	interactions, err := s.Interactions(ctx, sessionID)

	// Assert
	require.NoError(t, err)
	require.Len(t, interactions, 2)
	assert.Equal(t, "greeting", interactions[0].Intent)
	assert.Equal(t, int64(8), interactions[1].ResponseTimeMs)
}

func TestStore_PingAndClose(t *testing.T) {
	// Arrange
	s := memory.NewStore()

	// Act & Assert
	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, s.Close())
}
