package conversation_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/intentbot/chat-client/internal/domain/models"
	"github.com/intentbot/chat-client/internal/pkg/confirm"
	"github.com/intentbot/chat-client/internal/services/conversation"
	"github.com/intentbot/chat-client/internal/services/gateway/gatewaytest"
)

// fixedSession is a static SessionRef for tests.
type fixedSession string

func (s fixedSession) SessionID() string { return string(s) }

func newTestStore(t *testing.T, gw *gatewaytest.MockClient, c confirm.Confirmer) *conversation.Store {
	t.Helper()

	store, err := conversation.NewStore(&conversation.Config{
		Gateway:   gw,
		Confirmer: c,
	})
	require.NoError(t, err)
	return store
}

func TestNewStore_NilConfig(t *testing.T) {
	// Act
	store, err := conversation.NewStore(nil)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "config is required")
}

func TestNewStore_NilGateway(t *testing.T) {
	// Act
	store, err := conversation.NewStore(&conversation.Config{
		Confirmer: confirm.Always(true),
	})

	// Assert
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "gateway client is required")
}

func TestStore_Append_AssignsIncreasingIDs(t *testing.T) {
	// Arrange
	store := newTestStore(t, &gatewaytest.MockClient{}, confirm.Always(true))

	// Act
	first := store.Append(models.NewUserMessage("one"))
	second := store.Append(models.NewBotMessage("two", time.Time{}, "greeting", models.SentimentPositive, 0.95))
	third := store.Append(models.NewUserMessage("three"))

	// Assert
	assert.Less(t, first.ID, second.ID)
	assert.Less(t, second.ID, third.ID)

	msgs := store.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "two", msgs[1].Text)
	assert.Equal(t, "three", msgs[2].Text)
}

func TestStore_ReplaceAll_StampsMissingIDs(t *testing.T) {
	// Arrange
	store := newTestStore(t, &gatewaytest.MockClient{}, confirm.Always(true))
	store.Append(models.NewUserMessage("old"))

	// Act
	store.ReplaceAll([]models.Message{
		models.NewBotMessage("fresh", time.Time{}, "greeting", models.SentimentPositive, 0),
	})

	// Assert
	msgs := store.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "fresh", msgs[0].Text)
	assert.NotZero(t, msgs[0].ID)

	// IDs must keep increasing after a replace
	next := store.Append(models.NewUserMessage("after"))
	assert.Greater(t, next.ID, msgs[0].ID)
}

func TestStore_ReplaceAll_NeverLowersSequence(t *testing.T) {
	// Arrange
	store := newTestStore(t, &gatewaytest.MockClient{}, confirm.Always(true))

	seeded := models.NewUserMessage("seeded")
	seeded.ID = 40

	// Act
	store.ReplaceAll([]models.Message{seeded})
	next := store.Append(models.NewUserMessage("next"))

	// Assert
	assert.Greater(t, next.ID, int64(40))
}

func TestStore_Messages_ReturnsCopy(t *testing.T) {
	// Arrange
	store := newTestStore(t, &gatewaytest.MockClient{}, confirm.Always(true))
	store.Append(models.NewUserMessage("hello"))

	// Act
	msgs := store.Messages()
	msgs[0].Text = "mutated"

	// Assert
	assert.Equal(t, "hello", store.Messages()[0].Text)
}

func TestStore_Clear_Declined(t *testing.T) {
	// Arrange
	mockGateway := &gatewaytest.MockClient{}
	store := newTestStore(t, mockGateway, confirm.Always(false))
	store.BindSession(fixedSession("sess-1"))
	store.Append(models.NewUserMessage("keep me"))

	// Act
	cleared := store.Clear(context.Background())

	// Assert
	assert.False(t, cleared)
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "keep me", store.Messages()[0].Text)
	mockGateway.AssertNotCalled(t, "ClearHistory", mock.Anything, mock.Anything)
}

func TestStore_Clear_Confirmed(t *testing.T) {
	// Arrange
	mockGateway := &gatewaytest.MockClient{}
	mockGateway.On("ClearHistory", mock.Anything, "sess-1").Return(nil)

	store := newTestStore(t, mockGateway, confirm.Always(true))
	store.BindSession(fixedSession("sess-1"))
	store.Append(models.NewUserMessage("first"))
	store.Append(models.NewUserMessage("second"))

	// Act
	cleared := store.Clear(context.Background())

	// Assert
	assert.True(t, cleared)

	msgs := store.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, conversation.ClearedText, msgs[0].Text)
	assert.False(t, msgs[0].IsUser)
	mockGateway.AssertExpectations(t)
}

func TestStore_Clear_BackendFailureStillClearsLocally(t *testing.T) {
	// Arrange
	mockGateway := &gatewaytest.MockClient{}
	mockGateway.On("ClearHistory", mock.Anything, "sess-1").Return(assert.AnError)

	store := newTestStore(t, mockGateway, confirm.Always(true))
	store.BindSession(fixedSession("sess-1"))
	store.Append(models.NewUserMessage("doomed"))

	// Act
	cleared := store.Clear(context.Background())

	// Assert
	assert.True(t, cleared)
	require.Equal(t, 1, store.Len())
	assert.Equal(t, conversation.ClearedText, store.Messages()[0].Text)
}

func TestStore_Clear_NoSessionSkipsBackend(t *testing.T) {
	// Arrange
	mockGateway := &gatewaytest.MockClient{}
	store := newTestStore(t, mockGateway, confirm.Always(true))
	store.Append(models.NewUserMessage("local only"))

	// Act
	cleared := store.Clear(context.Background())

	// Assert
	assert.True(t, cleared)
	assert.Equal(t, 1, store.Len())
	mockGateway.AssertNotCalled(t, "ClearHistory", mock.Anything, mock.Anything)
}

func TestStore_ExportAsText(t *testing.T) {
	// Arrange
	store := newTestStore(t, &gatewaytest.MockClient{}, confirm.Always(true))

	ts := time.Date(2024, 3, 10, 14, 30, 5, 0, time.Local)

	userMsg := models.NewUserMessage("What are your hours?")
	userMsg.Timestamp = ts
	store.Append(userMsg)

	store.Append(models.NewBotMessage("We're open 24/7!", ts.Add(2*time.Second), "hours", models.SentimentNeutral, 0.95))

	// Act
	text := store.ExportAsText()

	// Assert
	expected := fmt.Sprintf("[%s] You: What are your hours?\n\n[%s] Bot: We're open 24/7!",
		ts.Format("2006-01-02 15:04:05"),
		ts.Add(2*time.Second).Format("2006-01-02 15:04:05"))
	assert.Equal(t, expected, text)
}

func TestStore_ExportAsText_Empty(t *testing.T) {
	// Arrange
	store := newTestStore(t, &gatewaytest.MockClient{}, confirm.Always(true))

	// Act & Assert
	assert.Equal(t, "", store.ExportAsText())
}
