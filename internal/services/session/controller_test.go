package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/intentbot/chat-client/internal/domain/models"
	"github.com/intentbot/chat-client/internal/pkg/confirm"
	"github.com/intentbot/chat-client/internal/services/conversation"
	"github.com/intentbot/chat-client/internal/services/gateway/gatewaytest"
	"github.com/intentbot/chat-client/internal/services/session"
)

func newTestController(t *testing.T, gw *gatewaytest.MockClient, c confirm.Confirmer) (*session.Controller, *conversation.Store) {
	t.Helper()

	store, err := conversation.NewStore(&conversation.Config{
		Gateway:   gw,
		Confirmer: c,
	})
	require.NoError(t, err)

	ctrl, err := session.NewController(&session.Config{
		Gateway:   gw,
		Store:     store,
		Confirmer: c,
	})
	require.NoError(t, err)
	store.BindSession(ctrl)

	return ctrl, store
}

func TestNewController_NilConfig(t *testing.T) {
	// Act
	ctrl, err := session.NewController(nil)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, ctrl)
	assert.Contains(t, err.Error(), "config is required")
}

func TestNewController_NilStore(t *testing.T) {
	// Act
	ctrl, err := session.NewController(&session.Config{
		Gateway:   &gatewaytest.MockClient{},
		Confirmer: confirm.Always(true),
	})

	// Assert
	assert.Error(t, err)
	assert.Nil(t, ctrl)
	assert.Contains(t, err.Error(), "conversation store is required")
}

func TestController_SessionID_EmptyBeforeInit(t *testing.T) {
	// Arrange
	ctrl, _ := newTestController(t, &gatewaytest.MockClient{}, confirm.Always(true))

	// Assert
	assert.Equal(t, "", ctrl.SessionID())
}

func TestController_InitializeSession_Success(t *testing.T) {
	// Arrange
	mockGateway := &gatewaytest.MockClient{}
	mockGateway.On("CreateSession", mock.Anything).Return("sess-42", nil)

	ctrl, store := newTestController(t, mockGateway, confirm.Always(true))

	// Act
	err := ctrl.InitializeSession(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sess-42", ctrl.SessionID())

	msgs := store.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, session.WelcomeText, msgs[0].Text)
	assert.False(t, msgs[0].IsUser)
	assert.Equal(t, "greeting", msgs[0].Intent)
	assert.Equal(t, models.SentimentPositive, msgs[0].Sentiment)
	mockGateway.AssertExpectations(t)
}

func TestController_InitializeSession_Failure(t *testing.T) {
	// Arrange
	mockGateway := &gatewaytest.MockClient{}
	mockGateway.On("CreateSession", mock.Anything).Return("", assert.AnError)

	ctrl, store := newTestController(t, mockGateway, confirm.Always(true))
	store.Append(models.NewUserMessage("already here"))

	// Act
	err := ctrl.InitializeSession(context.Background())

	// Assert
	assert.Error(t, err)
	assert.Equal(t, "", ctrl.SessionID())

	// History must survive a failed initialization untouched
	msgs := store.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "already here", msgs[0].Text)
}

func TestController_ResetSession_Confirmed(t *testing.T) {
	// Arrange
	mockGateway := &gatewaytest.MockClient{}
	mockGateway.On("CreateSession", mock.Anything).Return("sess-1", nil).Once()
	mockGateway.On("CreateSession", mock.Anything).Return("sess-2", nil).Once()

	ctrl, store := newTestController(t, mockGateway, confirm.Always(true))
	require.NoError(t, ctrl.InitializeSession(context.Background()))
	store.Append(models.NewUserMessage("hello"))

	// Act
	err := ctrl.ResetSession(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sess-2", ctrl.SessionID())

	msgs := store.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, session.WelcomeText, msgs[0].Text)
	mockGateway.AssertExpectations(t)
}

func TestController_ResetSession_Declined(t *testing.T) {
	// Arrange
	mockGateway := &gatewaytest.MockClient{}
	mockGateway.On("CreateSession", mock.Anything).Return("sess-1", nil).Once()

	ctrl, store := newTestController(t, mockGateway, confirm.Always(true))
	require.NoError(t, ctrl.InitializeSession(context.Background()))
	store.Append(models.NewUserMessage("hello"))

	declined, err := session.NewController(&session.Config{
		Gateway:   mockGateway,
		Store:     store,
		Confirmer: confirm.Always(false),
	})
	require.NoError(t, err)

	// Act
	err = declined.ResetSession(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	mockGateway.AssertNumberOfCalls(t, "CreateSession", 1)
}
