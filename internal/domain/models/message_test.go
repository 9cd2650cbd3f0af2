package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/intentbot/chat-client/internal/domain/models"
)

func TestNewUserMessage(t *testing.T) {
	// Act
	m := models.NewUserMessage("hello")

	// Assert
	assert.Equal(t, "hello", m.Text)
	assert.True(t, m.IsUser)
	assert.False(t, m.Timestamp.IsZero())
	assert.Empty(t, m.Intent)
	assert.Empty(t, m.Sentiment)
	assert.Zero(t, m.Confidence)
	assert.Zero(t, m.ID)
}

func TestNewBotMessage(t *testing.T) {
	// Arrange
	ts := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	// Act
	m := models.NewBotMessage("Hi!", ts, "greeting", models.SentimentPositive, 0.95)

	// Assert
	assert.Equal(t, "Hi!", m.Text)
	assert.False(t, m.IsUser)
	assert.Equal(t, ts, m.Timestamp)
	assert.Equal(t, "greeting", m.Intent)
	assert.Equal(t, models.SentimentPositive, m.Sentiment)
	assert.Equal(t, 0.95, m.Confidence)
}

func TestNewBotMessage_ZeroTimestamp(t *testing.T) {
	// Act
	m := models.NewBotMessage("Hi!", time.Time{}, "greeting", models.SentimentPositive, 0.95)

	// Assert
	assert.False(t, m.Timestamp.IsZero())
}

func TestMessage_Author(t *testing.T) {
	// Act & Assert
	assert.Equal(t, "You", models.NewUserMessage("x").Author())
	assert.Equal(t, "Bot", models.NewBotMessage("x", time.Time{}, "", models.SentimentNeutral, 0).Author())
}
