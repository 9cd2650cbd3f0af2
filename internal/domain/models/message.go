// Package models contains domain models for the chat client.
package models

import "time"

// Sentiment is the three-valued mood classification the backend attaches to
// assistant replies.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Message represents a single turn in a conversation. Messages are immutable
// once appended; the conversation store assigns the ID.
type Message struct {
	ID         int64     `json:"id"`
	Text       string    `json:"message"`
	IsUser     bool      `json:"is_user"`
	Timestamp  time.Time `json:"timestamp"`
	Intent     string    `json:"intent,omitempty"`
	Sentiment  Sentiment `json:"sentiment,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
}

// NewUserMessage creates a user-authored message. User messages never carry
// intent, sentiment, or confidence.
func NewUserMessage(text string) Message {
	return Message{
		Text:      text,
		IsUser:    true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBotMessage creates an assistant-authored message. A zero timestamp is
// replaced with the current time.
func NewBotMessage(text string, timestamp time.Time, intent string, sentiment Sentiment, confidence float64) Message {
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	return Message{
		Text:       text,
		Timestamp:  timestamp,
		Intent:     intent,
		Sentiment:  sentiment,
		Confidence: confidence,
	}
}

// Author returns the transcript label for the message author.
func (m Message) Author() string {
	if m.IsUser {
		return "You"
	}
	return "Bot"
}
