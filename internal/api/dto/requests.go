// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// ChatRequest is the request body for the chat endpoint. The 1000-character
// cap matches the client-side soft limit.
type ChatRequest struct {
	Message   string `json:"message" binding:"required,min=1,max=1000"`
	SessionID string `json:"session_id"`
}
