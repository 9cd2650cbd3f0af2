package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/intentbot/chat-client/internal/domain/models"
)

// apiPrefix is the fixed versioned prefix appended to the base URL.
const apiPrefix = "/api/v1"

// fallbackDetail is used when an error body is absent or unparseable.
const fallbackDetail = "An error occurred"

// ClientConfig holds the configuration for the HTTP gateway client.
type ClientConfig struct {
	// BaseURL is the backend root, without the API prefix.
	BaseURL string
	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// httpClient implements the Client interface over HTTP.
type httpClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new HTTP gateway client.
func NewClient(cfg *ClientConfig) (Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	return &httpClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: hc,
	}, nil
}

// CreateSession requests a new conversation session.
func (c *httpClient) CreateSession(ctx context.Context) (string, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/session", nil, &resp); err != nil {
		return "", err
	}
	return resp.SessionID, nil
}

// SendMessage sends a user message and returns the classified reply.
func (c *httpClient) SendMessage(ctx context.Context, message, sessionID string) (*ChatReply, error) {
	req := chatRequest{Message: message, SessionID: sessionID}

	var reply ChatReply
	if err := c.do(ctx, http.MethodPost, "/chat", &req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// History retrieves stored messages for the session.
func (c *httpClient) History(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	path := fmt.Sprintf("/history/%s?limit=%d", url.PathEscape(sessionID), limit)

	var resp historyResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// ClearHistory deletes the stored history for the session.
func (c *httpClient) ClearHistory(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/history/"+url.PathEscape(sessionID), nil, nil)
}

// Analytics retrieves interaction statistics for the session.
func (c *httpClient) Analytics(ctx context.Context, sessionID string) (*models.Analytics, error) {
	var resp models.Analytics
	if err := c.do(ctx, http.MethodGet, "/analytics/"+url.PathEscape(sessionID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Intents lists the intent labels the backend can classify.
func (c *httpClient) Intents(ctx context.Context) ([]string, error) {
	var resp intentsResponse
	if err := c.do(ctx, http.MethodGet, "/intents", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Intents, nil
}

// ReloadRules asks the backend to reload its classification rules.
func (c *httpClient) ReloadRules(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/reload-rules", nil, nil)
}

// Health reports backend health.
func (c *httpClient) Health(ctx context.Context) (*HealthStatus, error) {
	var resp HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do executes one request/response round trip. A nil out skips decoding, as
// does a 204 response.
func (c *httpClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// setHeaders sets the required headers for backend requests.
func (c *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// decodeError converts a non-success response into an APIError.
func decodeError(resp *http.Response) error {
	detail := fallbackDetail

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		detail = body.Detail
	}

	return &APIError{Status: resp.StatusCode, Detail: detail}
}
