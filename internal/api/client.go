package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ghumakkad/ghumakkad-desktop/internal/session"
)

// Request behavior constants.
const (
	// RequestTimeout bounds every backend call. There is no retry, so a
	// slow call fails once and the user acts on the notification.
	RequestTimeout = 15 * time.Second

	// MaxResponseBytes caps how much of a response body is read.
	MaxResponseBytes = 1 << 20
)

// Client is the authenticated HTTP client for the backend.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     zerolog.Logger

	onSessionExpired func() // navigation side effect, set by the UI
}

// New creates a client for the given backend base URL.
func New(baseURL string, sess *session.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: RequestTimeout},
		session: sess,
		log:     log.With().Str("component", "api").Logger(),
	}
}

// SetSessionExpiredCallback registers the function invoked after the
// session has been torn down, typically navigating back to the login view.
func (c *Client) SetSessionExpiredCallback(callback func()) {
	c.onSessionExpired = callback
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs a JSON round trip against the backend. When authed is true
// the bearer token is attached, and an auth rejection clears the session.
// out may be nil for calls whose body the caller ignores.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var token string
	if authed {
		token = c.session.Token()
		if token == "" {
			c.log.Warn().Str("path", path).Msg("call without session, redirecting to login")
			c.expireSession()
			return ErrNoSession
		}
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id, err := uuid.NewV7(); err == nil {
		req.Header.Set("X-Request-ID", id.String())
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend call")

	if authed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		c.log.Warn().Str("path", path).Int("status", resp.StatusCode).Msg("token rejected, tearing down session")
		c.session.Clear()
		c.expireSession()
		return ErrSessionExpired
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: backendMessage(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			// Malformed payloads are rejected deterministically rather
			// than silently treated as empty lists.
			return fmt.Errorf("decode response from %s: %w", path, err)
		}
	}
	return nil
}

// expireSession fires the registered navigation callback, if any.
func (c *Client) expireSession() {
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// backendMessage extracts the human-readable message from an error body.
// The backend uses both "message" and "msg" keys; anything else falls back
// to a generic text.
func backendMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Msg != "" {
			return body.Msg
		}
	}
	return "request failed"
}
