// Package contentapi is a thin typed client for the remote content API that
// owns all posts, categories, tags, users and affiliate products.
//
// Every operation is a single stateless request/response round-trip. Public
// reads degrade to empty results when the API is unreachable so the site can
// still render; authenticated reads and all writes propagate failures.
package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"game-press/config"
	"game-press/httpclient"
	"game-press/internal/logger"
)

// ErrNotFound marks single-resource lookups that came back 404.
var ErrNotFound = errors.New("resource not found")

// APIError is the single failure type of the client. Status is the HTTP
// status code, or 0 for transport-level failures (refused connection,
// timeout, DNS). Callers distinguish failures by the per-endpoint fallback
// policy, not by subtype, so one type carrying a message is enough.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// RetryOptions bounds the retry decorator around idempotent GETs.
// MaxAttempts <= 1 means a single attempt, which is the default.
type RetryOptions struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client calls the content API. Safe for concurrent use; each call builds
// its own request and decodes its own response.
type Client struct {
	base  *httpclient.BaseClient
	retry RetryOptions
}

// New builds a Client from the application config.
func New() *Client {
	cfg := config.GetConfig().API
	c := NewWithClient(httpclient.New(httpclient.Config{Timeout: cfg.Timeout}), cfg.BaseURL)
	c.retry = RetryOptions{
		MaxAttempts:    cfg.Retry.MaxAttempts,
		InitialBackoff: cfg.Retry.InitialBackoff,
		MaxBackoff:     cfg.Retry.MaxBackoff,
	}
	return c
}

// NewWithBaseURL builds a Client with default HTTP settings, mostly for
// tests pointing at an httptest server.
func NewWithBaseURL(baseURL string) *Client {
	return NewWithClient(nil, baseURL)
}

// NewWithClient builds a Client around an existing http.Client.
func NewWithClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		base: httpclient.NewBaseClientWithClient(httpClient, baseURL),
	}
}

// WithRetry returns a copy of the client using the given retry bounds for
// idempotent reads.
func (c *Client) WithRetry(opts RetryOptions) *Client {
	return &Client{base: c.base, retry: opts}
}

// do is the single request primitive every operation goes through.
//
//   - body != nil: JSON-encoded with a JSON content type.
//   - token != "": attached as a bearer credential.
//   - non-2xx: *APIError with the server's {"error": ...} message when
//     present, else "HTTP <status>".
//   - 2xx with an undecodable body: treated as an empty object, not a
//     failure; operations needing specific fields check for them afterward.
func (c *Client) do(ctx context.Context, method, relPath string, query url.Values, body any, token string, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("encode request body: %v", err)}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := c.base.NewRequest(ctx, method, relPath, query, reader)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		// A malformed body counts as an empty object rather than a failure.
		_ = json.Unmarshal(raw, out)
	}
	return nil
}

// get wraps do for idempotent reads, applying the bounded retry decorator
// when configured. Protocol failures below 500 are never retried.
func (c *Client) get(ctx context.Context, relPath string, query url.Values, token string, out any) error {
	attempts := c.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = c.do(ctx, http.MethodGet, relPath, query, nil, token, out)
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status != 0 && apiErr.Status < 500 {
			return err
		}
		if attempt == attempts {
			break
		}

		backoff := c.backoff(attempt)
		logger.WarnWithFields("content API read failed, retrying", logger.Fields{
			"path":    relPath,
			"attempt": attempt,
			"backoff": backoff.String(),
			"error":   err.Error(),
		})
		select {
		case <-ctx.Done():
			return &APIError{Message: ctx.Err().Error()}
		case <-time.After(backoff):
		}
	}
	return err
}

func (c *Client) backoff(attempt int) time.Duration {
	backoff := c.retry.InitialBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if c.retry.MaxBackoff > 0 && backoff > c.retry.MaxBackoff {
		backoff = c.retry.MaxBackoff
	}
	return backoff
}

func statusError(status int, raw []byte) *APIError {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &envelope)
	msg := envelope.Error
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{Status: status, Message: msg}
}

// Health probes the content API liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, "", nil)
}

// listFromRaw normalizes the two list shapes the API emits on legacy
// endpoints: a bare array, or a {"data": [...]} envelope.
func listFromRaw[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}
	var bare []T
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}
	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		return envelope.Data
	}
	return nil
}

// logDegraded records a public read that was absorbed into an empty result.
func logDegraded(what string, err error) {
	logger.WarnWithFields("content API read degraded to empty result", logger.Fields{
		"read":  what,
		"error": err.Error(),
	})
}
