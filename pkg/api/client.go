// Package api is a typed client for the platform's v2 REST endpoints.
// One method per endpoint; parameters map directly onto query strings and
// JSON bodies.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// TokenSource supplies a valid bearer token for each request. The oauth
// manager is the production implementation.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client performs authenticated calls against the API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	logger  zerolog.Logger

	// Authenticated user id, resolved once per invocation.
	userID string
}

// NewClient builds an API client for the given base URL.
func NewClient(baseURL string, tokens TokenSource, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		// Client-side throttle; the server enforces 15-minute windows
		// per endpoint, this just keeps bursts polite.
		limiter: rate.NewLimiter(rate.Limit(1), 5),
		logger:  logger,
	}
}

// APIError is the platform's problem-details error envelope.
type APIError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d %s: %s", e.Status, e.Title, e.Detail)
	}
	return fmt.Sprintf("api error %d %s", e.Status, e.Title)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	accessToken, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logRateLimit(method, path, resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Title: resp.Status}
		if err := json.Unmarshal(data, apiErr); err == nil && apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// logRateLimit surfaces the per-endpoint quota headers at debug level so
// users hitting limits can see how much window remains.
func (c *Client) logRateLimit(method, path string, resp *http.Response) {
	remaining := resp.Header.Get("x-rate-limit-remaining")
	if remaining == "" {
		return
	}
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("limit", resp.Header.Get("x-rate-limit-limit")).
		Str("remaining", remaining).
		Str("reset", resp.Header.Get("x-rate-limit-reset")).
		Msg("rate limit")
}
