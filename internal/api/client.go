// Package api provides the REST client for the travel-booking backend.
//
// The client is credential-agnostic UI code's only way to the network:
// pages fetch through it, the table components never touch it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TokenSource supplies the bearer token attached to every request.
// An empty token means "unauthenticated"; the backend decides what
// that is allowed to do.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a TokenSource returning a fixed token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() (string, error) {
	return string(s), nil
}

// TokenFunc adapts a function to the TokenSource interface.
type TokenFunc func() (string, error)

// Token implements TokenSource.
func (f TokenFunc) Token() (string, error) {
	return f()
}

// Options configures the API client.
type Options struct {
	// BaseURL is the root of the REST API.
	BaseURL string

	// Timeout applies to each request.
	Timeout time.Duration

	// RateLimit is the maximum number of requests per second (0 = unlimited).
	RateLimit float64

	// RateBurst is the burst size for the rate limiter.
	RateBurst int

	// TokenSource supplies the bearer token. May be nil.
	TokenSource TokenSource

	// HTTPClient overrides the underlying http client. May be nil.
	HTTPClient *http.Client

	// Logger receives one debug entry per request. May be nil.
	Logger *slog.Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// DefaultOptions returns sensible client defaults.
func DefaultOptions() Options {
	return Options{
		BaseURL:   "http://localhost:8000/api",
		Timeout:   30 * time.Second,
		RateLimit: 10,
		RateBurst: 5,
	}
}

// Client is the travel-booking API client.
type Client struct {
	base      *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	tokens    TokenSource
	log       *slog.Logger
	userAgent string
}

// New creates a new Client from the given options.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL must not be empty")
	}

	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api: unsupported scheme %q", base.Scheme)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "tripdesk"
	}

	return &Client{
		base:      base,
		http:      httpClient,
		limiter:   limiter,
		tokens:    opts.TokenSource,
		log:       log,
		userAgent: userAgent,
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// do performs one request against the API. body (if non-nil) is
// JSON-encoded; out (if non-nil) receives the decoded response body.
// Non-2xx responses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("api: rate limit wait: %w", err)
	}

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("api: read token: %w", err)
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// get performs a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs a POST with a JSON body.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// put performs a PUT with a JSON body.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// delete performs a DELETE.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
