package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/optimat/internal/pkg/circuitbreaker"
	"github.com/piresc/optimat/internal/pkg/retry"
)

const defaultTimeout = 10 * time.Second

// Config configures an upstream JSON client
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Retrier   *retry.Retrier                 // optional; nil means a single attempt
	Breaker   *circuitbreaker.CircuitBreaker // optional; wraps the whole call including retries
}

// Client is a small JSON client for third-party HTTP APIs
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a new HTTP client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retrier: cfg.Retrier,
		breaker: cfg.Breaker,
	}
}

// ErrDecode marks a response body that could not be decoded
var ErrDecode = errors.New("failed to decode response")

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether a retry could succeed
func (e *HTTPError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// GetJSON performs a GET on path with query and decodes the JSON body into out.
// 5xx, 429 and transport failures are retried when a retrier is configured.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	attempt := func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to build request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			httpErr := &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
			if httpErr.Temporary() {
				return httpErr
			}
			return retry.Permanent(httpErr)
		}

		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return retry.Permanent(fmt.Errorf("%w: %v", ErrDecode, err))
		}
		return nil
	}

	call := func(ctx context.Context) error {
		if c.retrier == nil {
			err := attempt(ctx)
			if retry.IsPermanent(err) {
				return unwrapPermanent(err)
			}
			return err
		}
		return c.retrier.Execute(ctx, attempt)
	}

	if c.breaker == nil {
		return call(ctx)
	}
	return c.breaker.Execute(ctx, call)
}

// IsUpstreamFailure reports whether err means the upstream is unhealthy, as
// opposed to rejecting this particular request
func IsUpstreamFailure(err error) bool {
	if err == nil || errors.Is(err, ErrDecode) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Temporary()
	}
	return true
}

func unwrapPermanent(err error) error {
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		return u.Unwrap()
	}
	return err
}
