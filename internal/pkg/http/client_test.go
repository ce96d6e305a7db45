package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/optimat/internal/pkg/circuitbreaker"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		config          Config
		expectedBaseURL string
		expectedTimeout time.Duration
	}{
		{
			name:            "Valid configuration",
			config:          Config{BaseURL: "https://nominatim.example.org", Timeout: 30 * time.Second},
			expectedBaseURL: "https://nominatim.example.org",
			expectedTimeout: 30 * time.Second,
		},
		{
			name:            "With trailing slash",
			config:          Config{BaseURL: "https://nominatim.example.org/"},
			expectedBaseURL: "https://nominatim.example.org",
			expectedTimeout: defaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			assert.Equal(t, tt.expectedBaseURL, client.baseURL)
			assert.Equal(t, tt.expectedTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "1600 Pennsylvania Ave", r.URL.Query().Get("q"))
		assert.Equal(t, "optimat_app", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"38.8977","lon":"-77.0365"}]`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, UserAgent: "optimat_app"})

	var out []map[string]string
	err := client.GetJSON(context.Background(), "/search", url.Values{"q": {"1600 Pennsylvania Ave"}}, &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "38.8977", out[0]["lat"])
}

func TestClient_GetJSON_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad query", http.StatusBadRequest)
	}))
	defer server.Close()

	retrier := retry.New(retry.Config{MaxRetries: 3, BaseDelay: time.Millisecond}, logger.NewNopLogger())
	client := NewClient(Config{BaseURL: server.URL, Retrier: retrier})

	err := client.GetJSON(context.Background(), "/search", nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_GetJSON_ServerErrorRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	retrier := retry.New(retry.Config{MaxRetries: 3, BaseDelay: time.Millisecond}, logger.NewNopLogger())
	client := NewClient(Config{BaseURL: server.URL, Retrier: retrier})

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.GetJSON(context.Background(), "/status", nil, &out)

	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_GetJSON_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	var out []interface{}
	err := client.GetJSON(context.Background(), "/search", nil, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
	assert.False(t, retry.IsPermanent(err))
}

func TestHTTPError_Temporary(t *testing.T) {
	assert.True(t, (&HTTPError{StatusCode: 503}).Temporary())
	assert.True(t, (&HTTPError{StatusCode: 429}).Temporary())
	assert.False(t, (&HTTPError{StatusCode: 404}).Temporary())
}

func TestClient_GetJSON_BreakerOpensOnServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "nominatim",
		FailureThreshold: 2,
		Timeout:          time.Hour,
		IsFailure:        IsUpstreamFailure,
	}, nil)
	client := NewClient(Config{BaseURL: server.URL, Breaker: breaker})

	for i := 0; i < 2; i++ {
		assert.Error(t, client.GetJSON(context.Background(), "/search", nil, nil))
	}
	err := client.GetJSON(context.Background(), "/search", nil, nil)

	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestIsUpstreamFailure(t *testing.T) {
	assert.False(t, IsUpstreamFailure(nil))
	assert.False(t, IsUpstreamFailure(&HTTPError{StatusCode: http.StatusNotFound}))
	assert.False(t, IsUpstreamFailure(fmt.Errorf("%w: unexpected EOF", ErrDecode)))
	assert.True(t, IsUpstreamFailure(&HTTPError{StatusCode: http.StatusServiceUnavailable}))
	assert.True(t, IsUpstreamFailure(fmt.Errorf("retry limit exceeded: %w", &HTTPError{StatusCode: http.StatusTooManyRequests})))
	assert.True(t, IsUpstreamFailure(errors.New("connection refused")))
}
