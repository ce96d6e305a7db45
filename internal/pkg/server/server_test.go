package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), 8080, 0)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)

	gs = NewGracefulServer(echo.New(), logger.NewNopLogger(), 8080, 5*time.Second)
	assert.Equal(t, 5*time.Second, gs.shutdownTimeout)
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	gs := NewGracefulServer(e, logger.NewNopLogger(), freePort(t), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool {
		return e.Listener != nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestShutdownManager_ReverseOrderAndErrors(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())

	var mu sync.Mutex
	var order []string
	record := func(name string, err error) func(context.Context) error {
		return func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return err
		}
	}

	sm.Register("postgres", record("postgres", nil))
	sm.Register("redis", record("redis", errors.New("already closed")))
	sm.Register("nsq", record("nsq", nil))

	err := sm.Shutdown(context.Background())

	assert.Equal(t, []string{"nsq", "redis", "postgres"}, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: already closed")
}

func TestShutdownManager_Empty(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	assert.NoError(t, sm.Shutdown(context.Background()))
}
