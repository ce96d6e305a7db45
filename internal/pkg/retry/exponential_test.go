package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	r := New(fastConfig(3), logger.NewNopLogger())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("upstream unavailable")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	r := New(fastConfig(2), logger.NewNopLogger())
	cause := errors.New("upstream unavailable")

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return cause
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 3, calls)
}

func TestExecute_PermanentStopsImmediately(t *testing.T) {
	r := New(fastConfig(5), logger.NewNopLogger())
	cause := errors.New("bad request")

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return Permanent(cause)
	})

	assert.Equal(t, cause, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_RetryableFuncFilters(t *testing.T) {
	cfg := fastConfig(5)
	cfg.RetryableFunc = func(err error) bool { return err.Error() == "retry me" }
	r := New(cfg, nil)

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return errors.New("retry me")
		}
		return errors.New("give up")
	})

	assert.EqualError(t, err, "give up")
	assert.Equal(t, 2, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	r := New(fastConfig(3), logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := r.Execute(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestCalculateDelay_CappedAtMax(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: 250 * time.Millisecond, Multiplier: 2}, nil)

	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 250*time.Millisecond, r.calculateDelay(5))
}

func TestPermanent_Nil(t *testing.T) {
	assert.Nil(t, Permanent(nil))
	assert.False(t, IsPermanent(errors.New("x")))
	assert.True(t, IsPermanent(Permanent(errors.New("x"))))
}
