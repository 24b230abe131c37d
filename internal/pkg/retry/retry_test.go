package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func quickConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}
}

func TestRetrier_Do_SucceedsFirstAttempt(t *testing.T) {
	r := New(quickConfig())

	calls := 0
	err := r.Do(context.Background(), "publish", func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetrier_Do_RecoversAfterFailures(t *testing.T) {
	r := New(quickConfig())

	calls := 0
	err := r.Do(context.Background(), "publish", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("broker unavailable")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_Do_ExhaustsAttempts(t *testing.T) {
	r := New(quickConfig())

	cause := errors.New("broker unavailable")
	calls := 0
	err := r.Do(context.Background(), "publish", func(ctx context.Context) error {
		calls++
		return cause
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 4, calls)
	assert.Contains(t, err.Error(), "publish failed after 4 attempts")
}

func TestRetrier_Do_StopsOnCancelledContext(t *testing.T) {
	r := New(quickConfig())

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := r.Do(ctx, "publish", func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("broker unavailable")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDelay_CappedAtMaxDelay(t *testing.T) {
	r := New(Config{
		MaxRetries: 10,
		BaseDelay:  time.Second,
		MaxDelay:   2 * time.Second,
		Multiplier: 10.0,
	})

	assert.LessOrEqual(t, r.delay(5), 2*time.Second)
}
