// Package retry provides bounded exponential backoff for transient
// failures, used where a short outage should not surface as a lost event.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/kevin997/csl-payments/internal/pkg/logger"
)

// Func is one attempt of the operation being retried
type Func func(ctx context.Context) error

// Config bounds the retry loop
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
}

// DefaultConfig is tuned for in-cluster broker hiccups: three quick
// attempts, well under a request timeout
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   2 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs operations with exponential backoff between attempts
type Retrier struct {
	config Config
}

// New creates a retrier with the given configuration
func New(config Config) *Retrier {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.Multiplier < 1 {
		config.Multiplier = 2.0
	}
	return &Retrier{config: config}
}

// Do runs fn until it succeeds, the attempts are exhausted, or the context
// is cancelled
func (r *Retrier) Do(ctx context.Context, op string, fn Func) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("operation succeeded after retry",
					logger.String("operation", op),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		logger.Debug("operation failed, retrying",
			logger.String("operation", op),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Err(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", op, r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if d > float64(r.config.MaxDelay) {
		d = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		d += d * 0.1 * rand.Float64()
	}
	return time.Duration(d)
}
