package ledger

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig controls the bounded-retry policy for appends.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig retries an append up to 3 times with short backoff.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 50 * time.Millisecond,
		MaxWait:     500 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// RetryLedger decorates a Ledger with bounded retries on transient append
// failure. Reads are forwarded untouched: the caller can always re-issue a
// query, but a dropped append would lose an attempt.
type RetryLedger struct {
	inner  Ledger
	config RetryConfig
}

var _ Ledger = (*RetryLedger)(nil)

// WithRetry wraps a Ledger with retrying appends.
func WithRetry(l Ledger, cfg RetryConfig) *RetryLedger {
	return &RetryLedger{inner: l, config: cfg}
}

func (r *RetryLedger) Append(ctx context.Context, rec Record) error {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		err := r.inner.Append(ctx, rec)
		if err == nil {
			return nil
		}
		lastErr = err

		// Context errors are never retried.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		// Last attempt — don't sleep, just surface the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}

	return lastErr
}

func (r *RetryLedger) All(ctx context.Context) ([]Record, error) {
	return r.inner.All(ctx)
}

func (r *RetryLedger) ByUser(ctx context.Context, userID string) ([]Record, error) {
	return r.inner.ByUser(ctx, userID)
}

// backoff computes the wait duration for the given attempt with ±20% jitter.
func (r *RetryLedger) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
