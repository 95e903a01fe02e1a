package retry

import (
	"context"
	"time"
)

// Default policy values applied when a Policy field is left at its zero value.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 5 * time.Second
)

// Policy computes retry decisions for delivery attempts.
// The zero value is valid and falls back to the package defaults,
// so callers can embed a Policy without explicit initialization.
// Policy is a value type and safe for concurrent use.
type Policy struct {
	// MaxAttempts is the total number of delivery attempts allowed,
	// including the first one.
	MaxAttempts int

	// BaseDelay is the unit of linear backoff between attempts.
	BaseDelay time.Duration
}

// ShouldRetry reports whether another attempt is allowed after
// attempts failures so far.
func (p Policy) ShouldRetry(attempts int) bool {
	return attempts < p.maxAttempts()
}

// NextDelay returns the wait before the given retry attempt.
// Attempt starts at 1 for the first retry.
// The delay is BaseDelay * attempt, linear rather than exponential.
func (p Policy) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return p.baseDelay() * time.Duration(attempt)
}

// Wait blocks for NextDelay(attempt) or until the context is done,
// returning the context error in the latter case.
func (p Policy) Wait(ctx context.Context, attempt int) error {
	delay := p.NextDelay(attempt)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p Policy) maxAttempts() int {
	if p.MaxAttempts > 0 {
		return p.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (p Policy) baseDelay() time.Duration {
	if p.BaseDelay > 0 {
		return p.BaseDelay
	}
	return DefaultBaseDelay
}
