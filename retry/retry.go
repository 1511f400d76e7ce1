// Package retry is an optional wrapping layer around client calls. The
// client itself never retries; callers who want backoff wrap their call in
// WithRetry.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net"
	"time"

	perrors "github.com/perceptron-ai/perceptron-go/errors"
)

// Config holds retry configuration parameters
type Config struct {
	MaxAttempts int           `json:"max_attempts"`
	BaseDelay   time.Duration `json:"base_delay"`
	MaxDelay    time.Duration `json:"max_delay"`
	JitterRatio float64       `json:"jitter_ratio"`
}

// DefaultConfig returns the default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 5,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    3 * time.Second,
		JitterRatio: 0.25, // 25% jitter
	}
}

// WithRetry performs exponential backoff retries on transient errors.
func WithRetry(ctx context.Context, fn func() error) error {
	return WithRetryConfig(ctx, fn, DefaultConfig())
}

// WithRetryConfig performs exponential backoff retries with custom configuration.
func WithRetryConfig(ctx context.Context, fn func() error, config Config) error {
	var attempt int
	for {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return err
		}
		attempt++
		if attempt >= config.MaxAttempts {
			return err
		}
		// Exponential backoff with jitter
		delay := time.Duration(float64(config.BaseDelay) * math.Pow(2, float64(attempt-1)))
		if delay > config.MaxDelay {
			delay = config.MaxDelay
		}
		// Add randomized jitter to prevent thundering herd
		jitter := time.Duration(rand.Float64() * config.JitterRatio * float64(delay))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay + jitter):
		}
	}
}

// IsTransient reports whether an error is worth retrying: rate limits and
// server-side failures are, everything else (bad requests, auth failures,
// decode failures, missing configuration) is not.
func IsTransient(err error) bool {
	var apiErr *perrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429 || apiErr.StatusCode >= 500
	}

	// Retry on network timeouts
	var ne net.Error
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return true
		}
	}
	return false
}
