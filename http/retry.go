package http

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// transientError marks failures worth another attempt: network errors,
// server errors and rate limiting.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

type fetchFunc func(ctx context.Context, url string) (string, error)

// fetchWithRetry calls fetch once plus once per delay, stopping at the first
// success, the first permanent error, or context cancellation.
func fetchWithRetry(ctx context.Context, url string, fetch fetchFunc, delays []time.Duration, logger *slog.Logger) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !isTransient(err) || attempt >= maxAttempts-1 {
			break
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		if logger != nil {
			logger.Warn("retrying fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
