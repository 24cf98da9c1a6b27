package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks an error as transient. [Retry] only retries errors
// that wrap one.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling delay after each retryable
// failure. A non-retryable error is returned at once. Returns the last error
// if every attempt fails, or ctx.Err() if ctx ends while waiting.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			delay *= 2
		}
	}
	return unwrapRetryable(lastErr)
}

// IsRetryable reports whether err wraps a [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// unwrapRetryable strips the retry marker once retrying is over.
func unwrapRetryable(err error) error {
	var re *RetryableError
	if errors.As(err, &re) {
		return re.Err
	}
	return err
}
