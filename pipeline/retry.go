package pipeline

import (
	"context"
	"time"

	"github.com/tanawatp/newslingo"
)

// WarnFunc receives non-fatal warnings emitted during a run, such as retry
// attempts and fallback activations.
type WarnFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays between generation call
// attempts: 1s then 2s, for 3 attempts total.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// Retry runs fn, retrying with the given backoff delays as long as the
// failure is transient (ETRANSIENT). Any other error aborts immediately
// and is returned as-is. maxAttempts = len(delays)+1.
//
// Each retry emits a warning through warn, if provided. Backoff waits are
// interruptible: context cancellation aborts the wait and returns ctx.Err().
// When all attempts fail transiently, the zero value is returned with an
// EUNAVAILABLE error wrapping the last cause.
func Retry[T any](ctx context.Context, op string, fn func(ctx context.Context) (T, error), warn WarnFunc, delays []time.Duration) (T, error) {
	var zero T
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if newslingo.ErrorCode(err) != newslingo.ETRANSIENT {
			return zero, err
		}
		lastErr = err

		// Don't sleep after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if warn != nil {
			warn("%s failed (%s), retrying in %s (attempt %d/%d)",
				op, newslingo.ErrorMessage(err), delays[attempt], attempt+2, maxAttempts)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, newslingo.Errorf(newslingo.EUNAVAILABLE,
		"%s failed after %d attempts: %s", op, maxAttempts, newslingo.ErrorMessage(lastErr))
}
