package pipeline_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanawatp/newslingo"
	"github.com/tanawatp/newslingo/pipeline"
)

// testDelays keeps retry tests fast.
func testDelays() []time.Duration {
	return []time.Duration{time.Millisecond, time.Millisecond}
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	delays := pipeline.DefaultRetryDelays()

	// 3 attempts total with doubling waits between them.
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, delays)
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	t.Parallel()

	attempts := 0
	result, err := pipeline.Retry(context.Background(), "op", func(context.Context) (string, error) {
		attempts++
		return "ok", nil
	}, nil, testDelays())

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, attempts)
}

func TestRetry_RecoversAfterTransientFailures(t *testing.T) {
	t.Parallel()

	for failures := 1; failures <= 2; failures++ {
		attempts := 0
		var warnings []string
		warn := func(format string, args ...any) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		}

		result, err := pipeline.Retry(context.Background(), "op", func(context.Context) (string, error) {
			attempts++
			if attempts <= failures {
				return "", newslingo.Errorf(newslingo.ETRANSIENT, "rate limited")
			}
			return "ok", nil
		}, warn, testDelays())

		require.NoError(t, err, "failures=%d", failures)
		assert.Equal(t, "ok", result)
		assert.Equal(t, failures+1, attempts)
		// One warning per backoff wait.
		assert.Len(t, warnings, failures)
	}
}

func TestRetry_ExhaustsAttemptsAndReturnsUnavailable(t *testing.T) {
	t.Parallel()

	attempts := 0
	result, err := pipeline.Retry(context.Background(), "summarize", func(context.Context) (string, error) {
		attempts++
		return "ignored", newslingo.Errorf(newslingo.ETRANSIENT, "service overloaded")
	}, nil, testDelays())

	require.Error(t, err)
	assert.Equal(t, newslingo.EUNAVAILABLE, newslingo.ErrorCode(err))
	assert.Contains(t, newslingo.ErrorMessage(err), "after 3 attempts")
	assert.Contains(t, newslingo.ErrorMessage(err), "service overloaded")
	assert.Empty(t, result)
	assert.Equal(t, len(testDelays())+1, attempts)
}

func TestRetry_FatalErrorAbortsImmediately(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := pipeline.Retry(context.Background(), "op", func(context.Context) (string, error) {
		attempts++
		return "", newslingo.Errorf(newslingo.EINTERNAL, "bad request")
	}, nil, testDelays())

	require.Error(t, err)
	assert.Equal(t, newslingo.EINTERNAL, newslingo.ErrorCode(err))
	assert.Equal(t, 1, attempts)
}

func TestRetry_MalformedResponseIsNotRetried(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := pipeline.Retry(context.Background(), "vocabulary", func(context.Context) ([]newslingo.VocabEntry, error) {
		attempts++
		return nil, newslingo.Errorf(newslingo.EMALFORMED, "not valid JSON")
	}, nil, testDelays())

	require.Error(t, err)
	assert.Equal(t, newslingo.EMALFORMED, newslingo.ErrorCode(err))
	assert.Equal(t, 1, attempts)
}

func TestRetry_BackoffWaitIsInterruptible(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	start := time.Now()
	_, err := pipeline.Retry(ctx, "op", func(context.Context) (string, error) {
		attempts++
		cancel() // cancel during the upcoming backoff wait
		return "", newslingo.Errorf(newslingo.ETRANSIENT, "busy")
	}, nil, []time.Duration{10 * time.Second})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
	assert.Less(t, time.Since(start), time.Second)
}
