package gemini

import (
	"context"
	"errors"
	"net/http"

	"github.com/tanawatp/newslingo"
	"google.golang.org/genai"
)

// classify maps a genai call error onto the application error taxonomy.
// Only API errors with a transient status are marked ETRANSIENT (and thus
// retryable); any other failure aborts its stage immediately.
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if transientStatus(apiErr.Code) {
			return newslingo.Errorf(newslingo.ETRANSIENT, "gemini API error %d: %s", apiErr.Code, apiErr.Message)
		}
		return newslingo.Errorf(newslingo.EINTERNAL, "gemini API error %d: %s", apiErr.Code, apiErr.Message)
	}

	return newslingo.Errorf(newslingo.EINTERNAL, "gemini call failed: %v", err)
}

// transientStatus reports whether an HTTP status from the API is worth
// retrying: rate limiting, request timeout, and server-side failures.
func transientStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
