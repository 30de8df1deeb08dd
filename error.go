package newslingo

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// EINVALID covers bad input (URL, credential) detected before any network
// call. EUNAVAILABLE covers fetch failures and service failures that
// survived retrying. ETRANSIENT marks a retryable service failure and is
// consumed by the retry controller; it should not escape a stage.
// EMALFORMED marks a structured response that failed to parse or validate.
const (
	EINVALID     = "invalid"
	ETRANSIENT   = "transient"
	EUNAVAILABLE = "unavailable"
	EMALFORMED   = "malformed"
	EINTERNAL    = "internal"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("newslingo error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
