package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned from a use case wraps exactly one of these.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("internal server error")
)

// Error carries a client-safe message next to its kind and optional cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) error {
	return newError(ErrValidation, format, args...)
}

func Unauthenticated(format string, args ...interface{}) error {
	return newError(ErrUnauthenticated, format, args...)
}

func Forbidden(format string, args ...interface{}) error {
	return newError(ErrForbidden, format, args...)
}

func NotFound(format string, args ...interface{}) error {
	return newError(ErrNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) error {
	return newError(ErrConflict, format, args...)
}

// Internal wraps an unexpected failure. The cause is kept for logging and
// never shown to clients.
func Internal(message string, cause error) error {
	return &Error{Kind: ErrInternal, Message: message, Err: cause}
}

// PublicMessage returns the text that is safe to send back to a client.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && !errors.Is(appErr.Kind, ErrInternal) {
		return appErr.Message
	}
	return ErrInternal.Error()
}

// IsInternal reports whether err should be treated as an unexpected failure.
func IsInternal(err error) bool {
	for _, kind := range []error{ErrValidation, ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrConflict} {
		if errors.Is(err, kind) {
			return false
		}
	}
	return true
}
