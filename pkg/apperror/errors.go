package apperror

import (
	"errors"
	"fmt"
)

// Taxonomy sentinels. Every error that crosses a service boundary wraps
// exactly one of these so handlers can map it to an HTTP status with
// errors.Is.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
)

// New wraps a taxonomy sentinel with a caller-facing message.
func New(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}

// Newf is New with formatting.
func Newf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Message returns the caller-facing part of an error produced by New,
// stripping the sentinel prefix.
func Message(err error) string {
	for _, kind := range []error{ErrUnauthenticated, ErrForbidden, ErrValidation, ErrConflict, ErrNotFound} {
		if errors.Is(err, kind) {
			prefix := kind.Error() + ": "
			if msg := err.Error(); len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
				return msg[len(prefix):]
			}
			return kind.Error()
		}
	}
	return err.Error()
}
