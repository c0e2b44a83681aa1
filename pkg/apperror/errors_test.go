package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewWrapsSentinel(t *testing.T) {
	err := New(ErrConflict, "name already taken")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("errors.Is(err, ErrConflict) = false, want true")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = true, want false")
	}
}

func TestNewfWrapsSentinel(t *testing.T) {
	err := Newf(ErrValidation, "field %s is required", "name")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	if got := Message(err); got != "field name is required" {
		t.Errorf("Message() = %q, want %q", got, "field name is required")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"wrapped sentinel", New(ErrForbidden, "admins only"), "admins only"},
		{"bare sentinel", ErrNotFound, "not found"},
		{"plain error", errors.New("disk full"), "disk full"},
		{"rewrapped", fmt.Errorf("outer: %w", New(ErrConflict, "duplicate")), "conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
