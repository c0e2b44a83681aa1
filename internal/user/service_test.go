package user

import (
	"context"
	"errors"
	"testing"

	"github.com/circleapp/circles/pkg/apperror"
)

func TestCreateValidation(t *testing.T) {
	svc := NewService(nil, NewRepository())
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{"username too short", CreateUserRequest{Username: "ab", Email: "ab@example.com"}},
		{"username only whitespace", CreateUserRequest{Username: "   ", Email: "x@example.com"}},
		{"email without at sign", CreateUserRequest{Username: "alice", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Create(ctx, &tt.req)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("Create() error = %v, want validation error", err)
			}
		})
	}
}

func TestNewToken(t *testing.T) {
	a, err := newToken()
	if err != nil {
		t.Fatalf("newToken() error: %v", err)
	}
	b, err := newToken()
	if err != nil {
		t.Fatalf("newToken() error: %v", err)
	}

	// 32 random bytes hex-encoded.
	if len(a) != 64 {
		t.Errorf("token length = %d, want 64", len(a))
	}
	if a == b {
		t.Error("two generated tokens are identical")
	}
}
