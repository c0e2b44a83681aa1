package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/circleapp/circles/internal/database"
	"github.com/circleapp/circles/pkg/apperror"
)

// Service handles user business logic. It also implements the middleware
// Resolver interface, mapping API tokens to user IDs.
type Service struct {
	db   database.TxQuerier
	repo *Repository
}

// NewService creates a new user service
func NewService(db database.TxQuerier, repo *Repository) *Service {
	return &Service{db: db, repo: repo}
}

// Create registers a new user and issues their API token.
func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*User, string, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if len(req.Username) < 3 || len(req.Username) > 50 {
		return nil, "", apperror.New(apperror.ErrValidation, "username must be between 3 and 50 characters")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, "", apperror.New(apperror.ErrValidation, "invalid email address")
	}

	token, err := newToken()
	if err != nil {
		return nil, "", err
	}

	user, err := s.repo.Create(ctx, s.db, req, token)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, "", apperror.New(apperror.ErrConflict, "username or email already taken")
		}
		return nil, "", err
	}

	return user, token, nil
}

// GetByID retrieves a user by their ID
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.New(apperror.ErrNotFound, "user not found")
	}
	return user, nil
}

// ResolveToken maps an API token to a user ID. Unresolvable tokens return
// zero with an error; callers decide whether that is fatal.
func (s *Service) ResolveToken(ctx context.Context, token string) (int64, error) {
	user, err := s.repo.GetByToken(ctx, s.db, token)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, apperror.New(apperror.ErrUnauthenticated, "invalid token")
	}
	return user.ID, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
