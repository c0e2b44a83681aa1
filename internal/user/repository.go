package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/circleapp/circles/internal/database"
)

// Repository handles user data persistence
type Repository struct{}

// NewRepository creates a new user repository
func NewRepository() *Repository {
	return &Repository{}
}

// Create inserts a new user into the database
func (r *Repository) Create(ctx context.Context, q database.Querier, req *CreateUserRequest, apiToken string) (*User, error) {
	query := `
		INSERT INTO users (username, email, avatar_url, api_token)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, avatar_url, created_at
	`

	user := &User{}
	err := q.QueryRowContext(ctx, query, req.Username, req.Email, req.AvatarURL, apiToken).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.AvatarURL,
		&user.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by their ID
func (r *Repository) GetByID(ctx context.Context, q database.Querier, id int64) (*User, error) {
	query := `
		SELECT id, username, email, avatar_url, created_at
		FROM users
		WHERE id = $1
	`

	user := &User{}
	err := q.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.AvatarURL,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByToken retrieves a user by their API token
func (r *Repository) GetByToken(ctx context.Context, q database.Querier, token string) (*User, error) {
	query := `
		SELECT id, username, email, avatar_url, created_at
		FROM users
		WHERE api_token = $1
	`

	user := &User{}
	err := q.QueryRowContext(ctx, query, token).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.AvatarURL,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by token: %w", err)
	}

	return user, nil
}
