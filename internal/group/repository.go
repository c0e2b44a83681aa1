package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/circleapp/circles/internal/database"
	"github.com/circleapp/circles/pkg/apperror"
)

// Repository handles group data persistence. Every method takes a Querier so
// the coordinator can run a whole transition in one transaction.
type Repository struct{}

// NewRepository creates a new group repository
func NewRepository() *Repository {
	return &Repository{}
}

// Create inserts a new group. The case-insensitive name check runs in the
// same transaction as the insert; the unique index on lower(name) is the
// authoritative guard.
func (r *Repository) Create(ctx context.Context, q database.Querier, creatorID int64, req *CreateGroupRequest) (*Group, error) {
	taken, err := r.nameTaken(ctx, q, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.New(apperror.ErrConflict, "a group with this name already exists")
	}

	query := `
		INSERT INTO groups (creator_id, name, description, is_private)
		VALUES ($1, $2, $3, $4)
		RETURNING id, creator_id, name, description, is_private, created_at, updated_at
	`

	group := &Group{}
	err = q.QueryRowContext(ctx, query, creatorID, req.Name, req.Description, req.IsPrivate).Scan(
		&group.ID,
		&group.CreatorID,
		&group.Name,
		&group.Description,
		&group.IsPrivate,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.New(apperror.ErrConflict, "a group with this name already exists")
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, q database.Querier, id int64) (*Group, error) {
	query := `
		SELECT id, creator_id, name, description, is_private, created_at, updated_at
		FROM groups
		WHERE id = $1
	`

	group := &Group{}
	err := q.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.CreatorID,
		&group.Name,
		&group.Description,
		&group.IsPrivate,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// GetByName retrieves a group by name, case-insensitively
func (r *Repository) GetByName(ctx context.Context, q database.Querier, name string) (*Group, error) {
	query := `
		SELECT id, creator_id, name, description, is_private, created_at, updated_at
		FROM groups
		WHERE lower(name) = lower($1)
	`

	group := &Group{}
	err := q.QueryRowContext(ctx, query, name).Scan(
		&group.ID,
		&group.CreatorID,
		&group.Name,
		&group.Description,
		&group.IsPrivate,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group by name: %w", err)
	}

	return group, nil
}

// ListByUserID retrieves all groups a user belongs to
func (r *Repository) ListByUserID(ctx context.Context, q database.Querier, userID int64) ([]*Group, error) {
	query := `
		SELECT g.id, g.creator_id, g.name, g.description, g.is_private, g.created_at, g.updated_at
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		WHERE gm.user_id = $1
		ORDER BY g.created_at DESC
	`

	rows, err := q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(
			&group.ID,
			&group.CreatorID,
			&group.Name,
			&group.Description,
			&group.IsPrivate,
			&group.CreatedAt,
			&group.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

// Update modifies a group's name and/or description. The collision check
// excludes the group's own id.
func (r *Repository) Update(ctx context.Context, q database.Querier, id int64, req *UpdateGroupRequest) (*Group, error) {
	if req.Name != nil {
		taken, err := r.nameTaken(ctx, q, *req.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.New(apperror.ErrConflict, "a group with this name already exists")
		}
	}

	query := `
		UPDATE groups
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, creator_id, name, description, is_private, created_at, updated_at
	`

	group := &Group{}
	err := q.QueryRowContext(ctx, query, id, req.Name, req.Description).Scan(
		&group.ID,
		&group.CreatorID,
		&group.Name,
		&group.Description,
		&group.IsPrivate,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if database.IsUniqueViolation(err) {
			return nil, apperror.New(apperror.ErrConflict, "a group with this name already exists")
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return group, nil
}

// SetPrivacy flips the group's privacy flag
func (r *Repository) SetPrivacy(ctx context.Context, q database.Querier, id int64, isPrivate bool) (*Group, error) {
	query := `
		UPDATE groups
		SET is_private = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, creator_id, name, description, is_private, created_at, updated_at
	`

	group := &Group{}
	err := q.QueryRowContext(ctx, query, id, isPrivate).Scan(
		&group.ID,
		&group.CreatorID,
		&group.Name,
		&group.Description,
		&group.IsPrivate,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set group privacy: %w", err)
	}

	return group, nil
}

// Delete removes a group row. The coordinator cascades memberships and
// requests first.
func (r *Repository) Delete(ctx context.Context, q database.Querier, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.New(apperror.ErrNotFound, "group not found")
	}

	return nil
}

func (r *Repository) nameTaken(ctx context.Context, q database.Querier, name string, excludeID int64) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM groups WHERE lower(name) = lower($1) AND id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check group name: %w", err)
	}
	return exists, nil
}
