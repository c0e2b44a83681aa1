package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/circleapp/circles/internal/database"
	"github.com/circleapp/circles/pkg/apperror"
)

// MembershipRepository handles persistence of user-to-group role assignments.
type MembershipRepository struct{}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository() *MembershipRepository {
	return &MembershipRepository{}
}

// Add inserts a membership. The primary key on (user_id, group_id)
// guarantees at most one row per pair.
func (r *MembershipRepository) Add(ctx context.Context, q database.Querier, userID, groupID int64, isAdmin, isMod bool) (*Membership, error) {
	query := `
		INSERT INTO group_members (user_id, group_id, is_admin, is_mod)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, group_id, is_admin, is_mod, joined_at
	`

	member := &Membership{}
	err := q.QueryRowContext(ctx, query, userID, groupID, isAdmin, isMod).Scan(
		&member.UserID,
		&member.GroupID,
		&member.IsAdmin,
		&member.IsMod,
		&member.JoinedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.New(apperror.ErrConflict, "user is already a member of this group")
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

// Get retrieves a specific membership, or nil if absent
func (r *MembershipRepository) Get(ctx context.Context, q database.Querier, userID, groupID int64) (*Membership, error) {
	query := `
		SELECT gm.user_id, gm.group_id, gm.is_admin, gm.is_mod, gm.joined_at, u.username, u.email
		FROM group_members gm
		JOIN users u ON gm.user_id = u.id
		WHERE gm.user_id = $1 AND gm.group_id = $2
	`

	member := &Membership{}
	err := q.QueryRowContext(ctx, query, userID, groupID).Scan(
		&member.UserID,
		&member.GroupID,
		&member.IsAdmin,
		&member.IsMod,
		&member.JoinedAt,
		&member.Username,
		&member.Email,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// ListByGroup retrieves all members of a group, admins first, then mods,
// then by join time.
func (r *MembershipRepository) ListByGroup(ctx context.Context, q database.Querier, groupID int64) ([]*Membership, error) {
	query := `
		SELECT gm.user_id, gm.group_id, gm.is_admin, gm.is_mod, gm.joined_at, u.username, u.email
		FROM group_members gm
		JOIN users u ON gm.user_id = u.id
		WHERE gm.group_id = $1
		ORDER BY gm.is_admin DESC, gm.is_mod DESC, gm.joined_at ASC
	`

	rows, err := q.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Membership
	for rows.Next() {
		member := &Membership{}
		if err := rows.Scan(
			&member.UserID,
			&member.GroupID,
			&member.IsAdmin,
			&member.IsMod,
			&member.JoinedAt,
			&member.Username,
			&member.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// UpdateRoles applies partial role changes. Nil fields keep their value.
// The admin-count invariant is the coordinator's responsibility, re-checked
// in the same transaction immediately before this write.
func (r *MembershipRepository) UpdateRoles(ctx context.Context, q database.Querier, userID, groupID int64, req *UpdateRolesRequest) (*Membership, error) {
	query := `
		UPDATE group_members
		SET is_admin = COALESCE($3, is_admin),
		    is_mod = COALESCE($4, is_mod)
		WHERE user_id = $1 AND group_id = $2
		RETURNING user_id, group_id, is_admin, is_mod, joined_at
	`

	member := &Membership{}
	err := q.QueryRowContext(ctx, query, userID, groupID, req.IsAdmin, req.IsMod).Scan(
		&member.UserID,
		&member.GroupID,
		&member.IsAdmin,
		&member.IsMod,
		&member.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update member roles: %w", err)
	}

	return member, nil
}

// Remove deletes a membership
func (r *MembershipRepository) Remove(ctx context.Context, q database.Querier, userID, groupID int64) error {
	result, err := q.ExecContext(ctx,
		`DELETE FROM group_members WHERE user_id = $1 AND group_id = $2`,
		userID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.New(apperror.ErrNotFound, "member not found")
	}

	return nil
}

// RemoveByGroup deletes all memberships of a group (group deletion cascade)
func (r *MembershipRepository) RemoveByGroup(ctx context.Context, q database.Querier, groupID int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("failed to remove group members: %w", err)
	}
	return nil
}

// CountAdmins returns the number of members holding the admin bit
func (r *MembershipRepository) CountAdmins(ctx context.Context, q database.Querier, groupID int64) (int, error) {
	var count int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND is_admin = true`,
		groupID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}
