package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/circleapp/circles/internal/database"
	"github.com/circleapp/circles/pkg/apperror"
)

// RequestRepository handles persistence of pending join requests and
// invites, unified under one relation.
type RequestRepository struct{}

// NewRequestRepository creates a new request repository
func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

// Create inserts a pending request. A pending request in either direction
// blocks a new one; the partial unique index backs the pre-check.
func (r *RequestRepository) Create(ctx context.Context, q database.Querier, userID, groupID int64, kind RequestKind) (*Request, error) {
	pending, err := r.GetPending(ctx, q, userID, groupID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, apperror.New(apperror.ErrConflict, "a pending request already exists for this user and group")
	}

	query := `
		INSERT INTO group_requests (user_id, group_id, is_invite)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, group_id, is_invite, status, requested_at, updated_at
	`

	var isInvite bool
	request := &Request{}
	err = q.QueryRowContext(ctx, query, userID, groupID, kind.isInvite()).Scan(
		&request.ID,
		&request.UserID,
		&request.GroupID,
		&isInvite,
		&request.Status,
		&request.RequestedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.New(apperror.ErrConflict, "a pending request already exists for this user and group")
		}
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Kind = kindFromBool(isInvite)

	return request, nil
}

// GetPending retrieves the pending request for a (user, group) pair in
// either direction, or nil if absent.
func (r *RequestRepository) GetPending(ctx context.Context, q database.Querier, userID, groupID int64) (*Request, error) {
	query := `
		SELECT id, user_id, group_id, is_invite, status, requested_at, updated_at
		FROM group_requests
		WHERE user_id = $1 AND group_id = $2 AND status = 'PENDING'
	`
	return r.scanOne(q.QueryRowContext(ctx, query, userID, groupID))
}

// GetByID retrieves a request by id scoped to a group, or nil if absent
func (r *RequestRepository) GetByID(ctx context.Context, q database.Querier, id, groupID int64) (*Request, error) {
	query := `
		SELECT id, user_id, group_id, is_invite, status, requested_at, updated_at
		FROM group_requests
		WHERE id = $1 AND group_id = $2
	`
	return r.scanOne(q.QueryRowContext(ctx, query, id, groupID))
}

// Resolve flips a pending request to a terminal status. It returns nil when
// the request is no longer pending, so callers can surface a not-found
// instead of silently succeeding twice.
func (r *RequestRepository) Resolve(ctx context.Context, q database.Querier, id int64, status RequestStatus) (*Request, error) {
	query := `
		UPDATE group_requests
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING id, user_id, group_id, is_invite, status, requested_at, updated_at
	`
	return r.scanOne(q.QueryRowContext(ctx, query, id, status))
}

// DeletePending removes any pending request for the pair. Used for
// withdrawals and for clearing strays when a membership ends.
func (r *RequestRepository) DeletePending(ctx context.Context, q database.Querier, userID, groupID int64) error {
	_, err := q.ExecContext(ctx,
		`DELETE FROM group_requests WHERE user_id = $1 AND group_id = $2 AND status = 'PENDING'`,
		userID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete pending request: %w", err)
	}
	return nil
}

// DeleteByGroup removes all requests for a group (group deletion cascade)
func (r *RequestRepository) DeleteByGroup(ctx context.Context, q database.Querier, groupID int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM group_requests WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("failed to delete group requests: %w", err)
	}
	return nil
}

// ListPending retrieves pending requests of one kind for a group, oldest
// first, with the requester's username joined in.
func (r *RequestRepository) ListPending(ctx context.Context, q database.Querier, groupID int64, kind RequestKind) ([]*Request, error) {
	query := `
		SELECT gr.id, gr.user_id, gr.group_id, gr.is_invite, gr.status, gr.requested_at, gr.updated_at, u.username
		FROM group_requests gr
		JOIN users u ON gr.user_id = u.id
		WHERE gr.group_id = $1 AND gr.status = 'PENDING' AND gr.is_invite = $2
		ORDER BY gr.requested_at ASC
	`

	rows, err := q.QueryContext(ctx, query, groupID, kind.isInvite())
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	defer rows.Close()

	var requests []*Request
	for rows.Next() {
		var isInvite bool
		request := &Request{}
		if err := rows.Scan(
			&request.ID,
			&request.UserID,
			&request.GroupID,
			&isInvite,
			&request.Status,
			&request.RequestedAt,
			&request.UpdatedAt,
			&request.Username,
		); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		request.Kind = kindFromBool(isInvite)
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

func (r *RequestRepository) scanOne(row *sql.Row) (*Request, error) {
	var isInvite bool
	request := &Request{}
	err := row.Scan(
		&request.ID,
		&request.UserID,
		&request.GroupID,
		&isInvite,
		&request.Status,
		&request.RequestedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan request: %w", err)
	}
	request.Kind = kindFromBool(isInvite)
	return request, nil
}
