package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/circleapp/circles/internal/database"
)

// CreateParams carries everything needed to record one notification.
type CreateParams struct {
	RecipientID int64
	SenderID    int64
	SenderName  string
	Type        Type
	Message     string
	RefType     string
	RefID       int64
}

// Repository handles notification data persistence
type Repository struct{}

// NewRepository creates a new notification repository
func NewRepository() *Repository {
	return &Repository{}
}

// Create inserts a new notification. It writes through the caller's Querier
// so the row lives or dies with the caller's transaction.
func (r *Repository) Create(ctx context.Context, q database.Querier, p *CreateParams) (*Notification, error) {
	query := `
		INSERT INTO notifications (recipient_id, sender_id, sender_name, type, message, related_entity_type, related_entity_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, recipient_id, sender_id, sender_name, type, message, is_read, related_entity_type, related_entity_id, created_at
	`

	notification := &Notification{}
	err := q.QueryRowContext(ctx, query,
		p.RecipientID, p.SenderID, p.SenderName, p.Type, p.Message, p.RefType, p.RefID,
	).Scan(
		&notification.ID,
		&notification.RecipientID,
		&notification.SenderID,
		&notification.SenderName,
		&notification.Type,
		&notification.Message,
		&notification.IsRead,
		&notification.RelatedEntityType,
		&notification.RelatedEntityID,
		&notification.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification, nil
}

// GetByID retrieves a notification by its ID
func (r *Repository) GetByID(ctx context.Context, q database.Querier, id int64) (*Notification, error) {
	query := `
		SELECT id, recipient_id, sender_id, sender_name, type, message, is_read, related_entity_type, related_entity_id, created_at
		FROM notifications
		WHERE id = $1
	`

	notification := &Notification{}
	err := q.QueryRowContext(ctx, query, id).Scan(
		&notification.ID,
		&notification.RecipientID,
		&notification.SenderID,
		&notification.SenderName,
		&notification.Type,
		&notification.Message,
		&notification.IsRead,
		&notification.RelatedEntityType,
		&notification.RelatedEntityID,
		&notification.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return notification, nil
}

// ListByRecipientID retrieves notifications for a user, newest first
func (r *Repository) ListByRecipientID(ctx context.Context, q database.Querier, recipientID int64, limit, offset int, unreadOnly bool) ([]*Notification, int, error) {
	countQuery := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1`
	if unreadOnly {
		countQuery += ` AND is_read = false`
	}

	var total int
	if err := q.QueryRowContext(ctx, countQuery, recipientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, recipient_id, sender_id, sender_name, type, message, is_read, related_entity_type, related_entity_id, created_at
		FROM notifications
		WHERE recipient_id = $1
	`
	if unreadOnly {
		query += ` AND is_read = false`
	}
	query += `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.QueryContext(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		notification := &Notification{}
		if err := rows.Scan(
			&notification.ID,
			&notification.RecipientID,
			&notification.SenderID,
			&notification.SenderName,
			&notification.Type,
			&notification.Message,
			&notification.IsRead,
			&notification.RelatedEntityType,
			&notification.RelatedEntityID,
			&notification.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, notification)
	}

	return notifications, total, nil
}

// MarkAsRead marks a notification as read
func (r *Repository) MarkAsRead(ctx context.Context, q database.Querier, id int64) error {
	result, err := q.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// MarkAllAsRead marks all of a user's notifications as read
func (r *Repository) MarkAllAsRead(ctx context.Context, q database.Querier, recipientID int64) error {
	_, err := q.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE recipient_id = $1`, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// CountUnread returns the count of unread notifications for a user
func (r *Repository) CountUnread(ctx context.Context, q database.Querier, recipientID int64) (int, error) {
	var count int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = false`,
		recipientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
