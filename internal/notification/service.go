package notification

import (
	"context"
	"database/sql"
	"errors"

	"github.com/circleapp/circles/internal/database"
	"github.com/circleapp/circles/pkg/apperror"
)

// Service handles notification business logic
type Service struct {
	db   database.TxQuerier
	repo *Repository
}

// NewService creates a new notification service
func NewService(db database.TxQuerier, repo *Repository) *Service {
	return &Service{db: db, repo: repo}
}

// Notify records a notification through the caller's Querier. Coordinators
// pass their open transaction so a notification is never kept for a mutation
// that rolled back.
func (s *Service) Notify(ctx context.Context, q database.Querier, p *CreateParams) (*Notification, error) {
	return s.repo.Create(ctx, q, p)
}

// ListByRecipientID retrieves notifications for a user
func (s *Service) ListByRecipientID(ctx context.Context, recipientID int64, page, perPage int, unreadOnly bool) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByRecipientID(ctx, s.db, recipientID, perPage, offset, unreadOnly)
}

// MarkAsRead marks a notification as read, verifying ownership
func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	notification, err := s.repo.GetByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return apperror.New(apperror.ErrNotFound, "notification not found")
	}
	if notification.RecipientID != userID {
		return apperror.New(apperror.ErrForbidden, "not the recipient of this notification")
	}

	if err := s.repo.MarkAsRead(ctx, s.db, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.New(apperror.ErrNotFound, "notification not found")
		}
		return err
	}
	return nil
}

// MarkAllAsRead marks all notifications as read for a user
func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, s.db, userID)
}

// CountUnread returns the count of unread notifications
func (s *Service) CountUnread(ctx context.Context, userID int64) (int, error) {
	return s.repo.CountUnread(ctx, s.db, userID)
}
