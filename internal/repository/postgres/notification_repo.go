package postgres

import (
	"context"
	"database/sql"

	"invitedesk/internal/domain"
)

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (recipient_id, kind, title, message, severity, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		n.RecipientID, n.Kind, n.Title, n.Message, n.Severity, n.CreatedAt).
		Scan(&n.ID)
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*domain.Notification, error) {
	query := `
		SELECT id, recipient_id, kind, title, message, severity, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1 AND (NOT $2 OR NOT is_read)
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, recipientID, unreadOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Kind, &n.Title, &n.Message, &n.Severity, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, recipientID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
