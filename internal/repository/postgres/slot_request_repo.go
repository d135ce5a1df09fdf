package postgres

import (
	"context"
	"database/sql"
	"errors"

	"invitedesk/internal/domain"
)

type slotRequestRepository struct {
	DB *sql.DB
}

func NewSlotRequestRepository(db *sql.DB) domain.SlotRequestRepository {
	return &slotRequestRepository{DB: db}
}

const slotRequestColumns = `id, account_id, category, requested, status, COALESCE(resolved_by::text, ''), created_at, updated_at`

func (r *slotRequestRepository) Create(ctx context.Context, req *domain.SlotRequest) error {
	query := `
		INSERT INTO slot_requests (account_id, category, requested, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		req.AccountID, req.Category, req.Requested, req.Status, req.CreatedAt, req.UpdatedAt).
		Scan(&req.ID)
}

func (r *slotRequestRepository) GetByID(ctx context.Context, id string) (*domain.SlotRequest, error) {
	query := `SELECT ` + slotRequestColumns + ` FROM slot_requests WHERE id = $1`
	req := &domain.SlotRequest{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&req.ID, &req.AccountID, &req.Category, &req.Requested, &req.Status, &req.ResolvedBy, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

// UpdateStatusIfPending is conditional so two admins resolving the same
// request cannot both apply it.
func (r *slotRequestRepository) UpdateStatusIfPending(ctx context.Context, id string, status domain.SlotRequestStatus, resolvedBy string) error {
	query := `
		UPDATE slot_requests
		SET status = $2, resolved_by = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`
	res, err := r.DB.ExecContext(ctx, query, id, status, resolvedBy)
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

func (r *slotRequestRepository) ListByAccountID(ctx context.Context, accountID string) ([]*domain.SlotRequest, error) {
	query := `SELECT ` + slotRequestColumns + ` FROM slot_requests WHERE account_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, accountID)
}

func (r *slotRequestRepository) ListPending(ctx context.Context) ([]*domain.SlotRequest, error) {
	query := `SELECT ` + slotRequestColumns + ` FROM slot_requests WHERE status = 'pending' ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *slotRequestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.SlotRequest, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*domain.SlotRequest
	for rows.Next() {
		req := &domain.SlotRequest{}
		if err := rows.Scan(&req.ID, &req.AccountID, &req.Category, &req.Requested, &req.Status, &req.ResolvedBy, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []*domain.SlotRequest{}
	}
	return reqs, nil
}
