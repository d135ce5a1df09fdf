package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"invitedesk/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (code, category, is_used, created_by, created_at)
		VALUES ($1, $2, FALSE, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, inv.Code, inv.Category, inv.CreatedBy, inv.CreatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *invitationRepository) GetByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	query := `
		SELECT code, category, is_used, COALESCE(used_by, ''), used_at, created_by, created_at
		FROM invitations
		WHERE code = $1
	`
	inv := &domain.Invitation{}
	err := r.DB.QueryRowContext(ctx, query, code).
		Scan(&inv.Code, &inv.Category, &inv.IsUsed, &inv.UsedBy, &inv.UsedAt, &inv.CreatedBy, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

// Redeem flips is_used with the guard in the UPDATE itself. Two concurrent
// callers can both have observed is_used=false, but only one UPDATE matches;
// the loser is told the code was already consumed.
func (r *invitationRepository) Redeem(ctx context.Context, code, usedBy string, usedAt time.Time) (*domain.Invitation, error) {
	query := `
		UPDATE invitations
		SET is_used = TRUE, used_by = $2, used_at = $3
		WHERE code = $1 AND is_used = FALSE
		RETURNING code, category, is_used, used_by, used_at, created_by, created_at
	`
	inv := &domain.Invitation{}
	err := r.DB.QueryRowContext(ctx, query, code, usedBy, usedAt).
		Scan(&inv.Code, &inv.Category, &inv.IsUsed, &inv.UsedBy, &inv.UsedAt, &inv.CreatedBy, &inv.CreatedAt)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	// No row matched: either the code does not exist or it is already used.
	if _, lookupErr := r.GetByCode(ctx, code); lookupErr != nil {
		return nil, lookupErr
	}
	return nil, domain.ErrInvitationUsed
}

func (r *invitationRepository) ListByCreator(ctx context.Context, createdBy string) ([]*domain.Invitation, error) {
	query := `
		SELECT code, category, is_used, COALESCE(used_by, ''), used_at, created_by, created_at
		FROM invitations
		WHERE created_by = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, createdBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invs []*domain.Invitation
	for rows.Next() {
		inv := &domain.Invitation{}
		if err := rows.Scan(&inv.Code, &inv.Category, &inv.IsUsed, &inv.UsedBy, &inv.UsedAt, &inv.CreatedBy, &inv.CreatedAt); err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if invs == nil {
		invs = []*domain.Invitation{}
	}
	return invs, nil
}
