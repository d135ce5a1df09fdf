package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"invitedesk/internal/domain"
)

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{DB: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `
		INSERT INTO accounts (email, name, last_name, password_hash, salt, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		a.Email, a.Name, a.LastName, a.PasswordHash, a.Salt, a.Role, a.CreatedAt, a.UpdatedAt).
		Scan(&a.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

const accountColumns = `id, email, name, last_name, password_hash, salt, role, created_at, updated_at`

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.LastName, &a.PasswordHash, &a.Salt, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.DB.QueryRowContext(ctx, query, id))
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return scanAccount(r.DB.QueryRowContext(ctx, query, email))
}

func (r *accountRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	query := `UPDATE accounts SET role = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id, role)
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

func (r *accountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectAccounts(rows)
}

func (r *accountRepository) ListByRoles(ctx context.Context, roles []domain.Role) ([]*domain.Account, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE role = ANY($1) ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(names))
	if err != nil {
		return nil, err
	}
	return collectAccounts(rows)
}

func collectAccounts(rows *sql.Rows) ([]*domain.Account, error) {
	defer rows.Close()
	var accounts []*domain.Account
	for rows.Next() {
		a := &domain.Account{}
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.LastName, &a.PasswordHash, &a.Salt, &a.Role, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []*domain.Account{}
	}
	return accounts, nil
}

func (r *accountRepository) GetSlots(ctx context.Context, accountID string) ([]*domain.SlotGrant, error) {
	query := `
		SELECT account_id, category, total_slots, used_slots, updated_at
		FROM account_slots
		WHERE account_id = $1
		ORDER BY category
	`
	rows, err := r.DB.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []*domain.SlotGrant
	for rows.Next() {
		g := &domain.SlotGrant{}
		if err := rows.Scan(&g.AccountID, &g.Category, &g.Total, &g.Used, &g.UpdatedAt); err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if grants == nil {
		grants = []*domain.SlotGrant{}
	}
	return grants, nil
}

func (r *accountRepository) GetSlot(ctx context.Context, accountID string, category domain.AttendeeCategory) (*domain.SlotGrant, error) {
	query := `
		SELECT account_id, category, total_slots, used_slots, updated_at
		FROM account_slots
		WHERE account_id = $1 AND category = $2
	`
	g := &domain.SlotGrant{}
	err := r.DB.QueryRowContext(ctx, query, accountID, category).
		Scan(&g.AccountID, &g.Category, &g.Total, &g.Used, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *accountRepository) UpsertSlotTotal(ctx context.Context, accountID string, category domain.AttendeeCategory, total int) error {
	query := `
		INSERT INTO account_slots (account_id, category, total_slots, used_slots, updated_at)
		VALUES ($1, $2, $3, 0, NOW())
		ON CONFLICT (account_id, category)
		DO UPDATE SET total_slots = $3, updated_at = NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, accountID, category, total)
	return err
}

func (r *accountRepository) AddSlotTotal(ctx context.Context, accountID string, category domain.AttendeeCategory, delta int) error {
	query := `
		INSERT INTO account_slots (account_id, category, total_slots, used_slots, updated_at)
		VALUES ($1, $2, $3, 0, NOW())
		ON CONFLICT (account_id, category)
		DO UPDATE SET total_slots = account_slots.total_slots + $3, updated_at = NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, accountID, category, delta)
	return err
}

// ReserveSlots carries the used <= total guard inside the UPDATE, so two
// concurrent reservations can never overcommit a grant: the second one simply
// matches no row.
func (r *accountRepository) ReserveSlots(ctx context.Context, accountID string, category domain.AttendeeCategory, count int) error {
	query := `
		UPDATE account_slots
		SET used_slots = used_slots + $3, updated_at = NOW()
		WHERE account_id = $1 AND category = $2 AND used_slots + $3 <= total_slots
	`
	res, err := r.DB.ExecContext(ctx, query, accountID, category, count)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInsufficientSlots
	}
	return nil
}

// ReleaseSlots floors at zero so compensation never needs to know whether the
// paired reserve actually applied.
func (r *accountRepository) ReleaseSlots(ctx context.Context, accountID string, category domain.AttendeeCategory, count int) error {
	query := `
		UPDATE account_slots
		SET used_slots = GREATEST(used_slots - $3, 0), updated_at = NOW()
		WHERE account_id = $1 AND category = $2
	`
	_, err := r.DB.ExecContext(ctx, query, accountID, category, count)
	return err
}
