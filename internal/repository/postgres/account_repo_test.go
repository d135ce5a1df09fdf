package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"invitedesk/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_ReserveSlots(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		count   int
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:  "success",
			count: 2,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE account_slots`).
					WithArgs("acc-1", "partner", 2).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:  "shortfall matches no row",
			count: 3,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE account_slots`).
					WithArgs("acc-1", "partner", 3).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrInsufficientSlots,
		},
		{
			name:  "no grant row",
			count: 1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE account_slots`).
					WithArgs("acc-1", "partner", 1).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrInsufficientSlots,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewAccountRepository(db)
			err = repo.ReserveSlots(ctx, "acc-1", domain.CategoryPartner, tt.count)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_ReleaseSlots(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Release is unconditional and floored in SQL; a missing row is not an error.
	mock.ExpectExec(`UPDATE account_slots`).
		WithArgs("acc-1", "partner", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewAccountRepository(db)
	require.NoError(t, repo.ReleaseSlots(ctx, "acc-1", domain.CategoryPartner, 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetSlot(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	updatedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT account_id, category, total_slots, used_slots`).
		WithArgs("acc-1", "vip").
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "category", "total_slots", "used_slots", "updated_at"}).
			AddRow("acc-1", "vip", 5, 2, updatedAt))

	repo := NewAccountRepository(db)
	grant, err := repo.GetSlot(ctx, "acc-1", domain.CategoryVIP)
	require.NoError(t, err)
	require.Equal(t, 5, grant.Total)
	require.Equal(t, 2, grant.Used)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_ListByRoles(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "email", "name", "last_name", "password_hash", "salt", "role", "created_at", "updated_at"}
	mock.ExpectQuery(`SELECT id, email, name, last_name`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("acc-1", "admin@x.com", "Ada", "Root", "h", "s", "admin", now, now).
			AddRow("acc-2", "super@x.com", "Sue", "Per", "h", "s", "superuser", now, now))

	repo := NewAccountRepository(db)
	accounts, err := repo.ListByRoles(ctx, []domain.Role{domain.RoleAdmin, domain.RoleSuperUser})
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	require.Equal(t, domain.RoleAdmin, accounts[0].Role)
	require.NoError(t, mock.ExpectationsWereMet())
}
