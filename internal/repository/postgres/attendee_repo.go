package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"invitedesk/internal/domain"
)

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{DB: db}
}

const attendeeColumns = `id, email, first_name, last_name, category, status, registration_method,
		COALESCE(registered_by::text, ''), COALESCE(batch_id::text, ''), birth_date, country,
		visa_required, COALESCE(passport_number, ''), created_at, updated_at`

func (r *attendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	query := `
		INSERT INTO attendees (email, first_name, last_name, category, status, registration_method,
			registered_by, batch_id, birth_date, country, visa_required, passport_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, NULLIF($8, '')::uuid, $9, $10, $11, NULLIF($12, ''), $13, $14)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		a.Email, a.FirstName, a.LastName, a.Category, a.Status, a.Method,
		a.RegisteredBy, a.BatchID, a.BirthDate, a.Country, a.VisaRequired, a.PassportNumber,
		a.CreatedAt, a.UpdatedAt).
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

func scanAttendee(row interface{ Scan(...any) error }) (*domain.Attendee, error) {
	a := &domain.Attendee{}
	err := row.Scan(&a.ID, &a.Email, &a.FirstName, &a.LastName, &a.Category, &a.Status, &a.Method,
		&a.RegisteredBy, &a.BatchID, &a.BirthDate, &a.Country, &a.VisaRequired, &a.PassportNumber,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM attendees WHERE id = $1`
	return scanAttendee(r.DB.QueryRowContext(ctx, query, id))
}

func (r *attendeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Attendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM attendees WHERE email = $1`
	return scanAttendee(r.DB.QueryRowContext(ctx, query, email))
}

func (r *attendeeRepository) UpdateStatus(ctx context.Context, id string, status domain.AttendeeStatus) error {
	query := `UPDATE attendees SET status = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id, status)
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

func (r *attendeeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM attendees WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
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

func (r *attendeeRepository) ListByBatchID(ctx context.Context, batchID string) ([]*domain.Attendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM attendees WHERE batch_id = $1 ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendees []*domain.Attendee
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if attendees == nil {
		attendees = []*domain.Attendee{}
	}
	return attendees, nil
}
