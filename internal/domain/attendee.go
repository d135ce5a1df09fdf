package domain

import (
	"context"
	"time"
)

// AttendeeCategory classifies a registration and keys slot accounting.
type AttendeeCategory string

const (
	CategoryVIP       AttendeeCategory = "vip"
	CategoryPartner   AttendeeCategory = "partner"
	CategoryExhibitor AttendeeCategory = "exhibitor"
	CategoryPassport  AttendeeCategory = "passport"
	CategoryGeneral   AttendeeCategory = "general"
)

// Valid reports whether c is a known category.
func (c AttendeeCategory) Valid() bool {
	switch c {
	case CategoryVIP, CategoryPartner, CategoryExhibitor, CategoryPassport, CategoryGeneral:
		return true
	}
	return false
}

// AttendeeStatus is the review status of a registration.
type AttendeeStatus string

const (
	AttendeeStatusPending         AttendeeStatus = "pending"
	AttendeeStatusApproved        AttendeeStatus = "approved"
	AttendeeStatusDeclined        AttendeeStatus = "declined"
	AttendeeStatusChangeRequested AttendeeStatus = "change_requested"
)

// Valid reports whether s is a known status.
func (s AttendeeStatus) Valid() bool {
	switch s {
	case AttendeeStatusPending, AttendeeStatusApproved, AttendeeStatusDeclined, AttendeeStatusChangeRequested:
		return true
	}
	return false
}

// RegistrationMethod records how an attendee entered the system.
type RegistrationMethod string

const (
	MethodInvitation RegistrationMethod = "invitation"
	MethodManual     RegistrationMethod = "manual"
)

// Attendee represents a registration record.
// swagger:model Attendee
type Attendee struct {
	ID             string             `json:"id"`
	Email          string             `json:"email"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	Category       AttendeeCategory   `json:"category"`
	Status         AttendeeStatus     `json:"status"`
	Method         RegistrationMethod `json:"registration_method"`
	RegisteredBy   string             `json:"registered_by,omitempty"`
	BatchID        string             `json:"batch_id,omitempty"`
	BirthDate      time.Time          `json:"birth_date"`
	Country        string             `json:"country"`
	VisaRequired   bool               `json:"visa_required"`
	PassportNumber string             `json:"passport_number,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// AttendeeProfile is the caller-supplied portion of a registration.
type AttendeeProfile struct {
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	BirthDate      time.Time `json:"birth_date"`
	Country        string    `json:"country"`
	VisaRequired   bool      `json:"visa_required"`
	PassportNumber string    `json:"passport_number,omitempty"`
}

// AttendeeRepository defines storage operations for attendees.
type AttendeeRepository interface {
	// Create inserts the attendee; a unique violation on email is reported as
	// ErrDuplicateEmail.
	Create(ctx context.Context, a *Attendee) error
	GetByID(ctx context.Context, id string) (*Attendee, error)
	GetByEmail(ctx context.Context, email string) (*Attendee, error)
	UpdateStatus(ctx context.Context, id string, status AttendeeStatus) error
	Delete(ctx context.Context, id string) error
	ListByBatchID(ctx context.Context, batchID string) ([]*Attendee, error)
}

// RegistrationService is the façade for both registration flows.
type RegistrationService interface {
	// RegisterViaInvitation consumes the invitation code and creates a pending
	// attendee in the invitation's category. Redemption happens before
	// creation, so a consumed code is never left pointing at nothing.
	RegisterViaInvitation(ctx context.Context, code string, profile *AttendeeProfile) (*Attendee, error)
	// RegisterManually creates an attendee on behalf of a staff account,
	// charging one slot in the category unless the account is quota-exempt.
	RegisterManually(ctx context.Context, actor *Account, category AttendeeCategory, profile *AttendeeProfile) (*Attendee, error)
	// UpdateStatus moves an attendee through review.
	UpdateStatus(ctx context.Context, actor *Account, attendeeID string, status AttendeeStatus) (*Attendee, error)
}

// RowInput is one row of a bulk import request.
type RowInput struct {
	Category AttendeeCategory `json:"category"`
	Profile  AttendeeProfile  `json:"profile"`
}

// RowRejection reports why one row of a batch was rejected.
type RowRejection struct {
	Index   int      `json:"index"`
	Reasons []string `json:"reasons"`
}

// BulkImportResult is the outcome of an ImportBatch call. Either Created
// holds every row of the batch, or it is empty and Rejected explains why.
type BulkImportResult struct {
	BatchID  string          `json:"batch_id"`
	Created  []*Attendee     `json:"created"`
	Rejected []*RowRejection `json:"rejected"`
}

// BulkImportService drives all-or-nothing multi-row registration with
// explicit compensation instead of a native transaction.
type BulkImportService interface {
	ImportBatch(ctx context.Context, actor *Account, rows []*RowInput) (*BulkImportResult, error)
}
