package domain

import (
	"context"
	"time"
)

// Role is a staff account's role.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSuperUser Role = "superuser"
	RoleUser      Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperUser, RoleUser:
		return true
	}
	return false
}

// Privileged reports whether accounts with this role receive fan-out
// notifications and may administer invitations and attendee reviews.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleSuperUser
}

// QuotaExempt reports whether this role bypasses slot accounting entirely.
// Admin accounts report unbounded remaining slots and reserve/release are
// no-ops for them.
func (r Role) QuotaExempt() bool {
	return r == RoleAdmin
}

// DefaultAttendeeStatus is the status a manually registered attendee is born
// with, depending on who entered it: registrations by admin and superuser
// accounts go through review, registrations by regular staff are approved
// immediately against their slot allowance.
func (r Role) DefaultAttendeeStatus() AttendeeStatus {
	if r.Privileged() {
		return AttendeeStatusPending
	}
	return AttendeeStatusApproved
}

// Account represents a staff account that administers registrations and holds
// per-category slot grants.
// swagger:model Account
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAccount returns a new Account. ID is typically set by the repository on create.
func NewAccount(email, name, lastName string, role Role, createdAt, updatedAt time.Time) *Account {
	return &Account{
		Email:     email,
		Name:      name,
		LastName:  lastName,
		Role:      role,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// SlotGrant is an account's slot allowance for one attendee category.
// Invariant: 0 <= Used <= Total, guarded by conditional updates at the store.
// swagger:model SlotGrant
type SlotGrant struct {
	AccountID string           `json:"account_id"`
	Category  AttendeeCategory `json:"category"`
	Total     int              `json:"total"`
	Used      int              `json:"used"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// UnlimitedSlots is the remaining-slots sentinel reported for quota-exempt roles.
const UnlimitedSlots = -1

// SlotRequestStatus is the review status of a slot request.
type SlotRequestStatus string

const (
	SlotRequestPending  SlotRequestStatus = "pending"
	SlotRequestApproved SlotRequestStatus = "approved"
	SlotRequestDeclined SlotRequestStatus = "declined"
)

// SlotRequest is a staff account's request for additional slots in a category.
// swagger:model SlotRequest
type SlotRequest struct {
	ID         string            `json:"id"`
	AccountID  string            `json:"account_id"`
	Category   AttendeeCategory  `json:"category"`
	Requested  int               `json:"requested"`
	Status     SlotRequestStatus `json:"status"`
	ResolvedBy string            `json:"resolved_by,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// AccountRepository defines storage operations for accounts and their slot grants.
type AccountRepository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	List(ctx context.Context) ([]*Account, error)
	ListByRoles(ctx context.Context, roles []Role) ([]*Account, error)

	GetSlots(ctx context.Context, accountID string) ([]*SlotGrant, error)
	GetSlot(ctx context.Context, accountID string, category AttendeeCategory) (*SlotGrant, error)
	// UpsertSlotTotal sets the total slot count for one account/category pair,
	// creating the grant row if it does not exist.
	UpsertSlotTotal(ctx context.Context, accountID string, category AttendeeCategory, total int) error
	// AddSlotTotal increases the total slot count for an existing grant,
	// creating the row when absent.
	AddSlotTotal(ctx context.Context, accountID string, category AttendeeCategory, delta int) error
	// ReserveSlots atomically increments used_slots by count only if the result
	// does not exceed total_slots. Returns ErrInsufficientSlots when the guard
	// fails or no grant row exists.
	ReserveSlots(ctx context.Context, accountID string, category AttendeeCategory, count int) error
	// ReleaseSlots decrements used_slots by count, flooring at zero, so it is
	// safe to call even when the paired reserve never applied.
	ReleaseSlots(ctx context.Context, accountID string, category AttendeeCategory, count int) error
}

// SlotRequestRepository defines storage operations for slot requests.
type SlotRequestRepository interface {
	Create(ctx context.Context, req *SlotRequest) error
	GetByID(ctx context.Context, id string) (*SlotRequest, error)
	// UpdateStatusIfPending transitions a pending request; returns ErrNotFound
	// when the request is missing or already resolved.
	UpdateStatusIfPending(ctx context.Context, id string, status SlotRequestStatus, resolvedBy string) error
	ListByAccountID(ctx context.Context, accountID string) ([]*SlotRequest, error)
	ListPending(ctx context.Context) ([]*SlotRequest, error)
}

// QuotaService is the slot ledger consumed by the registration flows.
type QuotaService interface {
	// Remaining returns the number of registrations the account may still
	// create in the category; UnlimitedSlots for quota-exempt roles.
	Remaining(ctx context.Context, account *Account, category AttendeeCategory) (int, error)
	Reserve(ctx context.Context, account *Account, category AttendeeCategory, count int) error
	Release(ctx context.Context, account *Account, category AttendeeCategory, count int) error
	Slots(ctx context.Context, account *Account) ([]*SlotGrant, error)

	Grant(ctx context.Context, actor *Account, accountID string, category AttendeeCategory, total int) error
	RequestSlots(ctx context.Context, actor *Account, category AttendeeCategory, count int) (*SlotRequest, error)
	ResolveRequest(ctx context.Context, actor *Account, requestID string, approve bool) (*SlotRequest, error)
}

// AccountService defines staff account management and authentication.
type AccountService interface {
	Create(ctx context.Context, actor *Account, email, name, lastName, password string, role Role) (*Account, error)
	Login(ctx context.Context, email, password string) (token string, account *Account, err error)
	GetByID(ctx context.Context, id string) (*Account, error)
	ChangeRole(ctx context.Context, actor *Account, accountID string, role Role) (*Account, error)
	ListStaff(ctx context.Context, actor *Account) ([]*Account, error)
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated account.
type TokenIssuer interface {
	Issue(accountID, email string, role Role, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated account ID.
type TokenVerifier interface {
	Verify(token string) (accountID string, err error)
}
