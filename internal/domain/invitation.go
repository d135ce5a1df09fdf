package domain

import (
	"context"
	"time"
)

// Invitation is a single-use code permitting one registration of a fixed
// attendee category. Once redeemed the record is never mutated again and is
// never deleted programmatically.
// swagger:model Invitation
type Invitation struct {
	Code      string           `json:"code"`
	Category  AttendeeCategory `json:"category"`
	IsUsed    bool             `json:"is_used"`
	UsedBy    string           `json:"used_by,omitempty"`
	UsedAt    *time.Time       `json:"used_at,omitempty"`
	CreatedBy string           `json:"created_by"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewInvitation returns an unused Invitation for the given code and category.
func NewInvitation(code string, category AttendeeCategory, createdBy string, createdAt time.Time) *Invitation {
	return &Invitation{
		Code:      code,
		Category:  category,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}
}

// InvitationRepository defines storage operations for invitation codes.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByCode(ctx context.Context, code string) (*Invitation, error)
	// Redeem marks the code used with a conditional update (update-if
	// is_used=false) so that at most one caller ever succeeds per code.
	// Returns ErrNotFound when the code does not exist and ErrInvitationUsed
	// when it exists but was already consumed.
	Redeem(ctx context.Context, code, usedBy string, usedAt time.Time) (*Invitation, error)
	ListByCreator(ctx context.Context, createdBy string) ([]*Invitation, error)
}

// InvitationService is the invitation ledger: it owns the unused -> used
// lifecycle of codes.
type InvitationService interface {
	// GenerateBatch creates count fresh single-use codes for the category on
	// behalf of a privileged actor.
	GenerateBatch(ctx context.Context, actor *Account, category AttendeeCategory, count int) ([]*Invitation, error)
	// Validate performs a point lookup, distinguishing a missing code
	// (ErrNotFound) from a consumed one (ErrInvitationUsed) so callers can
	// present different messages.
	Validate(ctx context.Context, code string) (*Invitation, error)
	// Redeem consumes the code. At most one concurrent caller succeeds.
	Redeem(ctx context.Context, code, usedBy string) (*Invitation, error)
	ListByCreator(ctx context.Context, actor *Account) ([]*Invitation, error)
}
