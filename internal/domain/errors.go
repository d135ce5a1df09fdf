package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services. Repositories map storage-level
// conditions (missing rows, unique violations, failed conditional updates)
// onto these so callers can branch with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvitationUsed       = errors.New("invitation already used")
	ErrConcurrentRedemption = errors.New("invitation redeemed concurrently")
	ErrInsufficientSlots    = errors.New("insufficient registration slots")
	ErrDuplicateEmail       = errors.New("email already in use")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbidden            = errors.New("forbidden")
)

// CompensationError reports a bulk-import rollback that could not complete.
// The attendees listed in OrphanIDs were created for the batch but could not
// be deleted; the durable store may violate the all-or-nothing batch invariant
// until an operator reconciles them. This error must never be swallowed or
// downgraded.
type CompensationError struct {
	BatchID   string
	OrphanIDs []string
	Cause     error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("bulk import %s: rollback incomplete, orphaned attendees [%s]: %v",
		e.BatchID, strings.Join(e.OrphanIDs, ", "), e.Cause)
}

func (e *CompensationError) Unwrap() error { return e.Cause }
