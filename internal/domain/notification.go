package domain

import (
	"context"
	"time"
)

// EventKind identifies a state transition worth broadcasting to privileged
// accounts. The set is closed; new kinds are added here, not at call sites.
type EventKind string

const (
	EventAttendeeRegistered       EventKind = "attendee_registered"
	EventAttendeeStatusChanged    EventKind = "attendee_status_changed"
	EventAccountCreated           EventKind = "account_created"
	EventAccountUpdated           EventKind = "account_updated"
	EventAccountRoleChanged       EventKind = "account_role_changed"
	EventInvitationsGenerated     EventKind = "invitations_generated"
	EventSlotRequestCreated       EventKind = "slot_request_created"
	EventSlotRequestStatusChanged EventKind = "slot_request_status_changed"
	EventBulkOperation            EventKind = "bulk_operation"
	EventLogin                    EventKind = "login"
	EventSystemError              EventKind = "system_error"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is one inbox entry for one recipient. Created as a side effect
// of every significant mutation; never changed afterwards except IsRead.
// swagger:model Notification
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Kind        EventKind `json:"kind"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Severity    Severity  `json:"severity"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// Event is the payload handed to the notifier by services.
type Event struct {
	Kind    EventKind
	Title   string
	Message string
}

// NotificationRepository defines storage operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*Notification, error)
	// MarkRead flips is_read for one notification owned by the recipient.
	MarkRead(ctx context.Context, id, recipientID string) error
}

// Notifier fans an event out to every privileged account, best effort.
// Implementations log failures and never surface them: notifications are
// observability, not correctness-critical state.
type Notifier interface {
	Notify(ctx context.Context, event Event)
	ListForAccount(ctx context.Context, account *Account, unreadOnly bool) ([]*Notification, error)
	MarkRead(ctx context.Context, account *Account, notificationID string) error
}
