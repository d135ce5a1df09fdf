package services

import (
	"context"
	"log/slog"
	"time"

	"invitedesk/internal/domain"
)

// severityByKind maps each event kind to its display severity.
var severityByKind = map[domain.EventKind]domain.Severity{
	domain.EventAttendeeRegistered:       domain.SeveritySuccess,
	domain.EventAttendeeStatusChanged:    domain.SeverityInfo,
	domain.EventAccountCreated:           domain.SeverityInfo,
	domain.EventAccountUpdated:           domain.SeverityInfo,
	domain.EventAccountRoleChanged:       domain.SeverityWarning,
	domain.EventInvitationsGenerated:     domain.SeverityInfo,
	domain.EventSlotRequestCreated:       domain.SeverityInfo,
	domain.EventSlotRequestStatusChanged: domain.SeverityInfo,
	domain.EventBulkOperation:            domain.SeveritySuccess,
	domain.EventLogin:                    domain.SeverityInfo,
	domain.EventSystemError:              domain.SeverityError,
}

type notifierService struct {
	notificationRepo domain.NotificationRepository
	accountRepo      domain.AccountRepository
	logger           *slog.Logger
}

// NewNotifier creates the fan-out service. It looks the privileged recipient
// set up per event rather than keeping a subscriber registry, because the set
// of privileged accounts changes at runtime.
func NewNotifier(notificationRepo domain.NotificationRepository, accountRepo domain.AccountRepository, logger *slog.Logger) domain.Notifier {
	return &notifierService{
		notificationRepo: notificationRepo,
		accountRepo:      accountRepo,
		logger:           logger,
	}
}

// Notify is best effort: every failure is logged and swallowed so the
// operation that produced the event never fails on its observability.
func (s *notifierService) Notify(ctx context.Context, event domain.Event) {
	recipients, err := s.accountRepo.ListByRoles(ctx, []domain.Role{domain.RoleAdmin, domain.RoleSuperUser})
	if err != nil {
		s.logger.ErrorContext(ctx, "notification fan-out: resolve recipients", "kind", event.Kind, "err", err)
		return
	}
	severity, ok := severityByKind[event.Kind]
	if !ok {
		severity = domain.SeverityInfo
	}
	for _, recipient := range recipients {
		n := &domain.Notification{
			RecipientID: recipient.ID,
			Kind:        event.Kind,
			Title:       event.Title,
			Message:     event.Message,
			Severity:    severity,
			CreatedAt:   time.Now(),
		}
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			s.logger.ErrorContext(ctx, "notification fan-out: create",
				"kind", event.Kind, "recipient", recipient.ID, "err", err)
		}
	}
}

func (s *notifierService) ListForAccount(ctx context.Context, account *domain.Account, unreadOnly bool) ([]*domain.Notification, error) {
	return s.notificationRepo.ListByRecipient(ctx, account.ID, unreadOnly)
}

func (s *notifierService) MarkRead(ctx context.Context, account *domain.Account, notificationID string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, account.ID)
}
