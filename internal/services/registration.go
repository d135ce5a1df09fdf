package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	"invitedesk/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const minAttendeeAge = 18

type registrationService struct {
	invitations  domain.InvitationService
	quota        domain.QuotaService
	attendeeRepo domain.AttendeeRepository
	notifier     domain.Notifier
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewRegistrationService creates the registration façade shared by the public
// invitation flow and the staff manual flow.
func NewRegistrationService(
	invitations domain.InvitationService,
	quota domain.QuotaService,
	attendeeRepo domain.AttendeeRepository,
	notifier domain.Notifier,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		invitations:  invitations,
		quota:        quota,
		attendeeRepo: attendeeRepo,
		notifier:     notifier,
		emailService: emailService,
		logger:       logger,
	}
}

// RegisterViaInvitation consumes the code before creating the attendee, so two
// concurrent redemptions of the same code can never both create a record. The
// duplicate-email pre-check runs while the code is still unused; if creation
// still fails after a successful redeem the code stays consumed and the
// failure is logged for operator reconciliation.
func (s *registrationService) RegisterViaInvitation(ctx context.Context, code string, profile *domain.AttendeeProfile) (*domain.Attendee, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	normalizeProfile(profile)

	inv, err := s.invitations.Validate(ctx, code)
	if err != nil {
		return nil, err
	}
	if reasons := categoryIssues(inv.Category, profile); len(reasons) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(reasons, "; "))
	}

	if _, err := s.attendeeRepo.GetByEmail(ctx, profile.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	inv, err = s.invitations.Redeem(ctx, code, profile.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvitationUsed) {
			// Validate saw the code unused moments ago; another caller won.
			return nil, domain.ErrConcurrentRedemption
		}
		return nil, err
	}

	attendee := newAttendee(profile, inv.Category, domain.AttendeeStatusPending, domain.MethodInvitation, "", "")
	if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
		s.logger.ErrorContext(ctx, "attendee creation failed after invitation redeem",
			"code", inv.Code, "email", profile.Email, "err", err)
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create attendee: %w", err)
	}

	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventAttendeeRegistered,
		Title:   "Invitation redeemed",
		Message: fmt.Sprintf("%s %s registered as %s with code %s", attendee.FirstName, attendee.LastName, attendee.Category, inv.Code),
	})
	return attendee, nil
}

func (s *registrationService) RegisterManually(ctx context.Context, actor *domain.Account, category domain.AttendeeCategory, profile *domain.AttendeeProfile) (*domain.Attendee, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if reasons := categoryIssues(category, profile); len(reasons) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(reasons, "; "))
	}
	normalizeProfile(profile)

	if err := s.quota.Reserve(ctx, actor, category, 1); err != nil {
		return nil, err
	}

	attendee := newAttendee(profile, category, actor.Role.DefaultAttendeeStatus(), domain.MethodManual, actor.ID, "")
	if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
		if relErr := s.quota.Release(ctx, actor, category, 1); relErr != nil {
			s.logger.ErrorContext(ctx, "slot release failed after create failure",
				"account", actor.ID, "category", category, "err", relErr)
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create attendee: %w", err)
	}

	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventAttendeeRegistered,
		Title:   "New registration",
		Message: fmt.Sprintf("%s %s registered as %s by %s", attendee.FirstName, attendee.LastName, attendee.Category, actor.Email),
	})
	if attendee.Status == domain.AttendeeStatusApproved {
		s.sendWelcome(ctx, attendee)
	}
	return attendee, nil
}

func (s *registrationService) UpdateStatus(ctx context.Context, actor *domain.Account, attendeeID string, status domain.AttendeeStatus) (*domain.Attendee, error) {
	if actor == nil || !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	attendee, err := s.attendeeRepo.GetByID(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	if attendee.Status == status {
		return attendee, nil
	}
	if err := s.attendeeRepo.UpdateStatus(ctx, attendeeID, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	previous := attendee.Status
	attendee.Status = status

	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventAttendeeStatusChanged,
		Title:   "Registration status changed",
		Message: fmt.Sprintf("%s %s: %s -> %s by %s", attendee.FirstName, attendee.LastName, previous, status, actor.Email),
	})
	if status == domain.AttendeeStatusApproved {
		s.sendWelcome(ctx, attendee)
	}
	return attendee, nil
}

// sendWelcome is fire-and-forget: the registration is already durable and a
// dispatch failure must never roll it back.
func (s *registrationService) sendWelcome(ctx context.Context, attendee *domain.Attendee) {
	data := &domain.WelcomeEmailData{
		Email:     attendee.Email,
		FirstName: attendee.FirstName,
		Category:  string(attendee.Category),
	}
	if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "welcome email failed", "email", attendee.Email, "err", err)
	}
}

func newAttendee(profile *domain.AttendeeProfile, category domain.AttendeeCategory, status domain.AttendeeStatus, method domain.RegistrationMethod, registeredBy, batchID string) *domain.Attendee {
	now := time.Now()
	return &domain.Attendee{
		Email:          profile.Email,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Category:       category,
		Status:         status,
		Method:         method,
		RegisteredBy:   registeredBy,
		BatchID:        batchID,
		BirthDate:      profile.BirthDate,
		Country:        profile.Country,
		VisaRequired:   profile.VisaRequired,
		PassportNumber: profile.PassportNumber,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func normalizeProfile(p *domain.AttendeeProfile) {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Country = strings.TrimSpace(p.Country)
	p.PassportNumber = strings.TrimSpace(p.PassportNumber)
}

// validateProfile applies the static profile rules shared by every
// registration path. Bulk import reuses it per row and aggregates the reasons.
func validateProfile(p *domain.AttendeeProfile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is required", domain.ErrInvalidInput)
	}
	if reasons := profileIssues(p); len(reasons) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(reasons, "; "))
	}
	return nil
}

func profileIssues(p *domain.AttendeeProfile) []string {
	var reasons []string
	if strings.TrimSpace(p.FirstName) == "" {
		reasons = append(reasons, "first_name is required")
	} else if !latinOnly(p.FirstName) {
		reasons = append(reasons, "first_name must use Latin letters")
	}
	if strings.TrimSpace(p.LastName) == "" {
		reasons = append(reasons, "last_name is required")
	} else if !latinOnly(p.LastName) {
		reasons = append(reasons, "last_name must use Latin letters")
	}
	if !emailRegexp.MatchString(strings.TrimSpace(p.Email)) {
		reasons = append(reasons, "email is invalid")
	}
	if p.BirthDate.IsZero() {
		reasons = append(reasons, "birth_date is required")
	} else if age(p.BirthDate, time.Now()) < minAttendeeAge {
		reasons = append(reasons, fmt.Sprintf("attendee must be at least %d years old", minAttendeeAge))
	}
	if strings.TrimSpace(p.Country) == "" {
		reasons = append(reasons, "country is required")
	}
	return reasons
}

// categoryIssues holds the cross-field rules that depend on the registration
// category, which the invitation flow only learns after validating the code.
func categoryIssues(category domain.AttendeeCategory, p *domain.AttendeeProfile) []string {
	if category == domain.CategoryPassport && p.VisaRequired && strings.TrimSpace(p.PassportNumber) == "" {
		return []string{"passport_number is required when a visa is requested"}
	}
	return nil
}

func age(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	if at.YearDay() < birth.YearDay() {
		years--
	}
	return years
}

func latinOnly(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.Is(unicode.Latin, r) {
			return false
		}
	}
	return true
}
