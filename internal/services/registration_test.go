package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"invitedesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validProfile(email string) *domain.AttendeeProfile {
	return &domain.AttendeeProfile{
		Email:     email,
		FirstName: "Jane",
		LastName:  "Doe",
		BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Country:   "DE",
	}
}

func newRegistrationFixture(invRepo *fakeInvitationRepo, accRepo *fakeAccountRepo, attRepo *fakeAttendeeRepo) (domain.RegistrationService, *fakeNotifier, *fakeEmailService) {
	notifier := &fakeNotifier{}
	emails := &fakeEmailService{}
	invitations := NewInvitationService(invRepo, notifier)
	quota := NewQuotaService(accRepo, newFakeSlotRequestRepo(), notifier)
	svc := NewRegistrationService(invitations, quota, attRepo, notifier, emails, discardLogger())
	return svc, notifier, emails
}

func TestRegisterViaInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("success creates pending attendee in invitation category", func(t *testing.T) {
		invRepo := newFakeInvitationRepo(domain.NewInvitation("ABC12345", domain.CategoryVIP, "acc-1", time.Now()))
		attRepo := newFakeAttendeeRepo()
		svc, notifier, _ := newRegistrationFixture(invRepo, newFakeAccountRepo(), attRepo)

		attendee, err := svc.RegisterViaInvitation(ctx, "abc12345", validProfile("jane@x.com"))
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryVIP, attendee.Category)
		assert.Equal(t, domain.AttendeeStatusPending, attendee.Status)
		assert.Equal(t, domain.MethodInvitation, attendee.Method)

		inv, err := invRepo.GetByCode(ctx, "ABC12345")
		require.NoError(t, err)
		assert.True(t, inv.IsUsed)
		assert.Equal(t, "jane@x.com", inv.UsedBy)
		assert.Contains(t, notifier.kinds(), domain.EventAttendeeRegistered)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc, _, _ := newRegistrationFixture(newFakeInvitationRepo(), newFakeAccountRepo(), newFakeAttendeeRepo())
		_, err := svc.RegisterViaInvitation(ctx, "NOPE2345", validProfile("jane@x.com"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("used code reported distinctly from missing code", func(t *testing.T) {
		inv := domain.NewInvitation("ABC12345", domain.CategoryVIP, "acc-1", time.Now())
		inv.IsUsed = true
		svc, _, _ := newRegistrationFixture(newFakeInvitationRepo(inv), newFakeAccountRepo(), newFakeAttendeeRepo())
		_, err := svc.RegisterViaInvitation(ctx, "ABC12345", validProfile("jane@x.com"))
		require.ErrorIs(t, err, domain.ErrInvitationUsed)
	})

	t.Run("duplicate email leaves code unused", func(t *testing.T) {
		invRepo := newFakeInvitationRepo(domain.NewInvitation("ABC12345", domain.CategoryVIP, "acc-1", time.Now()))
		attRepo := newFakeAttendeeRepo()
		attRepo.seed("jane@x.com")
		svc, _, _ := newRegistrationFixture(invRepo, newFakeAccountRepo(), attRepo)

		_, err := svc.RegisterViaInvitation(ctx, "ABC12345", validProfile("jane@x.com"))
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)

		inv, err := invRepo.GetByCode(ctx, "ABC12345")
		require.NoError(t, err)
		assert.False(t, inv.IsUsed, "pre-check failure must not consume the code")
	})

	t.Run("invalid profile rejected before touching the ledger", func(t *testing.T) {
		invRepo := newFakeInvitationRepo(domain.NewInvitation("ABC12345", domain.CategoryVIP, "acc-1", time.Now()))
		svc, _, _ := newRegistrationFixture(invRepo, newFakeAccountRepo(), newFakeAttendeeRepo())

		profile := validProfile("jane@x.com")
		profile.BirthDate = time.Now().AddDate(-17, 0, 0)
		_, err := svc.RegisterViaInvitation(ctx, "ABC12345", profile)
		require.ErrorIs(t, err, domain.ErrInvalidInput)

		inv, err := invRepo.GetByCode(ctx, "ABC12345")
		require.NoError(t, err)
		assert.False(t, inv.IsUsed)
	})

	// Scenario: two concurrent redemptions of the same code. Exactly one may
	// succeed; the loser sees a redemption conflict and no attendee is created
	// for it.
	t.Run("concurrent redemption admits exactly one attendee", func(t *testing.T) {
		invRepo := newFakeInvitationRepo(domain.NewInvitation("ABC12345", domain.CategoryVIP, "acc-1", time.Now()))
		attRepo := newFakeAttendeeRepo()
		svc, _, _ := newRegistrationFixture(invRepo, newFakeAccountRepo(), attRepo)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, email := range []string{"a@x.com", "b@x.com"} {
			wg.Add(1)
			go func(i int, email string) {
				defer wg.Done()
				_, errs[i] = svc.RegisterViaInvitation(ctx, "ABC12345", validProfile(email))
			}(i, email)
		}
		wg.Wait()

		var successes, conflicts int
		for _, err := range errs {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrConcurrentRedemption) || errors.Is(err, domain.ErrInvitationUsed):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, conflicts)
		assert.Equal(t, 1, attRepo.count())

		inv, err := invRepo.GetByCode(ctx, "ABC12345")
		require.NoError(t, err)
		assert.True(t, inv.IsUsed)
	})
}

func TestRegisterManually(t *testing.T) {
	ctx := context.Background()

	staff := &domain.Account{ID: "acc-1", Email: "staff@x.com", Role: domain.RoleUser}
	admin := &domain.Account{ID: "acc-2", Email: "admin@x.com", Role: domain.RoleAdmin}

	t.Run("user tier consumes a slot and approves immediately", func(t *testing.T) {
		accRepo := newFakeAccountRepo(staff)
		accRepo.setSlots("acc-1", domain.CategoryPartner, 2, 0)
		attRepo := newFakeAttendeeRepo()
		svc, _, emails := newRegistrationFixture(newFakeInvitationRepo(), accRepo, attRepo)

		attendee, err := svc.RegisterManually(ctx, staff, domain.CategoryPartner, validProfile("p1@x.com"))
		require.NoError(t, err)
		assert.Equal(t, domain.AttendeeStatusApproved, attendee.Status)
		assert.Equal(t, "acc-1", attendee.RegisteredBy)
		assert.Equal(t, 1, accRepo.usedSlots("acc-1", domain.CategoryPartner))
		assert.Equal(t, []string{"p1@x.com"}, emails.sent)
	})

	// Scenario: totals {Partner: 2} fully consumed; the next registration
	// fails with insufficient slots and used stays put.
	t.Run("exhausted quota rejects and leaves used unchanged", func(t *testing.T) {
		accRepo := newFakeAccountRepo(staff)
		accRepo.setSlots("acc-1", domain.CategoryPartner, 2, 2)
		svc, _, _ := newRegistrationFixture(newFakeInvitationRepo(), accRepo, newFakeAttendeeRepo())

		_, err := svc.RegisterManually(ctx, staff, domain.CategoryPartner, validProfile("p2@x.com"))
		require.ErrorIs(t, err, domain.ErrInsufficientSlots)
		assert.Equal(t, 2, accRepo.usedSlots("acc-1", domain.CategoryPartner))
	})

	// Scenario: admin with zero configured slots still registers; attendee
	// comes out pending.
	t.Run("admin is quota exempt", func(t *testing.T) {
		accRepo := newFakeAccountRepo(admin)
		svc, _, emails := newRegistrationFixture(newFakeInvitationRepo(), accRepo, newFakeAttendeeRepo())

		attendee, err := svc.RegisterManually(ctx, admin, domain.CategoryExhibitor, validProfile("e1@x.com"))
		require.NoError(t, err)
		assert.Equal(t, domain.AttendeeStatusPending, attendee.Status)
		assert.Empty(t, emails.sent, "pending registrations do not get a welcome email")
	})

	t.Run("create failure releases the reserved slot", func(t *testing.T) {
		accRepo := newFakeAccountRepo(staff)
		accRepo.setSlots("acc-1", domain.CategoryPartner, 2, 0)
		attRepo := newFakeAttendeeRepo()
		attRepo.seed("p1@x.com")
		svc, _, _ := newRegistrationFixture(newFakeInvitationRepo(), accRepo, attRepo)

		_, err := svc.RegisterManually(ctx, staff, domain.CategoryPartner, validProfile("p1@x.com"))
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.Equal(t, 0, accRepo.usedSlots("acc-1", domain.CategoryPartner))
	})

	t.Run("passport category requires passport number when visa requested", func(t *testing.T) {
		accRepo := newFakeAccountRepo(admin)
		svc, _, _ := newRegistrationFixture(newFakeInvitationRepo(), accRepo, newFakeAttendeeRepo())

		profile := validProfile("v1@x.com")
		profile.VisaRequired = true
		_, err := svc.RegisterManually(ctx, admin, domain.CategoryPassport, profile)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("email failure does not fail the registration", func(t *testing.T) {
		accRepo := newFakeAccountRepo(staff)
		accRepo.setSlots("acc-1", domain.CategoryPartner, 2, 0)
		notifier := &fakeNotifier{}
		emails := &fakeEmailService{sendErr: errors.New("ses down")}
		quota := NewQuotaService(accRepo, newFakeSlotRequestRepo(), notifier)
		invitations := NewInvitationService(newFakeInvitationRepo(), notifier)
		svc := NewRegistrationService(invitations, quota, newFakeAttendeeRepo(), notifier, emails, discardLogger())

		_, err := svc.RegisterManually(ctx, staff, domain.CategoryPartner, validProfile("p1@x.com"))
		require.NoError(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	admin := &domain.Account{ID: "acc-2", Email: "admin@x.com", Role: domain.RoleAdmin}
	staff := &domain.Account{ID: "acc-1", Email: "staff@x.com", Role: domain.RoleUser}

	attRepo := newFakeAttendeeRepo()
	require.NoError(t, attRepo.Create(ctx, &domain.Attendee{Email: "jane@x.com", FirstName: "Jane", Status: domain.AttendeeStatusPending}))
	svc, notifier, emails := newRegistrationFixture(newFakeInvitationRepo(), newFakeAccountRepo(), attRepo)

	t.Run("unprivileged actor is rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, staff, "att-1", domain.AttendeeStatusApproved)
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("approval notifies and sends welcome email", func(t *testing.T) {
		attendee, err := svc.UpdateStatus(ctx, admin, "att-1", domain.AttendeeStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.AttendeeStatusApproved, attendee.Status)
		assert.Contains(t, notifier.kinds(), domain.EventAttendeeStatusChanged)
		assert.Equal(t, []string{"jane@x.com"}, emails.sent)
	})
}
