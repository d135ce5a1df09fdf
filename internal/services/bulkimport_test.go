package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"invitedesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importRow(email string, category domain.AttendeeCategory) *domain.RowInput {
	return &domain.RowInput{
		Category: category,
		Profile: domain.AttendeeProfile{
			Email:     email,
			FirstName: "Row",
			LastName:  "Entry",
			BirthDate: time.Date(1985, 2, 10, 0, 0, 0, 0, time.UTC),
			Country:   "FR",
		},
	}
}

func newImportFixture(accRepo *fakeAccountRepo, attRepo *fakeAttendeeRepo) (domain.BulkImportService, *fakeNotifier, *fakeEmailService) {
	notifier := &fakeNotifier{}
	emails := &fakeEmailService{}
	quota := NewQuotaService(accRepo, newFakeSlotRequestRepo(), notifier)
	svc := NewBulkImportService(quota, attRepo, notifier, emails, discardLogger())
	return svc, notifier, emails
}

func TestImportBatch(t *testing.T) {
	ctx := context.Background()
	staff := &domain.Account{ID: "acc-1", Email: "staff@x.com", Role: domain.RoleUser}
	admin := &domain.Account{ID: "acc-9", Email: "admin@x.com", Role: domain.RoleAdmin}

	t.Run("full success charges quota once and notifies once", func(t *testing.T) {
		accRepo := newFakeAccountRepo(staff)
		accRepo.setSlots("acc-1", domain.CategoryPartner, 5, 1)
		attRepo := newFakeAttendeeRepo()
		svc, notifier, emails := newImportFixture(accRepo, attRepo)

		rows := []*domain.RowInput{
			importRow("r1@x.com", domain.CategoryPartner),
			importRow("r2@x.com", domain.CategoryPartner),
			importRow("r3@x.com", domain.CategoryPartner),
		}
		result, err := svc.ImportBatch(ctx, staff, rows)
		require.NoError(t, err)
		require.Len(t, result.Created, 3)
		assert.Empty(t, result.Rejected)
		assert.Equal(t, 4, accRepo.usedSlots("acc-1", domain.CategoryPartner))
		assert.Equal(t, []domain.EventKind{domain.EventBulkOperation}, notifier.kinds())
		assert.Len(t, emails.sent, 3, "user-tier rows come out approved and get welcomed")
		for _, a := range result.Created {
			assert.Equal(t, result.BatchID, a.BatchID)
			assert.Equal(t, domain.AttendeeStatusApproved, a.Status)
		}
	})

	t.Run("any static validation failure rejects the whole batch", func(t *testing.T) {
		accRepo := newFakeAccountRepo(staff)
		accRepo.setSlots("acc-1", domain.CategoryPartner, 5, 0)
		attRepo := newFakeAttendeeRepo()
		svc, notifier, _ := newImportFixture(accRepo, attRepo)

		bad := importRow("not-an-email", domain.CategoryPartner)
		rows := []*domain.RowInput{importRow("ok@x.com", domain.CategoryPartner), bad}
		result, err := svc.ImportBatch(ctx, staff, rows)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, result.Created)
		require.Len(t, result.Rejected, 1)
		assert.Equal(t, 1, result.Rejected[0].Index)
		assert.Equal(t, 0, attRepo.count(), "fail-fast: nothing is created")
		assert.Equal(t, 0, accRepo.usedSlots("acc-1", domain.CategoryPartner))
		assert.Empty(t, notifier.kinds())
	})

	t.Run("quota pre-check rejects before creating anything", func(t *testing.T) {
		accRepo := newFakeAccountRepo(staff)
		accRepo.setSlots("acc-1", domain.CategoryPartner, 2, 1)
		attRepo := newFakeAttendeeRepo()
		svc, _, _ := newImportFixture(accRepo, attRepo)

		rows := []*domain.RowInput{
			importRow("r1@x.com", domain.CategoryPartner),
			importRow("r2@x.com", domain.CategoryPartner),
		}
		_, err := svc.ImportBatch(ctx, staff, rows)
		require.ErrorIs(t, err, domain.ErrInsufficientSlots)
		assert.Equal(t, 0, attRepo.count())
		assert.Equal(t, 1, accRepo.usedSlots("acc-1", domain.CategoryPartner))
	})

	// Scenario: 3 rows, row 2 collides with an attendee already in the store.
	// Rows 1 and 3 never survive: row 1 is compensatingly deleted, the batch
	// reports row 2's reason, quota stays put, and no bulk notification fires.
	t.Run("late duplicate rolls back every created row", func(t *testing.T) {
		accRepo := newFakeAccountRepo(staff)
		accRepo.setSlots("acc-1", domain.CategoryPartner, 5, 0)
		attRepo := newFakeAttendeeRepo()
		attRepo.seed("r2@x.com")
		svc, notifier, _ := newImportFixture(accRepo, attRepo)

		rows := []*domain.RowInput{
			importRow("r1@x.com", domain.CategoryPartner),
			importRow("r2@x.com", domain.CategoryPartner),
			importRow("r3@x.com", domain.CategoryPartner),
		}
		result, err := svc.ImportBatch(ctx, staff, rows)
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.Empty(t, result.Created)
		require.Len(t, result.Rejected, 1)
		assert.Equal(t, 1, result.Rejected[0].Index)
		assert.Equal(t, 1, attRepo.count(), "only the pre-existing attendee remains")
		assert.Equal(t, 0, accRepo.usedSlots("acc-1", domain.CategoryPartner))
		assert.NotContains(t, notifier.kinds(), domain.EventBulkOperation)
	})

	t.Run("failed compensating delete surfaces as CompensationError", func(t *testing.T) {
		accRepo := newFakeAccountRepo(staff)
		accRepo.setSlots("acc-1", domain.CategoryPartner, 5, 0)
		attRepo := newFakeAttendeeRepo()
		attRepo.seed("r2@x.com")
		attRepo.deleteErr["att-2"] = errors.New("store unavailable")
		svc, notifier, _ := newImportFixture(accRepo, attRepo)

		rows := []*domain.RowInput{
			importRow("r1@x.com", domain.CategoryPartner),
			importRow("r2@x.com", domain.CategoryPartner),
		}
		_, err := svc.ImportBatch(ctx, staff, rows)
		var compErr *domain.CompensationError
		require.ErrorAs(t, err, &compErr)
		assert.Equal(t, []string{"att-2"}, compErr.OrphanIDs)
		assert.Contains(t, notifier.kinds(), domain.EventSystemError)
	})

	t.Run("admin batches bypass quota entirely", func(t *testing.T) {
		accRepo := newFakeAccountRepo(admin)
		attRepo := newFakeAttendeeRepo()
		svc, _, emails := newImportFixture(accRepo, attRepo)

		rows := []*domain.RowInput{
			importRow("r1@x.com", domain.CategoryExhibitor),
			importRow("r2@x.com", domain.CategoryVIP),
		}
		result, err := svc.ImportBatch(ctx, admin, rows)
		require.NoError(t, err)
		assert.Len(t, result.Created, 2)
		assert.Empty(t, emails.sent, "admin-entered rows are pending, no welcome yet")
	})

	t.Run("duplicate emails inside the batch are caught statically", func(t *testing.T) {
		accRepo := newFakeAccountRepo(admin)
		svc, _, _ := newImportFixture(accRepo, newFakeAttendeeRepo())

		rows := []*domain.RowInput{
			importRow("same@x.com", domain.CategoryGeneral),
			importRow("same@x.com", domain.CategoryGeneral),
		}
		result, err := svc.ImportBatch(ctx, admin, rows)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		require.Len(t, result.Rejected, 1)
		assert.Equal(t, 1, result.Rejected[0].Index)
	})

	t.Run("empty batch is invalid", func(t *testing.T) {
		svc, _, _ := newImportFixture(newFakeAccountRepo(admin), newFakeAttendeeRepo())
		_, err := svc.ImportBatch(ctx, admin, nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
