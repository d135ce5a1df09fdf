package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"invitedesk/internal/domain"
)

const maxImportRows = 200

type bulkImportService struct {
	quota        domain.QuotaService
	attendeeRepo domain.AttendeeRepository
	notifier     domain.Notifier
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewBulkImportService creates the batch coordinator. It drives the same
// per-row logic as manual registration but charges quota once for the whole
// batch and rolls every created row back on the first failure.
func NewBulkImportService(
	quota domain.QuotaService,
	attendeeRepo domain.AttendeeRepository,
	notifier domain.Notifier,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.BulkImportService {
	return &bulkImportService{
		quota:        quota,
		attendeeRepo: attendeeRepo,
		notifier:     notifier,
		emailService: emailService,
		logger:       logger,
	}
}

// ImportBatch upholds one invariant: after it returns, either every row of the
// batch exists as an attendee with quota decremented once, or none do and
// quota is unchanged. There is no multi-row transaction underneath; the
// all-or-nothing shape comes from validating everything up front and
// compensating with deletes when a later row fails. A failed compensation is
// the one condition that escapes as *domain.CompensationError so an operator
// can reconcile the orphans by batch ID.
func (s *bulkImportService) ImportBatch(ctx context.Context, actor *domain.Account, rows []*domain.RowInput) (*domain.BulkImportResult, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: batch is empty", domain.ErrInvalidInput)
	}
	if len(rows) > maxImportRows {
		return nil, fmt.Errorf("%w: batch exceeds %d rows", domain.ErrInvalidInput, maxImportRows)
	}

	result := &domain.BulkImportResult{
		BatchID:  uuid.NewString(),
		Created:  []*domain.Attendee{},
		Rejected: []*domain.RowRejection{},
	}

	// Static validation over every row. Any failure rejects the whole batch
	// before a single row is submitted.
	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		reasons := rowIssues(row)
		normalizeProfile(&row.Profile)
		if prev, dup := seen[row.Profile.Email]; dup && row.Profile.Email != "" {
			reasons = append(reasons, fmt.Sprintf("email duplicates row %d", prev))
		} else {
			seen[row.Profile.Email] = i
		}
		if len(reasons) > 0 {
			result.Rejected = append(result.Rejected, &domain.RowRejection{Index: i, Reasons: reasons})
		}
	}
	if len(result.Rejected) > 0 {
		return result, fmt.Errorf("%w: %d of %d rows failed validation", domain.ErrInvalidInput, len(result.Rejected), len(rows))
	}

	// Quota pre-check on the per-category tallies. Advisory only: the final
	// aggregated reserve below is the authoritative guard.
	tally := make(map[domain.AttendeeCategory]int)
	for _, row := range rows {
		tally[row.Category]++
	}
	if !actor.Role.QuotaExempt() {
		for category, count := range tally {
			remaining, err := s.quota.Remaining(ctx, actor, category)
			if err != nil {
				return nil, fmt.Errorf("quota pre-check: %w", err)
			}
			if remaining != domain.UnlimitedSlots && remaining < count {
				return result, fmt.Errorf("%w: %d %s slots requested, %d remaining",
					domain.ErrInsufficientSlots, count, category, remaining)
			}
		}
	}

	// Sequential creation. No per-row reserve: quota was tallied above and is
	// charged once after the last row lands.
	status := actor.Role.DefaultAttendeeStatus()
	for i, row := range rows {
		attendee := newAttendee(&row.Profile, row.Category, status, domain.MethodManual, actor.ID, result.BatchID)
		if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
			result.Rejected = append(result.Rejected, &domain.RowRejection{Index: i, Reasons: []string{err.Error()}})
			if compErr := s.rollback(ctx, result); compErr != nil {
				return result, compErr
			}
			result.Created = result.Created[:0]
			if errors.Is(err, domain.ErrDuplicateEmail) {
				return result, fmt.Errorf("row %d: %w", i, domain.ErrDuplicateEmail)
			}
			return result, fmt.Errorf("row %d: create attendee: %w", i, err)
		}
		result.Created = append(result.Created, attendee)
	}

	// Charge the aggregated quota. A shortfall here means another writer
	// drained the grant since the pre-check; undo the whole batch.
	if !actor.Role.QuotaExempt() {
		var reserved []domain.AttendeeCategory
		for category, count := range tally {
			if err := s.quota.Reserve(ctx, actor, category, count); err != nil {
				for _, c := range reserved {
					if relErr := s.quota.Release(ctx, actor, c, tally[c]); relErr != nil {
						s.logger.ErrorContext(ctx, "slot release failed during batch rollback",
							"batch", result.BatchID, "category", c, "err", relErr)
					}
				}
				if compErr := s.rollback(ctx, result); compErr != nil {
					return result, compErr
				}
				result.Created = result.Created[:0]
				return result, err
			}
			reserved = append(reserved, category)
		}
	}

	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventBulkOperation,
		Title:   "Bulk import completed",
		Message: fmt.Sprintf("%s imported %d attendees (batch %s)", actor.Email, len(result.Created), result.BatchID),
	})
	for _, attendee := range result.Created {
		if attendee.Status == domain.AttendeeStatusApproved {
			s.sendWelcome(ctx, attendee)
		}
	}
	return result, nil
}

// rollback deletes every attendee created for the batch so far. Delete
// failures are collected, not retried: a timeout or outage mid-compensation
// must surface the orphaned rows rather than mask them.
func (s *bulkImportService) rollback(ctx context.Context, result *domain.BulkImportResult) error {
	var orphans []string
	var cause error
	for _, attendee := range result.Created {
		if err := s.attendeeRepo.Delete(ctx, attendee.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			orphans = append(orphans, attendee.ID)
			cause = err
			s.logger.ErrorContext(ctx, "compensating delete failed",
				"batch", result.BatchID, "attendee", attendee.ID, "err", err)
		}
	}
	if len(orphans) > 0 {
		s.notifier.Notify(ctx, domain.Event{
			Kind:    domain.EventSystemError,
			Title:   "Bulk import rollback incomplete",
			Message: fmt.Sprintf("batch %s left %d attendees that could not be deleted", result.BatchID, len(orphans)),
		})
		return &domain.CompensationError{BatchID: result.BatchID, OrphanIDs: orphans, Cause: cause}
	}
	return nil
}

func (s *bulkImportService) sendWelcome(ctx context.Context, attendee *domain.Attendee) {
	data := &domain.WelcomeEmailData{
		Email:     attendee.Email,
		FirstName: attendee.FirstName,
		Category:  string(attendee.Category),
	}
	if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "welcome email failed", "email", attendee.Email, "err", err)
	}
}

// rowIssues aggregates the static reasons a row cannot be imported.
func rowIssues(row *domain.RowInput) []string {
	var reasons []string
	if !row.Category.Valid() {
		reasons = append(reasons, fmt.Sprintf("unknown category %q", row.Category))
	}
	reasons = append(reasons, profileIssues(&row.Profile)...)
	reasons = append(reasons, categoryIssues(row.Category, &row.Profile)...)
	return reasons
}
