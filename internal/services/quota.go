package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invitedesk/internal/domain"
)

type quotaService struct {
	accountRepo     domain.AccountRepository
	slotRequestRepo domain.SlotRequestRepository
	notifier        domain.Notifier
}

// NewQuotaService creates the slot ledger over the account and slot-request
// repositories.
func NewQuotaService(accountRepo domain.AccountRepository, slotRequestRepo domain.SlotRequestRepository, notifier domain.Notifier) domain.QuotaService {
	return &quotaService{
		accountRepo:     accountRepo,
		slotRequestRepo: slotRequestRepo,
		notifier:        notifier,
	}
}

func (s *quotaService) Remaining(ctx context.Context, account *domain.Account, category domain.AttendeeCategory) (int, error) {
	if account.Role.QuotaExempt() {
		return domain.UnlimitedSlots, nil
	}
	grant, err := s.accountRepo.GetSlot(ctx, account.ID, category)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get slot grant: %w", err)
	}
	remaining := grant.Total - grant.Used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Reserve re-checks the allowance at the moment of the update: the store's
// conditional increment is the authoritative guard, not the caller's earlier
// Remaining call.
func (s *quotaService) Reserve(ctx context.Context, account *domain.Account, category domain.AttendeeCategory, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: reserve count must be positive", domain.ErrInvalidInput)
	}
	if account.Role.QuotaExempt() {
		return nil
	}
	if err := s.accountRepo.ReserveSlots(ctx, account.ID, category, count); err != nil {
		if errors.Is(err, domain.ErrInsufficientSlots) {
			return domain.ErrInsufficientSlots
		}
		return fmt.Errorf("reserve slots: %w", err)
	}
	return nil
}

// Release is the compensation inverse of Reserve. The store floors used_slots
// at zero, so calling it for a reserve that never applied is harmless.
func (s *quotaService) Release(ctx context.Context, account *domain.Account, category domain.AttendeeCategory, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: release count must be positive", domain.ErrInvalidInput)
	}
	if account.Role.QuotaExempt() {
		return nil
	}
	if err := s.accountRepo.ReleaseSlots(ctx, account.ID, category, count); err != nil {
		return fmt.Errorf("release slots: %w", err)
	}
	return nil
}

func (s *quotaService) Slots(ctx context.Context, account *domain.Account) ([]*domain.SlotGrant, error) {
	grants, err := s.accountRepo.GetSlots(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("get slots: %w", err)
	}
	return grants, nil
}

func (s *quotaService) Grant(ctx context.Context, actor *domain.Account, accountID string, category domain.AttendeeCategory, total int) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if !category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	if total < 0 {
		return fmt.Errorf("%w: total must not be negative", domain.ErrInvalidInput)
	}
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	if err := s.accountRepo.UpsertSlotTotal(ctx, accountID, category, total); err != nil {
		return fmt.Errorf("upsert slot total: %w", err)
	}
	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventAccountUpdated,
		Title:   "Slot grant updated",
		Message: fmt.Sprintf("account %s now holds %d %s slots", accountID, total, category),
	})
	return nil
}

func (s *quotaService) RequestSlots(ctx context.Context, actor *domain.Account, category domain.AttendeeCategory, count int) (*domain.SlotRequest, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: requested count must be positive", domain.ErrInvalidInput)
	}
	now := time.Now()
	req := &domain.SlotRequest{
		AccountID: actor.ID,
		Category:  category,
		Requested: count,
		Status:    domain.SlotRequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.slotRequestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create slot request: %w", err)
	}
	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventSlotRequestCreated,
		Title:   "Slot request",
		Message: fmt.Sprintf("account %s requested %d %s slots", actor.Email, count, category),
	})
	return req, nil
}

func (s *quotaService) ResolveRequest(ctx context.Context, actor *domain.Account, requestID string, approve bool) (*domain.SlotRequest, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	req, err := s.slotRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get slot request: %w", err)
	}
	status := domain.SlotRequestDeclined
	if approve {
		status = domain.SlotRequestApproved
	}
	if err := s.slotRequestRepo.UpdateStatusIfPending(ctx, requestID, status, actor.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: request already resolved", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("update slot request: %w", err)
	}
	if approve {
		if err := s.accountRepo.AddSlotTotal(ctx, req.AccountID, req.Category, req.Requested); err != nil {
			return nil, fmt.Errorf("grant requested slots: %w", err)
		}
	}
	req.Status = status
	req.ResolvedBy = actor.ID
	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventSlotRequestStatusChanged,
		Title:   "Slot request resolved",
		Message: fmt.Sprintf("request %s %s by %s", requestID, status, actor.Email),
	})
	return req, nil
}
