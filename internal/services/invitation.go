package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"invitedesk/internal/domain"
)

// Invitation codes are 8 characters from an alphabet without 0/1/I/O so they
// survive being read over the phone.
const (
	invitationCodeLength   = 8
	invitationCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	maxInvitationBatch     = 500
)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	notifier       domain.Notifier
}

// NewInvitationService creates the invitation ledger with the given repository.
func NewInvitationService(invitationRepo domain.InvitationRepository, notifier domain.Notifier) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		notifier:       notifier,
	}
}

func (s *invitationService) GenerateBatch(ctx context.Context, actor *domain.Account, category domain.AttendeeCategory, count int) ([]*domain.Invitation, error) {
	if actor == nil || !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	if count < 1 || count > maxInvitationBatch {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", domain.ErrInvalidInput, maxInvitationBatch)
	}

	invs := make([]*domain.Invitation, 0, count)
	for len(invs) < count {
		code, err := generateInvitationCode()
		if err != nil {
			return nil, fmt.Errorf("generate code: %w", err)
		}
		inv := domain.NewInvitation(code, category, actor.ID, time.Now())
		if err := s.invitationRepo.Create(ctx, inv); err != nil {
			// A collision on the random code shows up as a uniqueness failure;
			// draw again. Anything else aborts the batch.
			if errors.Is(err, domain.ErrInvalidInput) {
				continue
			}
			return nil, fmt.Errorf("create invitation: %w", err)
		}
		invs = append(invs, inv)
	}

	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventInvitationsGenerated,
		Title:   "Invitations generated",
		Message: fmt.Sprintf("%d %s invitation codes generated", count, category),
	})
	return invs, nil
}

func (s *invitationService) Validate(ctx context.Context, code string) (*domain.Invitation, error) {
	code = normalizeInvitationCode(code)
	if len(code) != invitationCodeLength {
		return nil, fmt.Errorf("%w: invitation code must be %d characters", domain.ErrInvalidInput, invitationCodeLength)
	}
	inv, err := s.invitationRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	if inv.IsUsed {
		return nil, domain.ErrInvitationUsed
	}
	return inv, nil
}

func (s *invitationService) Redeem(ctx context.Context, code, usedBy string) (*domain.Invitation, error) {
	code = normalizeInvitationCode(code)
	inv, err := s.invitationRepo.Redeem(ctx, code, usedBy, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvitationUsed) {
			return nil, err
		}
		return nil, fmt.Errorf("redeem invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) ListByCreator(ctx context.Context, actor *domain.Account) ([]*domain.Invitation, error) {
	if actor == nil || !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	invs, err := s.invitationRepo.ListByCreator(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	return invs, nil
}

func normalizeInvitationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func generateInvitationCode() (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(invitationCodeAlphabet)))
	for i := 0; i < invitationCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(invitationCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}
