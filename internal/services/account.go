package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"invitedesk/internal/domain"
)

type accountService struct {
	accountRepo domain.AccountRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
	notifier    domain.Notifier
}

// NewAccountService creates the staff account service with the given
// repository and auth ports.
func NewAccountService(
	accountRepo domain.AccountRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	notifier domain.Notifier,
) domain.AccountService {
	return &accountService{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
		notifier:    notifier,
	}
}

func (s *accountService) Create(ctx context.Context, actor *domain.Account, email, name, lastName, password string, role domain.Role) (*domain.Account, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	account := domain.NewAccount(email, strings.TrimSpace(name), strings.TrimSpace(lastName), role, now, now)
	account.PasswordHash = hash
	account.Salt = salt
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventAccountCreated,
		Title:   "Account created",
		Message: fmt.Sprintf("%s created account %s with role %s", actor.Email, account.Email, role),
	})
	return account, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get account: %w", err)
	}
	if err := s.hasher.Compare(account.PasswordHash, account.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(account.ID, account.Email, account.Role, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	// Only privileged logins are broadcast.
	if account.Role.Privileged() {
		s.notifier.Notify(ctx, domain.Event{
			Kind:    domain.EventLogin,
			Title:   "Privileged login",
			Message: fmt.Sprintf("%s (%s) signed in", account.Email, account.Role),
		})
	}
	return token, account, nil
}

func (s *accountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (s *accountService) ChangeRole(ctx context.Context, actor *domain.Account, accountID string, role domain.Role) (*domain.Account, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if account.Role == role {
		return account, nil
	}
	if err := s.accountRepo.UpdateRole(ctx, accountID, role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	previous := account.Role
	account.Role = role
	s.notifier.Notify(ctx, domain.Event{
		Kind:    domain.EventAccountRoleChanged,
		Title:   "Role changed",
		Message: fmt.Sprintf("%s: %s -> %s by %s", account.Email, previous, role, actor.Email),
	})
	return account, nil
}

func (s *accountService) ListStaff(ctx context.Context, actor *domain.Account) ([]*domain.Account, error) {
	if actor == nil || !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}
