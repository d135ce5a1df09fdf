package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"invitedesk/internal/domain"
)

const saltLength = 32

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher that pre-hashes the salted
// password with SHA-256 before bcrypt, so passwords longer than bcrypt's
// 72-byte limit are still handled.
func NewBcryptHasher(cost int) domain.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

func (h *bcryptHasher) Hash(salt, password string) (string, error) {
	digest := sha256.Sum256([]byte(salt + password))
	hash, err := bcrypt.GenerateFromPassword(digest[:], h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, salt, password string) error {
	digest := sha256.Sum256([]byte(salt + password))
	if err := bcrypt.CompareHashAndPassword([]byte(hash), digest[:]); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
