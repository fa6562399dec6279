package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/student-admin-api/internal/core/domain"
)

// hashCost matches the work factor the original deployment used.
const hashCost = 10

// BcryptHasher implements ports.PasswordHasher with bcrypt. Each Hash call
// salts independently, so hashing the same plaintext twice yields different
// stored values.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: hashCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares plaintext against the stored hash using bcrypt's
// constant-time comparison.
func (h *BcryptHasher) Verify(plaintext, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.ErrInvalidCredentials
	default:
		// Anything else means the stored value is not a valid bcrypt hash.
		return domain.ErrCorruptCredential
	}
}
