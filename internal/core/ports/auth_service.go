package ports

import (
	"context"

	"github.com/campushq/student-admin-api/internal/core/domain"
)

// RegisterInput carries the raw registration form fields.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	RepeatPassword string
}

// AuthService implements registration and credential verification.
// Login only verifies credentials; no session or token is issued.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// PasswordHasher turns a plaintext password into a storable one-way
// representation and verifies candidates against it.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns nil on match, domain.ErrInvalidCredentials on mismatch
	// and domain.ErrCorruptCredential when the stored hash is malformed.
	Verify(plaintext, hash string) error
}

// LoginThrottle limits repeated failed login attempts per email.
type LoginThrottle interface {
	// TooMany reports whether the email has exceeded the failure budget.
	TooMany(ctx context.Context, email string) (bool, error)
	Fail(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
