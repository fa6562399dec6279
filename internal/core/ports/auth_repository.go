package ports

import (
	"context"

	"github.com/campushq/student-admin-api/internal/core/domain"
)

// AuthRepository defines persistence operations for user accounts.
// Uniqueness of email and username is ultimately enforced by the storage
// layer's unique indexes; Create must surface a violation as ErrUserExists.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// SetBlocked and SetRole are single atomic field updates; both return
	// ErrUserNotFound when no document matches id.
	SetBlocked(ctx context.Context, id string, blocked bool) error
	SetRole(ctx context.Context, id string, role string) error
}
