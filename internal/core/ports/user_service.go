package ports

import (
	"context"

	"github.com/campushq/student-admin-api/internal/core/domain"
)

// UserService applies authorization transitions to existing accounts.
// Block and Unblock are unconditional, idempotent toggles; SetRole validates
// the role before touching the store. Who may call these operations is
// enforced outside this service.
type UserService interface {
	Block(ctx context.Context, id string) error
	Unblock(ctx context.Context, id string) error
	SetRole(ctx context.Context, id, role string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
