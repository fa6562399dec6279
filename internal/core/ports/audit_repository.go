package ports

import (
	"context"

	"github.com/campushq/student-admin-api/internal/core/domain"
)

// AuditRepository persists authorization-transition audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
