package ports

import (
	"context"

	"github.com/campushq/student-admin-api/internal/core/domain"
)

// StudentRepository defines persistence operations for student records.
// Email uniqueness is enforced by the storage layer's unique index; Insert and
// Update must surface a violation as ErrStudentExists.
type StudentRepository interface {
	Insert(ctx context.Context, s *domain.Student) (*domain.Student, error)
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	FindByEmail(ctx context.Context, email string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	// Update replaces the mutable fields of the record with id and returns
	// the updated document, or ErrStudentNotFound.
	Update(ctx context.Context, id string, s *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}
