package ports

import (
	"context"
	"time"

	"github.com/campushq/student-admin-api/internal/core/domain"
)

// StudentInput carries all writable student fields. Edit performs a full
// replace of these fields; RegistrationDate is never part of the input.
type StudentInput struct {
	FirstName       string
	LastName        string
	Email           string
	DateOfBirth     time.Time
	EnrolledCourses []string
	Address         string
	PhoneNumber     string
}

// StudentService defines use-case operations for student records.
type StudentService interface {
	Add(ctx context.Context, input StudentInput) (*domain.Student, error)
	Edit(ctx context.Context, id string, input StudentInput) (*domain.Student, error)
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
}
