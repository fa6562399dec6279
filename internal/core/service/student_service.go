package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/student-admin-api/internal/core/domain"
	"github.com/campushq/student-admin-api/internal/core/ports"
)

// StudentService manages student records as an independent aggregate.
type StudentService struct {
	repo   ports.StudentRepository
	logger zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, logger: logger}
}

// Add persists a new student record. The email pre-check is a fast path; the
// store's unique index remains the authoritative guard against duplicates.
// RegistrationDate is set here and never touched again.
func (s *StudentService) Add(ctx context.Context, input ports.StudentInput) (*domain.Student, error) {
	student, err := buildStudent(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, student.Email); err == nil {
		return nil, domain.ErrStudentExists
	} else if !errors.Is(err, domain.ErrStudentNotFound) {
		return nil, err
	}

	student.RegistrationDate = time.Now().UTC()

	created, err := s.repo.Insert(ctx, student)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("student_id", created.ID).Str("email", created.Email).Msg("student added")
	return created, nil
}

// Edit replaces all mutable fields of an existing record. It deliberately
// performs no email pre-check against other records; a duplicate email is
// only caught by the store's unique index.
func (s *StudentService) Edit(ctx context.Context, id string, input ports.StudentInput) (*domain.Student, error) {
	student, err := buildStudent(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, student)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("student_id", id).Msg("student updated")
	return updated, nil
}

func (s *StudentService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("student_id", id).Msg("student deleted")
	return nil
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.repo.List(ctx)
}

// buildStudent validates required fields and applies field normalization
// shared by Add and Edit.
func buildStudent(input ports.StudentInput) (*domain.Student, error) {
	email := domain.NormalizeEmail(input.Email)
	if input.FirstName == "" || input.LastName == "" || email == "" || input.DateOfBirth.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	courses := input.EnrolledCourses
	if courses == nil {
		courses = []string{}
	}

	return &domain.Student{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           email,
		DateOfBirth:     input.DateOfBirth,
		EnrolledCourses: courses,
		Address:         strings.TrimSpace(input.Address),
		PhoneNumber:     strings.TrimSpace(input.PhoneNumber),
	}, nil
}
