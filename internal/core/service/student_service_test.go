package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/student-admin-api/internal/core/domain"
	"github.com/campushq/student-admin-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubStudentRepo struct {
	byID   map[string]*domain.Student
	nextID int
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{byID: make(map[string]*domain.Student)}
}

func cloneStudent(s *domain.Student) *domain.Student {
	clone := *s
	clone.EnrolledCourses = append([]string(nil), s.EnrolledCourses...)
	return &clone
}

func (r *stubStudentRepo) Insert(_ context.Context, s *domain.Student) (*domain.Student, error) {
	// Mirrors the unique email index of the real Mongo repo.
	for _, existing := range r.byID {
		if existing.Email == s.Email {
			return nil, domain.ErrStudentExists
		}
	}
	r.nextID++
	created := cloneStudent(s)
	created.ID = fmt.Sprintf("st-%d", r.nextID)
	r.byID[created.ID] = cloneStudent(created)
	return created, nil
}

func (r *stubStudentRepo) FindByID(_ context.Context, id string) (*domain.Student, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return cloneStudent(s), nil
}

func (r *stubStudentRepo) FindByEmail(_ context.Context, email string) (*domain.Student, error) {
	for _, s := range r.byID {
		if s.Email == email {
			return cloneStudent(s), nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (r *stubStudentRepo) List(_ context.Context) ([]*domain.Student, error) {
	students := make([]*domain.Student, 0, len(r.byID))
	for _, s := range r.byID {
		students = append(students, cloneStudent(s))
	}
	return students, nil
}

func (r *stubStudentRepo) Update(_ context.Context, id string, s *domain.Student) (*domain.Student, error) {
	existing, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	for otherID, other := range r.byID {
		if otherID != id && other.Email == s.Email {
			return nil, domain.ErrStudentExists
		}
	}
	updated := cloneStudent(s)
	updated.ID = id
	updated.RegistrationDate = existing.RegistrationDate
	r.byID[id] = cloneStudent(updated)
	return updated, nil
}

func (r *stubStudentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrStudentNotFound
	}
	delete(r.byID, id)
	return nil
}

func validStudentInput() ports.StudentInput {
	return ports.StudentInput{
		FirstName:       "Jo",
		LastName:        "Doe",
		Email:           "jo@x.com",
		DateOfBirth:     time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		EnrolledCourses: []string{"course-1", "course-2"},
	}
}

// ---------------------------------------------------------------------------
// Add
// ---------------------------------------------------------------------------

func TestStudentService_Add_Success(t *testing.T) {
	repo := newStubStudentRepo()
	svc := NewStudentService(repo, zerolog.Nop())

	before := time.Now().UTC()
	created, err := svc.Add(context.Background(), validStudentInput())
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.RegistrationDate.Before(before) {
		t.Fatalf("registration date not set: %v", created.RegistrationDate)
	}
	if len(created.EnrolledCourses) != 2 {
		t.Fatalf("courses lost: %v", created.EnrolledCourses)
	}
}

func TestStudentService_Add_RequiredFields(t *testing.T) {
	svc := NewStudentService(newStubStudentRepo(), zerolog.Nop())

	cases := map[string]func(*ports.StudentInput){
		"firstName":   func(in *ports.StudentInput) { in.FirstName = "" },
		"lastName":    func(in *ports.StudentInput) { in.LastName = "" },
		"email":       func(in *ports.StudentInput) { in.Email = "   " },
		"dateOfBirth": func(in *ports.StudentInput) { in.DateOfBirth = time.Time{} },
	}
	for name, mutate := range cases {
		input := validStudentInput()
		mutate(&input)
		if _, err := svc.Add(context.Background(), input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s missing: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestStudentService_Add_NormalizesFields(t *testing.T) {
	repo := newStubStudentRepo()
	svc := NewStudentService(repo, zerolog.Nop())

	input := validStudentInput()
	input.Email = "  Jo.Doe@X.COM "
	input.Address = "  12 Main St "
	input.PhoneNumber = " 555-1234 "

	created, err := svc.Add(context.Background(), input)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.Email != "jo.doe@x.com" {
		t.Fatalf("email not normalized: %q", created.Email)
	}
	if created.Address != "12 Main St" || created.PhoneNumber != "555-1234" {
		t.Fatalf("optional fields not trimmed: %q %q", created.Address, created.PhoneNumber)
	}
}

func TestStudentService_Add_DuplicateEmail(t *testing.T) {
	repo := newStubStudentRepo()
	svc := NewStudentService(repo, zerolog.Nop())

	if _, err := svc.Add(context.Background(), validStudentInput()); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	dup := validStudentInput()
	dup.FirstName = "Other"
	dup.Email = "JO@x.com" // same address after normalization
	if _, err := svc.Add(context.Background(), dup); !errors.Is(err, domain.ErrStudentExists) {
		t.Fatalf("expected ErrStudentExists, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Edit / Remove
// ---------------------------------------------------------------------------

func TestStudentService_Edit_FullReplace(t *testing.T) {
	repo := newStubStudentRepo()
	svc := NewStudentService(repo, zerolog.Nop())

	created, err := svc.Add(context.Background(), validStudentInput())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	input := validStudentInput()
	input.FirstName = "Joan"
	input.EnrolledCourses = []string{"course-9"}

	updated, err := svc.Edit(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}
	if updated.FirstName != "Joan" {
		t.Fatalf("field not replaced: %q", updated.FirstName)
	}
	if len(updated.EnrolledCourses) != 1 || updated.EnrolledCourses[0] != "course-9" {
		t.Fatalf("courses not replaced: %v", updated.EnrolledCourses)
	}
	if !updated.RegistrationDate.Equal(created.RegistrationDate) {
		t.Fatalf("registration date mutated: %v vs %v", updated.RegistrationDate, created.RegistrationDate)
	}
}

func TestStudentService_Edit_NotFound(t *testing.T) {
	svc := NewStudentService(newStubStudentRepo(), zerolog.Nop())

	if _, err := svc.Edit(context.Background(), "missing", validStudentInput()); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestStudentService_Remove(t *testing.T) {
	repo := newStubStudentRepo()
	svc := NewStudentService(repo, zerolog.Nop())

	created, err := svc.Add(context.Background(), validStudentInput())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.Remove(context.Background(), created.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	// Deleting again reports not found.
	if err := svc.Remove(context.Background(), created.ID); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
