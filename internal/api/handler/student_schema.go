package handler

import (
	"fmt"
	"time"

	"github.com/campushq/student-admin-api/internal/core/domain"
	"github.com/campushq/student-admin-api/internal/core/ports"
)

type studentRequest struct {
	FirstName       string   `json:"firstName"       validate:"required"`
	LastName        string   `json:"lastName"        validate:"required"`
	Email           string   `json:"email"           validate:"required,email"`
	DateOfBirth     string   `json:"dateOfBirth"     validate:"required"`
	EnrolledCourses []string `json:"enrolledCourses"`
	Address         string   `json:"address"`
	PhoneNumber     string   `json:"phoneNumber"`
}

type studentResponse struct {
	Message string          `json:"message"`
	Student *domain.Student `json:"student"`
}

// toStudentInput converts the request into a service input, parsing the date
// of birth. Dates are accepted either as "2006-01-02" or full RFC 3339.
func toStudentInput(req studentRequest) (ports.StudentInput, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return ports.StudentInput{}, err
	}

	return ports.StudentInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		DateOfBirth:     dob,
		EnrolledCourses: req.EnrolledCourses,
		Address:         req.Address,
		PhoneNumber:     req.PhoneNumber,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}
