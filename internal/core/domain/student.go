package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrStudentNotFound = errors.New("student not found")
var ErrStudentExists = errors.New("student already exists")

// Student is an independent record aggregate; it does not reference any User.
// EnrolledCourses holds opaque course identifiers that are never validated for
// existence (weak references).
type Student struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	DateOfBirth      time.Time `json:"dateOfBirth"`
	EnrolledCourses  []string  `json:"enrolledCourses"`
	Address          string    `json:"address,omitempty"`
	PhoneNumber      string    `json:"phoneNumber,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// NormalizeEmail applies the canonical form used for the uniqueness
// constraint: surrounding whitespace trimmed, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
