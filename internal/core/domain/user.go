package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidInput = errors.New("invalid input")
var ErrTooManyAttempts = errors.New("too many failed login attempts")
var ErrCorruptCredential = errors.New("corrupt stored credential")

// ValidRole reports whether role is one of the recognised authorization levels.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models an administrative account. PasswordHash never leaves the
// process: it is excluded from JSON and only ever compared through the hasher.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsBlocked    bool      `json:"isBlocked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
