package handler

import "github.com/campushq/student-admin-api/internal/core/domain"

type registerRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type roleRequest struct {
	Role string `json:"role"`
}

// messageResponse is the plain success envelope used by mutation endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// registerResponse echoes the created account. The user's password hash is
// excluded by the domain type's JSON tags.
type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
