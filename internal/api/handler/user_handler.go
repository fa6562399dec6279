package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushq/student-admin-api/internal/api/metrics"
	"github.com/campushq/student-admin-api/internal/core/domain"
	"github.com/campushq/student-admin-api/internal/core/ports"
)

// UserHandler exposes the authorization transitions on existing accounts.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all user accounts.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Block sets is_blocked on the account. Idempotent.
//
// @Summary      Block a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/{id}/block [put]
func (h *UserHandler) Block(c echo.Context) error {
	if err := h.userService.Block(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}
	metrics.UserTransitionsTotal.WithLabelValues(domain.AuditActionBlock).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User blocked successfully"})
}

// Unblock clears is_blocked on the account. Idempotent.
//
// @Summary      Unblock a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/{id}/unblock [put]
func (h *UserHandler) Unblock(c echo.Context) error {
	if err := h.userService.Unblock(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}
	metrics.UserTransitionsTotal.WithLabelValues(domain.AuditActionUnblock).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User unblocked successfully"})
}

// UpdateRole assigns a new role. Rejects anything outside {admin, user}
// before any state change.
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "User id"
// @Param        body  body      roleRequest  true  "New role"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users/{id}/role [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid role"})
	}

	if err := h.userService.SetRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid role"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}
	metrics.UserTransitionsTotal.WithLabelValues(domain.AuditActionRoleChange).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User role updated successfully"})
}
