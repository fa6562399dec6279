package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushq/student-admin-api/internal/api/metrics"
	"github.com/campushq/student-admin-api/internal/core/domain"
	"github.com/campushq/student-admin-api/internal/core/ports"
)

// StudentHandler handles HTTP requests for student record CRUD.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// Create handles POST /students.
//
// @Summary      Add a new student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body      studentRequest  true  "Student details"
// @Success      201   {object}  studentResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	input, err := toStudentInput(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	student, err := h.service.Add(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Missing required student fields"})
		case errors.Is(err, domain.ErrStudentExists):
			return c.JSON(http.StatusConflict, messageResponse{Message: "Student already exists"})
		}
		return err
	}

	metrics.StudentOpsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, studentResponse{Message: "Student added successfully", Student: student})
}

// Get handles GET /students/:id.
//
// @Summary      Get a student
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  domain.Student
// @Failure      404  {object}  messageResponse
// @Router       /students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Student not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// List handles GET /students.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Success      200  {array}   domain.Student
// @Failure      500  {object}  messageResponse
// @Router       /students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if students == nil {
		students = []*domain.Student{}
	}
	return c.JSON(http.StatusOK, students)
}

// Update handles PUT /students/:id — a full replace of the mutable fields.
//
// @Summary      Edit a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Student id"
// @Param        body  body      studentRequest  true  "Student details"
// @Success      200   {object}  studentResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	input, err := toStudentInput(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	student, err := h.service.Edit(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Missing required student fields"})
		case errors.Is(err, domain.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Student not found"})
		case errors.Is(err, domain.ErrStudentExists):
			return c.JSON(http.StatusConflict, messageResponse{Message: "Student already exists"})
		}
		return err
	}

	metrics.StudentOpsTotal.WithLabelValues("edit").Inc()
	return c.JSON(http.StatusOK, studentResponse{Message: "Student updated successfully", Student: student})
}

// Delete handles DELETE /students/:id — a permanent hard delete.
//
// @Summary      Delete a student
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Student not found"})
		}
		return err
	}
	metrics.StudentOpsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Student deleted successfully"})
}
