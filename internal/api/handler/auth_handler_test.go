package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campushq/student-admin-api/internal/core/domain"
	"github.com/campushq/student-admin-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) error {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func newJSONContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Username != "ann" || input.Email != "a@x.com" || input.Password != "p1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{
				ID:           "u1",
				Username:     input.Username,
				Email:        input.Email,
				PasswordHash: "$2a$10$secret",
				Role:         domain.RoleUser,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/register",
		`{"username":"ann","email":"a@x.com","password":"p1","repeatPassword":"p1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}

	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "ann" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	// The password hash must never appear in any external-facing result.
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_InvalidInput(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrInvalidInput
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/register",
		`{"username":"ann","email":"a@x.com","password":"p1","repeatPassword":"p2"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid input data or passwords do not match") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/register",
		`{"username":"bea","email":"a@x.com","password":"p1","repeatPassword":"p1"}`)
	_ = handler.Register(c)

	// The historical API reports duplicates as 400, not 409.
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) error {
			if email != "a@x.com" || password != "p1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/login", `{"email":"a@x.com","password":"p1"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Login successful!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// Unknown email and wrong password must produce identical responses.
func TestAuthHandler_Login_UniformInvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) error {
			return domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c1, rec1 := newJSONContext(e, http.MethodPost, "/login", `{"email":"ghost@x.com","password":"p"}`)
	_ = handler.Login(c1)
	c2, rec2 := newJSONContext(e, http.MethodPost, "/login", `{"email":"a@x.com","password":"wrong"}`)
	_ = handler.Login(c2)

	if rec1.Code != http.StatusBadRequest || rec2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", rec1.Code, rec2.Code)
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("responses distinguishable: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) error {
			return domain.ErrInvalidInput
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/login", `{"email":"a@x.com"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please provide both email and password") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) error {
			return domain.ErrTooManyAttempts
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/login", `{"email":"a@x.com","password":"p"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_MalformedPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/register", "not-json")
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
