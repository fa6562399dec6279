package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/student-admin-api/internal/core/domain"
	"github.com/campushq/student-admin-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.AuthRepository
	hasher   ports.PasswordHasher
	throttle ports.LoginThrottle // optional; nil disables throttling
	logger   zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, throttle: throttle, logger: logger}
}

// Register validates the form, hashes the password and persists a new account
// with the default role. The pre-insert email lookup is a fast path only; the
// store's unique index is the authoritative uniqueness guard, so a concurrent
// duplicate still comes back as ErrUserExists from Create.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Password != input.RepeatPassword {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsBlocked:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials. Unknown email and wrong password both yield
// ErrInvalidCredentials so a caller cannot enumerate accounts. A blocked
// account still authenticates; the flag is enforced elsewhere.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return domain.ErrInvalidInput
	}

	if s.throttle != nil {
		tooMany, err := s.throttle.TooMany(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle check failed, continuing")
		} else if tooMany {
			return domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if err := s.hasher.Verify(password, user.PasswordHash); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.recordFailure(ctx, email)
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login successful")
	return nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Fail(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}
