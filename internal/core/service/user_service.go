package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/student-admin-api/internal/core/domain"
	"github.com/campushq/student-admin-api/internal/core/ports"
)

// AuditSink receives authorization-transition events for asynchronous
// recording. Failures must never surface to the API caller.
type AuditSink interface {
	Record(event domain.AuditEvent)
}

// UserService applies block/unblock and role transitions. Each transition is
// a single atomic field update in the store; block and unblock are
// unconditional toggles, so repeating one is a no-op, not an error.
type UserService struct {
	repo   ports.AuthRepository
	audit  AuditSink // optional; nil disables the audit trail
	logger zerolog.Logger
}

func NewUserService(repo ports.AuthRepository, audit AuditSink, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

func (s *UserService) Block(ctx context.Context, id string) error {
	if err := s.repo.SetBlocked(ctx, id, true); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user blocked")
	s.record(id, domain.AuditActionBlock, "")
	return nil
}

func (s *UserService) Unblock(ctx context.Context, id string) error {
	if err := s.repo.SetBlocked(ctx, id, false); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user unblocked")
	s.record(id, domain.AuditActionUnblock, "")
	return nil
}

// SetRole validates the role before any store call, so an invalid role never
// changes state.
func (s *UserService) SetRole(ctx context.Context, id, role string) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}
	if err := s.repo.SetRole(ctx, id, role); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("role", role).Msg("user role updated")
	s.record(id, domain.AuditActionRoleChange, role)
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) record(id, action, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		UserID:    id,
		Action:    action,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
