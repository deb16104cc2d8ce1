package services

import (
	"context"
	"log/slog"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
)

type SessionService struct {
	BaseService
	sessionRepo portsrepo.SessionRepositoryFacade
}

func NewSessionService(base BaseService, sessionRepo portsrepo.SessionRepositoryFacade) *SessionService {
	return &SessionService{BaseService: base, sessionRepo: sessionRepo}
}

func (s *SessionService) Ping(ctx context.Context) (bool, error) {
	return faultguard.Query(ctx, s.Guard, "ping", func(ctx context.Context) (bool, error) {
		if err := s.sessionRepo.Ping(ctx); err != nil {
			return false, err
		}
		return true, nil
	})
}

// CheckAccess is false when the store returned no grant, including when the
// store could not be reached.
func (s *SessionService) CheckAccess(ctx context.Context) (bool, error) {
	grant, err := faultguard.Query(ctx, s.Guard, "access check", s.sessionRepo.CheckAccess)
	if err != nil {
		s.LogError(ctx, err, "Access check failed")
		return false, err
	}
	if grant == nil {
		s.LogInfo(ctx, "Access check returned no grant")
		return false, nil
	}

	permitted := grant.Permitted()
	s.LogDebug(ctx, "Access check completed",
		slog.Int("access_type", int(grant.AccessType)),
		slog.Bool("is_super_user", grant.IsSuperUser),
		slog.Bool("permitted", permitted))
	return permitted, nil
}

// LoadCurrentUser never takes an identity from the caller: the store resolves
// the logged-in principal itself.
func (s *SessionService) LoadCurrentUser(ctx context.Context) (domain.User, error) {
	user, err := faultguard.Query(ctx, s.Guard, "load current user", s.sessionRepo.FindCurrentUser)
	if err != nil {
		s.LogError(ctx, err, "Failed to load current user")
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, apperrors.ErrNetworkUnavailable
	}
	return *user, nil
}
