package repositories

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
)

// SessionRepositoryFacade covers the per-session identity lookups.
type SessionRepositoryFacade interface {
	// Ping runs the trivial self-test query.
	Ping(ctx context.Context) error

	// CheckAccess asks the store for the grant of the logged-in identity.
	// A nil grant means the store returned nothing.
	CheckAccess(ctx context.Context) (*domain.AccessGrant, error)

	// FindCurrentUser loads the profile of the logged-in identity.
	// Returns apperrors.ErrNotFound when the identity has no profile.
	FindCurrentUser(ctx context.Context) (*domain.User, error)
}
