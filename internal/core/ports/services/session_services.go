package services

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
)

// SessionSvcFacade covers the access gate and the current-user lookup.
type SessionSvcFacade interface {
	// Ping reports whether the store answers the self-test query.
	Ping(ctx context.Context) (bool, error)

	// CheckAccess reports whether the logged-in identity may use the application.
	CheckAccess(ctx context.Context) (bool, error)

	// LoadCurrentUser resolves the logged-in identity to its profile.
	LoadCurrentUser(ctx context.Context) (domain.User, error)
}
