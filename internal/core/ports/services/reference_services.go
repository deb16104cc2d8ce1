package services

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
)

// ReferenceSvcFacade serves the dictionaries behind request forms and filters.
type ReferenceSvcFacade interface {
	GetCategories(ctx context.Context, user domain.User) ([]domain.Category, error)
	GetMVZ(ctx context.Context, user domain.User) ([]domain.MVZ, error)

	// GetAllowedInitiators always starts with domain.AllInitiators.
	GetAllowedInitiators(ctx context.Context, user domain.User) ([]domain.Initiator, error)
}
