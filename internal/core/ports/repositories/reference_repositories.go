package repositories

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
)

// ReferenceRepositoryFacade covers the dictionaries used to fill request forms and filters.
type ReferenceRepositoryFacade interface {
	// FindCategories lists payment categories available to the user.
	FindCategories(ctx context.Context, user domain.User) ([]domain.Category, error)

	// FindMVZ lists the cost centers the user may create requests for.
	FindMVZ(ctx context.Context, user domain.User) ([]domain.MVZ, error)

	// FindAllowedInitiators lists initiators the user may filter by.
	FindAllowedInitiators(ctx context.Context, user domain.User) ([]domain.Initiator, error)
}
