package services

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
)

type ReferenceService struct {
	BaseService
	referenceRepo portsrepo.ReferenceRepositoryFacade
}

func NewReferenceService(base BaseService, referenceRepo portsrepo.ReferenceRepositoryFacade) *ReferenceService {
	return &ReferenceService{BaseService: base, referenceRepo: referenceRepo}
}

func (s *ReferenceService) GetCategories(ctx context.Context, user domain.User) ([]domain.Category, error) {
	categories, err := faultguard.Query(ctx, s.Guard, "get categories", func(ctx context.Context) ([]domain.Category, error) {
		return s.referenceRepo.FindCategories(ctx, user)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get categories")
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *ReferenceService) GetMVZ(ctx context.Context, user domain.User) ([]domain.MVZ, error) {
	list, err := faultguard.Query(ctx, s.Guard, "get mvz", func(ctx context.Context) ([]domain.MVZ, error) {
		return s.referenceRepo.FindMVZ(ctx, user)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get cost centers")
		return nil, err
	}
	if list == nil {
		return []domain.MVZ{}, nil
	}
	return list, nil
}

func (s *ReferenceService) GetAllowedInitiators(ctx context.Context, user domain.User) ([]domain.Initiator, error) {
	initiators, err := faultguard.Query(ctx, s.Guard, "get allowed initiators", func(ctx context.Context) ([]domain.Initiator, error) {
		return s.referenceRepo.FindAllowedInitiators(ctx, user)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get allowed initiators")
		return nil, err
	}
	return append([]domain.Initiator{domain.AllInitiators}, initiators...), nil
}
