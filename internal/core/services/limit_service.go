package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type LimitService struct {
	BaseService
	limitRepo portsrepo.LimitRepositoryFacade
	validate  *validator.Validate
}

func NewLimitService(base BaseService, limitRepo portsrepo.LimitRepositoryFacade, validate *validator.Validate) *LimitService {
	return &LimitService{BaseService: base, limitRepo: limitRepo, validate: validate}
}

func (s *LimitService) GetRemainingLimit(ctx context.Context, userID int64, date time.Time) (decimal.Decimal, error) {
	return faultguard.Query(ctx, s.Guard, "get remaining limit", func(ctx context.Context) (decimal.Decimal, error) {
		return s.limitRepo.FindRemainingLimit(ctx, userID, date)
	})
}

func (s *LimitService) GetAllLimits(ctx context.Context) ([]domain.MonthlyLimit, error) {
	limits, err := faultguard.Query(ctx, s.Guard, "get limits", s.limitRepo.FindLimits)
	if err != nil {
		s.LogError(ctx, err, "Failed to get limits")
		return nil, err
	}
	if limits == nil {
		return []domain.MonthlyLimit{}, nil
	}
	return limits, nil
}

// UpdateLimits checks every entry before touching the store, so one bad entry
// leaves all limits unchanged.
func (s *LimitService) UpdateLimits(ctx context.Context, limits []domain.MonthlyLimit) (bool, error) {
	if len(limits) == 0 {
		return true, nil
	}
	for i, l := range limits {
		if err := s.validate.Struct(l); err != nil {
			s.LogInfo(ctx, "Limit batch failed validation",
				slog.Int("entry", i),
				slog.Int64("user_id", l.UserID),
				slog.String("error", err.Error()))
			return false, nil
		}
	}

	ok, err := faultguard.Mutate(ctx, s.Guard, "update limits", func(ctx context.Context) (bool, error) {
		if err := s.limitRepo.UpdateLimits(ctx, limits); err != nil {
			return false, err
		}
		return true, nil
	})
	if ok {
		s.LogInfo(ctx, "Limits updated", slog.Int("entries", len(limits)))
	}
	return ok, err
}
