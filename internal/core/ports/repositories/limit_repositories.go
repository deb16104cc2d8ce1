package repositories

import (
	"context"
	"time"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LimitReader defines read operations for monthly creation limits
type LimitReader interface {
	// FindRemainingLimit returns what userID may still request in the month of date.
	FindRemainingLimit(ctx context.Context, userID int64, date time.Time) (decimal.Decimal, error)

	// FindLimits lists the limits of every limit-bearing user, ordered by name.
	FindLimits(ctx context.Context) ([]domain.MonthlyLimit, error)
}

// LimitWriter defines write operations for monthly creation limits
type LimitWriter interface {
	// UpdateLimits applies all entries atomically. An entry naming an unknown
	// user fails the whole batch with apperrors.ErrRejectedOperation.
	UpdateLimits(ctx context.Context, limits []domain.MonthlyLimit) error
}

// LimitRepositoryFacade combines all limit repository interfaces
type LimitRepositoryFacade interface {
	LimitReader
	LimitWriter
}
