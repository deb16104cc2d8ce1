package services

import (
	"context"
	"time"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LimitReaderSvc defines read operations for monthly creation limits
type LimitReaderSvc interface {
	// GetRemainingLimit returns the allowance left to userID in the month of date.
	GetRemainingLimit(ctx context.Context, userID int64, date time.Time) (decimal.Decimal, error)

	// GetAllLimits lists the limits of all limit-bearing users.
	GetAllLimits(ctx context.Context) ([]domain.MonthlyLimit, error)
}

// LimitWriterSvc defines write operations for monthly creation limits
type LimitWriterSvc interface {
	// UpdateLimits applies a batch all-or-nothing.
	UpdateLimits(ctx context.Context, limits []domain.MonthlyLimit) (bool, error)
}

// LimitSvcFacade combines all limit service interfaces
type LimitSvcFacade interface {
	LimitReaderSvc
	LimitWriterSvc
}
