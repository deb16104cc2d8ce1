package dto

import (
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateLimitsRequest is the body of PUT /limits.
type UpdateLimitsRequest struct {
	Limits []domain.MonthlyLimit `json:"limits"`
}

// RemainingLimitResponse answers GET /limits/remaining.
type RemainingLimitResponse struct {
	Date      string          `json:"date"`
	Remaining decimal.Decimal `json:"remaining"`
}
