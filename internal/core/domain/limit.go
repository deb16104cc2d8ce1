package domain

import "github.com/shopspring/decimal"

// MonthlyLimit is a person's allowance for creating requests within a calendar month.
type MonthlyLimit struct {
	UserID      int64           `json:"userID" validate:"gt=0"`
	UserName    string          `json:"userName"`
	LimitAmount decimal.Decimal `json:"limitAmount" validate:"dgte=0"`
	ResetFlag   bool            `json:"resetFlag"`
}
