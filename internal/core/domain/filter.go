package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NoTaxFilter is the tax-rate value meaning "any tax rate".
var NoTaxFilter = decimal.NewFromInt(-1)

// ListingFilter narrows a request listing. Every field is optional; present
// fields are combined with AND on top of the caller's role-based visibility.
type ListingFilter struct {
	InitiatorID  *int64
	MVZ          string
	Office       string
	Year         string // applied only when made of digits
	Months       []int  // planned-month membership
	SumFrom      *decimal.Decimal
	SumTo        *decimal.Decimal
	TaxRate      *decimal.Decimal // NoTaxFilter means no filter
	ApprovalOnly bool
}

// PlannedYear returns the year predicate value when Year is all digits.
func (f ListingFilter) PlannedYear() (int, bool) {
	if f.Year == "" {
		return 0, false
	}
	for _, r := range f.Year {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	y, err := strconv.Atoi(f.Year)
	if err != nil {
		return 0, false
	}
	return y, true
}

// Tax returns the exact tax rate to match, unless absent or the sentinel.
func (f ListingFilter) Tax() (decimal.Decimal, bool) {
	if f.TaxRate == nil || f.TaxRate.Equal(NoTaxFilter) {
		return decimal.Zero, false
	}
	return *f.TaxRate, true
}

// ParseMonths parses a comma separated month set such as "3,4".
func ParseMonths(s string) ([]int, error) {
	var months []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m, err := strconv.Atoi(part)
		if err != nil || m < 1 || m > 12 {
			return nil, fmt.Errorf("invalid month %q", part)
		}
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	return months, nil
}
