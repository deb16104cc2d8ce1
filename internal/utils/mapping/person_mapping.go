package mapping

import (
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/VShkaberda/Payments-contol/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainUser converts a people row to the session user
func ToDomainUser(m models.Person) domain.User {
	return domain.User{
		UserID:      m.UserID,
		DisplayName: m.ShortName,
		AccessType:  domain.AccessType(m.AccessType),
		IsSuperUser: m.IsSuperUser,
	}
}

// ToDomainMonthlyLimit converts a people row to a MonthlyLimit. A missing
// limit reads as zero.
func ToDomainMonthlyLimit(m models.Person) domain.MonthlyLimit {
	amount := decimal.Zero
	if m.Limit.Valid {
		amount = m.Limit.Decimal
	}
	return domain.MonthlyLimit{
		UserID:      m.UserID,
		UserName:    m.UserName,
		LimitAmount: amount,
		ResetFlag:   m.ResetLimit,
	}
}

// ToDomainMonthlyLimitSlice converts a slice of people rows to limits
func ToDomainMonthlyLimitSlice(ms []models.Person) []domain.MonthlyLimit {
	ds := make([]domain.MonthlyLimit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonthlyLimit(m)
	}
	return ds
}
