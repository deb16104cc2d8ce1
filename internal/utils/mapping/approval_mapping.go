package mapping

import (
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/VShkaberda/Payments-contol/internal/models"
)

// ToDomainApproval converts an approval row to a domain Approval
func ToDomainApproval(m models.Approval) domain.Approval {
	d := domain.Approval{
		PaymentID:      m.PaymentID,
		ApproverUserID: m.UserID,
		ApproverName:   m.UserName,
		IsActive:       m.IsActive,
	}
	var flag *bool
	if m.IsApproved.Valid {
		v := m.IsApproved.Bool
		flag = &v
	}
	d.Decision = domain.DecisionFromFlag(flag)
	if m.DecidedAt.Valid {
		t := m.DecidedAt.Time
		d.DecidedAt = &t
	}
	return d
}

// ToDomainApprovalSlice converts a slice of approval rows
func ToDomainApprovalSlice(ms []models.Approval) []domain.Approval {
	ds := make([]domain.Approval, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApproval(m)
	}
	return ds
}
