package mapping

import (
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/VShkaberda/Payments-contol/internal/models"
)

// ToDomainPaymentRequest converts a listing row to a domain PaymentRequest.
// The active approver name is only shown while the request is pending.
func ToDomainPaymentRequest(m models.PaymentRequest) domain.PaymentRequest {
	d := domain.PaymentRequest{
		ID:              m.ID,
		InitiatorID:     m.InitiatorID,
		InitiatorName:   m.InitiatorName,
		MVZ:             m.MVZ,
		MVZName:         m.MVZName,
		Office:          m.Office,
		CategoryID:      m.CategoryID,
		CategoryName:    m.CategoryName,
		Counterparty:    m.Counterparty.String,
		CSP:             m.CSP.String,
		PlannedDate:     m.PlannedDate,
		SumExcludingTax: m.SumExcludingTax,
		TaxRate:         m.TaxRate,
		Description:     m.Description.String,
		StatusID:        domain.RequestStatus(m.StatusID),
		StatusName:      m.StatusName,
		CreatedAt:       m.CreatedAt,
	}
	if m.ActiveApproverID.Valid {
		id := m.ActiveApproverID.Int64
		d.ActiveApproverID = &id
	}
	if d.StatusID == domain.StatusPending {
		d.ActiveApproverName = m.ActiveApproverName.String
	}
	return d
}

// ToDomainPaymentRequestSlice converts a slice of listing rows.
func ToDomainPaymentRequestSlice(ms []models.PaymentRequest) []domain.PaymentRequest {
	ds := make([]domain.PaymentRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentRequest(m)
	}
	return ds
}
