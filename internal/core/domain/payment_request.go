package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the stored status code of a payment request.
type RequestStatus int

const (
	StatusPending           RequestStatus = 1
	StatusApproved          RequestStatus = 2
	StatusPartiallyApproved RequestStatus = 3
	StatusDiscarded         RequestStatus = 4
)

// IsTerminal reports whether no further decision or discard can change the status.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusDiscarded
}

func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusApproved:
		return "APPROVED"
	case StatusPartiallyApproved:
		return "PARTIALLY_APPROVED"
	case StatusDiscarded:
		return "DISCARDED"
	default:
		return fmt.Sprintf("STATUS_%d", int(s))
	}
}

// PaymentRequest is a listing row: the request plus the display fields joined in by the store.
type PaymentRequest struct {
	ID                 int64           `json:"id"`
	InitiatorID        int64           `json:"initiatorID"`
	InitiatorName      string          `json:"initiatorName"`
	MVZ                string          `json:"mvz"`
	MVZName            string          `json:"mvzName"`
	Office             string          `json:"office"`
	CategoryID         int64           `json:"categoryID"`
	CategoryName       string          `json:"categoryName"`
	Counterparty       string          `json:"counterparty"`
	CSP                string          `json:"csp"`
	PlannedDate        time.Time       `json:"plannedDate"`
	SumExcludingTax    decimal.Decimal `json:"sumExcludingTax"`
	TaxRate            decimal.Decimal `json:"taxRate"` // percent, e.g. 20
	Description        string          `json:"description"`
	StatusID           RequestStatus   `json:"statusID"`
	StatusName         string          `json:"statusName"`
	CreatedAt          time.Time       `json:"createdAt"`
	ActiveApproverID   *int64          `json:"activeApproverID,omitempty"`
	ActiveApproverName string          `json:"activeApproverName,omitempty"`
}

// Number is the human-facing request number, e.g. "LG-20230315_1042".
func (p PaymentRequest) Number() string {
	return fmt.Sprintf("LG-%s_%d", p.CreatedAt.Format("20060102"), p.ID)
}

// SumIncludingTax applies the tax rate to the net sum, rounded to cents.
func (p PaymentRequest) SumIncludingTax() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return p.SumExcludingTax.Mul(hundred.Add(p.TaxRate)).Div(hundred).Round(2)
}

// NewRequest holds the fields an initiator submits for a new payment request.
type NewRequest struct {
	MVZ             string          `json:"mvz" validate:"required"`
	Office          string          `json:"office" validate:"required"`
	CategoryID      int64           `json:"categoryID" validate:"required,gt=0"`
	Counterparty    string          `json:"counterparty" validate:"max=256"`
	CSP             string          `json:"csp" validate:"max=256"`
	PlannedDate     time.Time       `json:"plannedDate" validate:"required"`
	SumExcludingTax decimal.Decimal `json:"sumExcludingTax" validate:"dgte=0"`
	TaxRate         decimal.Decimal `json:"taxRate" validate:"dgte=0"`
	Description     string          `json:"description" validate:"max=4000"`
	ApproverID      int64           `json:"approverID" validate:"required,gt=0"` // first-stage approver
}

// CreateResult is the outcome of submitting a NewRequest. The zero value is a rejection.
type CreateResult struct {
	Accepted  bool  `json:"accepted"`
	RequestID int64 `json:"requestID,omitempty"`
}
