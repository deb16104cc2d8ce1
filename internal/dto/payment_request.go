package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// CreatePaymentRequest is the body of POST /requests. Field rules are checked
// by the service, so a malformed but well-typed body is answered as
// "not accepted" rather than as a bad request.
type CreatePaymentRequest struct {
	MVZ             string          `json:"mvz"`
	Office          string          `json:"office"`
	CategoryID      int64           `json:"categoryID"`
	Counterparty    string          `json:"counterparty"`
	CSP             string          `json:"csp"`
	PlannedDate     string          `json:"plannedDate" binding:"required"` // YYYY-MM-DD
	SumExcludingTax decimal.Decimal `json:"sumExcludingTax"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	Description     string          `json:"description"`
	ApproverID      int64           `json:"approverID"`
}

// ToNewRequest converts the body into the domain input.
func (r CreatePaymentRequest) ToNewRequest() (domain.NewRequest, error) {
	planned, err := time.Parse(DateLayout, r.PlannedDate)
	if err != nil {
		return domain.NewRequest{}, fmt.Errorf("invalid plannedDate %q: %w", r.PlannedDate, err)
	}
	return domain.NewRequest{
		MVZ:             strings.TrimSpace(r.MVZ),
		Office:          strings.TrimSpace(r.Office),
		CategoryID:      r.CategoryID,
		Counterparty:    r.Counterparty,
		CSP:             r.CSP,
		PlannedDate:     planned,
		SumExcludingTax: r.SumExcludingTax,
		TaxRate:         r.TaxRate,
		Description:     r.Description,
		ApproverID:      r.ApproverID,
	}, nil
}

// ListRequestsQuery holds the query parameters of GET /requests.
type ListRequestsQuery struct {
	Initiator    string `form:"initiator"`
	MVZ          string `form:"mvz"`
	Office       string `form:"office"`
	Year         string `form:"year"`
	Month        string `form:"month"` // comma separated, e.g. "3,4"
	SumFrom      string `form:"sum_from"`
	SumTo        string `form:"sum_to"`
	Tax          string `form:"tax"`
	ApprovalOnly bool   `form:"approval_only"`
}

// ToFilter parses the query into a ListingFilter. An empty or "all"
// initiator means no initiator filter.
func (q ListRequestsQuery) ToFilter() (domain.ListingFilter, error) {
	f := domain.ListingFilter{
		MVZ:          strings.TrimSpace(q.MVZ),
		Office:       strings.TrimSpace(q.Office),
		Year:         strings.TrimSpace(q.Year),
		ApprovalOnly: q.ApprovalOnly,
	}

	if s := strings.TrimSpace(q.Initiator); s != "" && !strings.EqualFold(s, "all") {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return f, fmt.Errorf("invalid initiator %q", q.Initiator)
		}
		f.InitiatorID = &id
	}

	months, err := domain.ParseMonths(q.Month)
	if err != nil {
		return f, err
	}
	f.Months = months

	if f.SumFrom, err = parseSumBound("sum_from", q.SumFrom); err != nil {
		return f, err
	}
	if f.SumTo, err = parseSumBound("sum_to", q.SumTo); err != nil {
		return f, err
	}
	if f.TaxRate, err = parseOptionalDecimal("tax", q.Tax); err != nil {
		return f, err
	}
	return f, nil
}

// parseSumBound is parseOptionalDecimal where a zero bound means no bound.
func parseSumBound(name, s string) (*decimal.Decimal, error) {
	d, err := parseOptionalDecimal(name, s)
	if err != nil || d == nil || d.IsZero() {
		return nil, err
	}
	return d, nil
}

func parseOptionalDecimal(name, s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, s)
	}
	return &d, nil
}

// PaymentRequestResponse is a listing row with its derived display fields.
type PaymentRequestResponse struct {
	domain.PaymentRequest
	Number          string          `json:"number"`
	SumIncludingTax decimal.Decimal `json:"sumIncludingTax"`
}

// ToPaymentRequestResponse adds the derived fields to a listing row.
func ToPaymentRequestResponse(p domain.PaymentRequest) PaymentRequestResponse {
	return PaymentRequestResponse{
		PaymentRequest:  p,
		Number:          p.Number(),
		SumIncludingTax: p.SumIncludingTax(),
	}
}

// ToPaymentRequestResponses converts a listing.
func ToPaymentRequestResponses(ps []domain.PaymentRequest) []PaymentRequestResponse {
	out := make([]PaymentRequestResponse, len(ps))
	for i, p := range ps {
		out[i] = ToPaymentRequestResponse(p)
	}
	return out
}

// CreatePaymentResponse answers POST /requests.
type CreatePaymentResponse struct {
	Accepted  bool  `json:"accepted"`
	RequestID int64 `json:"requestID,omitempty"`
}
