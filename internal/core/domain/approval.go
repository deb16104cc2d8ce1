package domain

import "time"

// Decision is the outcome recorded on one link of an approval chain.
type Decision string

const (
	DecisionPending  Decision = "PENDING"
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// DecisionFromFlag maps the store's nullable is_approved flag onto a Decision.
func DecisionFromFlag(approved *bool) Decision {
	switch {
	case approved == nil:
		return DecisionPending
	case *approved:
		return DecisionApproved
	default:
		return DecisionRejected
	}
}

// Approval is one link of a request's approval chain.
type Approval struct {
	PaymentID      int64      `json:"paymentID"`
	ApproverUserID int64      `json:"approverUserID"`
	ApproverName   string     `json:"approverName"`
	IsActive       bool       `json:"isActive"`
	Decision       Decision   `json:"decision"`
	DecidedAt      *time.Time `json:"decidedAt,omitempty"`
}

// ApprovalCandidate is a person eligible to be the first link of a new chain.
type ApprovalCandidate struct {
	UserID int64  `json:"userID"`
	Name   string `json:"name"`
}
