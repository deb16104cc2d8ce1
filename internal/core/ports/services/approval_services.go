package services

import "context"

// ApprovalSvcFacade records decisions on approval chains and withdraws requests.
// Both operations return false without touching the store once the request
// is Approved or Discarded.
type ApprovalSvcFacade interface {
	RecordDecision(ctx context.Context, approverID, requestID int64, approved bool) (bool, error)
	Discard(ctx context.Context, requestID int64) (bool, error)
}
