package repositories

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
)

// ApprovalReader defines read operations for approval chains
type ApprovalReader interface {
	// FindApprovals returns the approval chain of a request.
	FindApprovals(ctx context.Context, requestID int64) ([]domain.Approval, error)

	// FindFirstStageApprovers lists who may be picked as first approver.
	FindFirstStageApprovers(ctx context.Context) ([]domain.ApprovalCandidate, error)
}

// ApprovalWriter defines write operations for approval chains
type ApprovalWriter interface {
	// ApproveRequest records the decision of userID on a request.
	ApproveRequest(ctx context.Context, userID, requestID int64, approved bool) error

	// DiscardRequest withdraws a request.
	DiscardRequest(ctx context.Context, requestID int64) error
}

// ApprovalRepositoryFacade combines all approval repository interfaces
type ApprovalRepositoryFacade interface {
	ApprovalReader
	ApprovalWriter
}
