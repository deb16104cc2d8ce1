package services

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
)

// RequestReaderSvc defines read operations for payment requests
type RequestReaderSvc interface {
	// ListRequests returns the requests visible to user, narrowed by filter.
	ListRequests(ctx context.Context, user domain.User, filter domain.ListingFilter) ([]domain.PaymentRequest, error)

	// GetApprovals returns the approval chain of a request.
	GetApprovals(ctx context.Context, requestID int64) ([]domain.Approval, error)

	// GetFirstStageApprovers lists the people selectable as first approver.
	GetFirstStageApprovers(ctx context.Context) ([]domain.ApprovalCandidate, error)
}

// RequestWriterSvc defines write operations for payment requests
type RequestWriterSvc interface {
	// CreateRequest validates and submits a new request for userID.
	CreateRequest(ctx context.Context, userID int64, req domain.NewRequest) (domain.CreateResult, error)
}

// RequestSvcFacade combines all payment request service interfaces
type RequestSvcFacade interface {
	RequestReaderSvc
	RequestWriterSvc
}
