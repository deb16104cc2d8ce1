package repositories

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
)

// PaymentRequestReader defines read operations for payment requests
type PaymentRequestReader interface {
	// FindRequests lists the requests visible to user, narrowed by filter.
	FindRequests(ctx context.Context, user domain.User, filter domain.ListingFilter) ([]domain.PaymentRequest, error)

	// FindRequestStatus returns the current status of a request.
	// Returns apperrors.ErrNotFound for an unknown ID.
	FindRequestStatus(ctx context.Context, requestID int64) (domain.RequestStatus, error)
}

// PaymentRequestWriter defines write operations for payment requests
type PaymentRequestWriter interface {
	// CreateRequest submits a new request on behalf of userID. The store
	// decides whether it is allowed.
	CreateRequest(ctx context.Context, userID int64, req domain.NewRequest) (domain.CreateResult, error)
}

// PaymentRequestRepositoryFacade combines all payment request repository interfaces
type PaymentRequestRepositoryFacade interface {
	PaymentRequestReader
	PaymentRequestWriter
}
