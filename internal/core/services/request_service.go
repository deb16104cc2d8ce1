package services

import (
	"context"
	"log/slog"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
	"github.com/go-playground/validator/v10"
)

type RequestService struct {
	BaseService
	requestRepo  portsrepo.PaymentRequestRepositoryFacade
	approvalRepo portsrepo.ApprovalReader
	validate     *validator.Validate
}

func NewRequestService(
	base BaseService,
	requestRepo portsrepo.PaymentRequestRepositoryFacade,
	approvalRepo portsrepo.ApprovalReader,
	validate *validator.Validate,
) *RequestService {
	return &RequestService{
		BaseService:  base,
		requestRepo:  requestRepo,
		approvalRepo: approvalRepo,
		validate:     validate,
	}
}

// CreateRequest rejects invalid input without contacting the store. A request
// the store refuses, or one lost to a store fault, is reported as not accepted.
func (s *RequestService) CreateRequest(ctx context.Context, userID int64, req domain.NewRequest) (domain.CreateResult, error) {
	if err := s.validate.Struct(req); err != nil {
		s.LogInfo(ctx, "Payment request failed validation",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return domain.CreateResult{}, nil
	}

	result, err := faultguard.Mutate(ctx, s.Guard, "create request", func(ctx context.Context) (domain.CreateResult, error) {
		return s.requestRepo.CreateRequest(ctx, userID, req)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create request")
		return domain.CreateResult{}, err
	}

	if result.Accepted {
		s.LogInfo(ctx, "Payment request created",
			slog.Int64("user_id", userID),
			slog.Int64("request_id", result.RequestID))
	} else {
		s.LogInfo(ctx, "Payment request not accepted", slog.Int64("user_id", userID))
	}
	return result, nil
}

func (s *RequestService) ListRequests(ctx context.Context, user domain.User, filter domain.ListingFilter) ([]domain.PaymentRequest, error) {
	requests, err := faultguard.Query(ctx, s.Guard, "list requests", func(ctx context.Context) ([]domain.PaymentRequest, error) {
		return s.requestRepo.FindRequests(ctx, user, filter)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list requests")
		return nil, err
	}
	if requests == nil {
		return []domain.PaymentRequest{}, nil
	}
	return requests, nil
}

func (s *RequestService) GetApprovals(ctx context.Context, requestID int64) ([]domain.Approval, error) {
	approvals, err := faultguard.Query(ctx, s.Guard, "get approvals", func(ctx context.Context) ([]domain.Approval, error) {
		return s.approvalRepo.FindApprovals(ctx, requestID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get approvals")
		return nil, err
	}
	if approvals == nil {
		return []domain.Approval{}, nil
	}
	return approvals, nil
}

func (s *RequestService) GetFirstStageApprovers(ctx context.Context) ([]domain.ApprovalCandidate, error) {
	candidates, err := faultguard.Query(ctx, s.Guard, "get first stage approvers", s.approvalRepo.FindFirstStageApprovers)
	if err != nil {
		s.LogError(ctx, err, "Failed to get first stage approvers")
		return nil, err
	}
	if candidates == nil {
		return []domain.ApprovalCandidate{}, nil
	}
	return candidates, nil
}
