package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
)

type ApprovalService struct {
	BaseService
	requestRepo  portsrepo.PaymentRequestReader
	approvalRepo portsrepo.ApprovalWriter
}

func NewApprovalService(base BaseService, requestRepo portsrepo.PaymentRequestReader, approvalRepo portsrepo.ApprovalWriter) *ApprovalService {
	return &ApprovalService{BaseService: base, requestRepo: requestRepo, approvalRepo: approvalRepo}
}

// RecordDecision passes the decision to the store, which advances or
// finalizes the chain. Whether the caller is the active approver is decided
// there too.
func (s *ApprovalService) RecordDecision(ctx context.Context, approverID, requestID int64, approved bool) (bool, error) {
	return faultguard.Mutate(ctx, s.Guard, "record decision", func(ctx context.Context) (bool, error) {
		if open, err := s.isOpen(ctx, requestID); !open || err != nil {
			return false, err
		}
		if err := s.approvalRepo.ApproveRequest(ctx, approverID, requestID, approved); err != nil {
			return false, err
		}
		s.LogInfo(ctx, "Decision recorded",
			slog.Int64("approver_id", approverID),
			slog.Int64("request_id", requestID),
			slog.Bool("approved", approved))
		return true, nil
	})
}

func (s *ApprovalService) Discard(ctx context.Context, requestID int64) (bool, error) {
	return faultguard.Mutate(ctx, s.Guard, "discard request", func(ctx context.Context) (bool, error) {
		if open, err := s.isOpen(ctx, requestID); !open || err != nil {
			return false, err
		}
		if err := s.approvalRepo.DiscardRequest(ctx, requestID); err != nil {
			return false, err
		}
		s.LogInfo(ctx, "Request discarded", slog.Int64("request_id", requestID))
		return true, nil
	})
}

// isOpen reports whether the request exists and is not yet Approved or Discarded.
func (s *ApprovalService) isOpen(ctx context.Context, requestID int64) (bool, error) {
	status, err := s.requestRepo.FindRequestStatus(ctx, requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Request not found", slog.Int64("request_id", requestID))
			return false, nil
		}
		return false, err
	}
	if status.IsTerminal() {
		s.LogInfo(ctx, "Request already finished, nothing sent",
			slog.Int64("request_id", requestID),
			slog.String("status", status.String()))
		return false, nil
	}
	return true, nil
}
