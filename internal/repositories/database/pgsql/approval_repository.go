package pgsql

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/models"
	"github.com/VShkaberda/Payments-contol/internal/utils/mapping"
)

type PgxApprovalRepository struct {
	BaseRepository
}

func newPgxApprovalRepository(base BaseRepository) *PgxApprovalRepository {
	return &PgxApprovalRepository{BaseRepository: base}
}

// Ensure PgxApprovalRepository implements portsrepo.ApprovalRepositoryFacade
var _ portsrepo.ApprovalRepositoryFacade = (*PgxApprovalRepository)(nil)

func (r *PgxApprovalRepository) FindApprovals(ctx context.Context, requestID int64) ([]domain.Approval, error) {
	query := `
		SELECT payment_id, user_id, user_name, is_active_approval, is_approved, decided_at
		FROM payment.get_approvals($1);
	`
	rows, err := r.DB.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, apperrors.NewAppError("get approvals", err)
	}
	defer rows.Close()

	var result []models.Approval
	for rows.Next() {
		var m models.Approval
		if err := rows.Scan(&m.PaymentID, &m.UserID, &m.UserName, &m.IsActive, &m.IsApproved, &m.DecidedAt); err != nil {
			return nil, apperrors.NewAppError("scan approval row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError("iterate approval rows", err)
	}

	return mapping.ToDomainApprovalSlice(result), nil
}

func (r *PgxApprovalRepository) FindFirstStageApprovers(ctx context.Context) ([]domain.ApprovalCandidate, error) {
	query := `SELECT user_id, user_name FROM payment.get_approvals_for_first_stage();`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError("get first stage approvers", err)
	}
	defer rows.Close()

	var result []domain.ApprovalCandidate
	for rows.Next() {
		var c domain.ApprovalCandidate
		if err := rows.Scan(&c.UserID, &c.Name); err != nil {
			return nil, apperrors.NewAppError("scan approver row", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError("iterate approver rows", err)
	}
	return result, nil
}

// ApproveRequest hands the decision to the store, which advances or finalizes
// the chain. A decision by someone who is not the active approver is a no-op there.
func (r *PgxApprovalRepository) ApproveRequest(ctx context.Context, userID, requestID int64, approved bool) error {
	query := `SELECT payment.approve_request($1, $2, $3);`

	if _, err := r.DB.ExecContext(ctx, query, userID, requestID, approved); err != nil {
		return apperrors.NewAppError("approve request", err)
	}
	return nil
}

func (r *PgxApprovalRepository) DiscardRequest(ctx context.Context, requestID int64) error {
	query := `SELECT payment.discard_request($1);`

	if _, err := r.DB.ExecContext(ctx, query, requestID); err != nil {
		return apperrors.NewAppError("discard request", err)
	}
	return nil
}
