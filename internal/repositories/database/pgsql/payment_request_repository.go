package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/models"
	"github.com/VShkaberda/Payments-contol/internal/utils/mapping"
	qb "github.com/VShkaberda/Payments-contol/internal/utils/querybuilder"
)

// ListingRules carries the per-deployment listing carve-outs.
type ListingRules struct {
	// UrgencySortUsers get finished requests pushed to the end of their listing.
	UrgencySortUsers []int64
	// ApproverAliases lets a caller see requests waiting on other identities.
	ApproverAliases map[int64][]int64
}

func (l ListingRules) urgencySort(userID int64) bool {
	return slices.Contains(l.UrgencySortUsers, userID)
}

// approverIDs is the caller plus every identity they act for.
func (l ListingRules) approverIDs(userID int64) []int64 {
	ids := []int64{userID}
	for _, alias := range l.ApproverAliases[userID] {
		if !slices.Contains(ids, alias) {
			ids = append(ids, alias)
		}
	}
	return ids
}

const listRequestsBase = `
SELECT pl.id, pl.user_id, pp.short_user_name,
       obj.mvz_sap, COALESCE(obj.mvz_name, ''), obj.service_name,
       pl.category_id, cat.category_name,
       pl.contragent, pl.csp, pl.date_planed, pl.sum_no_tax, pl.tax, pl.description,
       pl.status_id, st.value_name, pl.date_created,
       appr.user_id, pappr.short_user_name
FROM payment.payments_list pl
JOIN payment.list_objects obj ON obj.id = pl.object_id
JOIN payment.list_categories cat ON cat.id = pl.category_id
JOIN payment.people pp ON pp.user_id = pl.user_id
JOIN payment.statuses st ON st.id = pl.status_id
LEFT JOIN payment.payments_approval appr ON appr.payment_id = pl.id AND appr.is_active_approval
LEFT JOIN payment.people pappr ON pappr.user_id = appr.user_id
`

type PgxPaymentRequestRepository struct {
	BaseRepository
	rules ListingRules
}

func newPgxPaymentRequestRepository(base BaseRepository, rules ListingRules) *PgxPaymentRequestRepository {
	return &PgxPaymentRequestRepository{BaseRepository: base, rules: rules}
}

// Ensure PgxPaymentRequestRepository implements portsrepo.PaymentRequestRepositoryFacade
var _ portsrepo.PaymentRequestRepositoryFacade = (*PgxPaymentRequestRepository)(nil)

func (r *PgxPaymentRequestRepository) CreateRequest(ctx context.Context, userID int64, req domain.NewRequest) (domain.CreateResult, error) {
	query := `
		SELECT allowed, request_id
		FROM payment.create_request($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	var allowed sql.NullInt64
	var requestID sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query,
		userID,
		req.MVZ,
		req.Office,
		req.CategoryID,
		req.Counterparty,
		req.PlannedDate,
		req.Description,
		req.SumExcludingTax,
		req.TaxRate,
		req.CSP,
		req.ApproverID,
	).Scan(&allowed, &requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CreateResult{}, nil
		}
		return domain.CreateResult{}, apperrors.NewAppError("create request", err)
	}

	if allowed.Int64 == 0 {
		return domain.CreateResult{}, nil
	}
	return domain.CreateResult{Accepted: true, RequestID: requestID.Int64}, nil
}

// buildListQuery composes the listing statement for user. Role-based
// visibility comes first, then the optional filters, all conjunctive.
func (r *PgxPaymentRequestRepository) buildListQuery(user domain.User, f domain.ListingFilter) (string, []any) {
	q := qb.NewSelect(listRequestsBase)

	switch {
	case f.ApprovalOnly:
		q.Where(
			qb.Eq("pl.status_id", int(domain.StatusPending)),
			qb.In("appr.user_id", r.rules.approverIDs(user.UserID)...),
		)
	case !user.IsSuperUser:
		q.Where(qb.Or(
			qb.Eq("pl.user_id", user.UserID),
			qb.Expr("EXISTS (SELECT 1 FROM payment.payments_approval pa WHERE pa.payment_id = pl.id AND pa.user_id = ?)", user.UserID),
		))
	}

	if f.InitiatorID != nil {
		q.Where(qb.Eq("pl.user_id", *f.InitiatorID))
	}
	if f.MVZ != "" {
		q.Where(qb.Eq("obj.mvz_sap", f.MVZ))
	}
	if f.Office != "" {
		q.Where(qb.Eq("obj.service_name", f.Office))
	}
	if year, ok := f.PlannedYear(); ok {
		q.Where(qb.Eq("EXTRACT(YEAR FROM pl.date_planed)", year))
	}
	if len(f.Months) > 0 {
		q.Where(qb.In("EXTRACT(MONTH FROM pl.date_planed)", f.Months...))
	}
	if f.SumFrom != nil {
		q.Where(qb.Gte("pl.sum_no_tax", *f.SumFrom))
	}
	if f.SumTo != nil {
		q.Where(qb.Lte("pl.sum_no_tax", *f.SumTo))
	}
	if tax, ok := f.Tax(); ok {
		q.Where(qb.Eq("pl.tax", tax))
	}

	if r.rules.urgencySort(user.UserID) {
		q.OrderBy(
			fmt.Sprintf("CASE WHEN pl.status_id IN (%d, %d) THEN 2 ELSE 1 END", int(domain.StatusApproved), int(domain.StatusDiscarded)),
			"pl.id DESC",
		)
	} else {
		q.OrderBy("pl.id DESC")
	}

	return q.Build()
}

func (r *PgxPaymentRequestRepository) FindRequests(ctx context.Context, user domain.User, filter domain.ListingFilter) ([]domain.PaymentRequest, error) {
	query, args := r.buildListQuery(user, filter)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError("list requests", err)
	}
	defer rows.Close()

	var result []models.PaymentRequest
	for rows.Next() {
		var m models.PaymentRequest
		err := rows.Scan(
			&m.ID,
			&m.InitiatorID,
			&m.InitiatorName,
			&m.MVZ,
			&m.MVZName,
			&m.Office,
			&m.CategoryID,
			&m.CategoryName,
			&m.Counterparty,
			&m.CSP,
			&m.PlannedDate,
			&m.SumExcludingTax,
			&m.TaxRate,
			&m.Description,
			&m.StatusID,
			&m.StatusName,
			&m.CreatedAt,
			&m.ActiveApproverID,
			&m.ActiveApproverName,
		)
		if err != nil {
			return nil, apperrors.NewAppError("scan request row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError("iterate request rows", err)
	}

	return mapping.ToDomainPaymentRequestSlice(result), nil
}

func (r *PgxPaymentRequestRepository) FindRequestStatus(ctx context.Context, requestID int64) (domain.RequestStatus, error) {
	query := `SELECT status_id FROM payment.payments_list WHERE id = $1;`

	var status int
	err := r.DB.QueryRowContext(ctx, query, requestID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError("find request status", err)
	}
	return domain.RequestStatus(status), nil
}
