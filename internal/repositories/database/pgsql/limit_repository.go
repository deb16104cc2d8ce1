package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/dbx"
	"github.com/VShkaberda/Payments-contol/internal/models"
	"github.com/VShkaberda/Payments-contol/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxLimitRepository struct {
	BaseRepository
}

func newPgxLimitRepository(base BaseRepository) *PgxLimitRepository {
	return &PgxLimitRepository{BaseRepository: base}
}

// Ensure PgxLimitRepository implements portsrepo.LimitRepositoryFacade
var _ portsrepo.LimitRepositoryFacade = (*PgxLimitRepository)(nil)

func (r *PgxLimitRepository) FindRemainingLimit(ctx context.Context, userID int64, date time.Time) (decimal.Decimal, error) {
	query := `SELECT payment.get_limit_for_month_by_date($1, $2);`

	var remaining decimal.NullDecimal
	if err := r.DB.QueryRowContext(ctx, query, userID, date).Scan(&remaining); err != nil {
		return decimal.Zero, apperrors.NewAppError("get remaining limit", err)
	}
	if !remaining.Valid {
		return decimal.Zero, nil
	}
	return remaining.Decimal, nil
}

func (r *PgxLimitRepository) FindLimits(ctx context.Context) ([]domain.MonthlyLimit, error) {
	query := `
		SELECT user_id, user_name, user_create_request_limit, reset_create_request_limit
		FROM payment.people
		WHERE access_type IN (1, 2) OR is_super_user
		ORDER BY user_name;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError("get limits", err)
	}
	defer rows.Close()

	var result []models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.UserID, &p.UserName, &p.Limit, &p.ResetLimit); err != nil {
			return nil, apperrors.NewAppError("scan limit row", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError("iterate limit rows", err)
	}

	return mapping.ToDomainMonthlyLimitSlice(result), nil
}

func (r *PgxLimitRepository) UpdateLimits(ctx context.Context, limits []domain.MonthlyLimit) error {
	query := `
		UPDATE payment.people
		SET reset_create_request_limit = $1, user_create_request_limit = $2
		WHERE user_id = $3;
	`
	err := r.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		for _, l := range limits {
			res, err := tx.ExecContext(ctx, query, l.ResetFlag, l.LimitAmount, l.UserID)
			if err != nil {
				return err
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("no person with id %d: %w", l.UserID, apperrors.ErrRejectedOperation)
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewAppError("update limits", err)
	}
	return nil
}
