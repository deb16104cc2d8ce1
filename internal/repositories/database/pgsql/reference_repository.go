package pgsql

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
)

type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(base BaseRepository) *PgxReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: base}
}

// Ensure PgxReferenceRepository implements portsrepo.ReferenceRepositoryFacade
var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) FindCategories(ctx context.Context, user domain.User) ([]domain.Category, error) {
	query := `SELECT id, category_name FROM payment.get_categories($1);`

	rows, err := r.DB.QueryContext(ctx, query, user.IsSuperUser)
	if err != nil {
		return nil, apperrors.NewAppError("get categories", err)
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, apperrors.NewAppError("scan category row", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError("iterate category rows", err)
	}
	return result, nil
}

func (r *PgxReferenceRepository) FindMVZ(ctx context.Context, user domain.User) ([]domain.MVZ, error) {
	query := `SELECT mvz_sap, mvz_name, service_name FROM payment.get_mvz($1, $2, $3);`

	rows, err := r.DB.QueryContext(ctx, query, user.UserID, int(user.AccessType), user.IsSuperUser)
	if err != nil {
		return nil, apperrors.NewAppError("get mvz", err)
	}
	defer rows.Close()

	var result []domain.MVZ
	for rows.Next() {
		var m domain.MVZ
		if err := rows.Scan(&m.Code, &m.Name, &m.Office); err != nil {
			return nil, apperrors.NewAppError("scan mvz row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError("iterate mvz rows", err)
	}
	return result, nil
}

func (r *PgxReferenceRepository) FindAllowedInitiators(ctx context.Context, user domain.User) ([]domain.Initiator, error) {
	query := `SELECT user_id, short_user_name FROM payment.get_allowed_initiators($1, $2, $3);`

	rows, err := r.DB.QueryContext(ctx, query, user.UserID, int(user.AccessType), user.IsSuperUser)
	if err != nil {
		return nil, apperrors.NewAppError("get allowed initiators", err)
	}
	defer rows.Close()

	var result []domain.Initiator
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, apperrors.NewAppError("scan initiator row", err)
		}
		result = append(result, domain.Initiator{UserID: &id, Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError("iterate initiator rows", err)
	}
	return result, nil
}
