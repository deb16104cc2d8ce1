package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/models"
	"github.com/VShkaberda/Payments-contol/internal/utils/mapping"
)

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(base BaseRepository) *PgxSessionRepository {
	return &PgxSessionRepository{BaseRepository: base}
}

// Ensure PgxSessionRepository implements portsrepo.SessionRepositoryFacade
var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) Ping(ctx context.Context) error {
	var answer int
	if err := r.DB.QueryRowContext(ctx, `SELECT 42`).Scan(&answer); err != nil {
		return apperrors.NewAppError("ping", err)
	}
	return nil
}

func (r *PgxSessionRepository) CheckAccess(ctx context.Context) (*domain.AccessGrant, error) {
	query := `SELECT access_type, is_super_user FROM payment.access_check()`

	var accessType sql.NullInt64
	var isSuperUser sql.NullBool
	err := r.DB.QueryRowContext(ctx, query).Scan(&accessType, &isSuperUser)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError("access check", err)
	}

	return &domain.AccessGrant{
		AccessType:  domain.AccessType(accessType.Int64),
		IsSuperUser: isSuperUser.Bool,
	}, nil
}

func (r *PgxSessionRepository) FindCurrentUser(ctx context.Context) (*domain.User, error) {
	query := `
		SELECT user_id, short_user_name, access_type, is_super_user
		FROM payment.people
		WHERE user_login = session_user;
	`
	var p models.Person
	err := r.DB.QueryRowContext(ctx, query).Scan(&p.UserID, &p.ShortName, &p.AccessType, &p.IsSuperUser)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError("load current user", err)
	}

	user := mapping.ToDomainUser(p)
	return &user, nil
}
