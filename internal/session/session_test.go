package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func accessRows(accessType int64, superUser bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"access_type", "is_super_user"}).AddRow(accessType, superUser)
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "short_user_name", "access_type", "is_super_user"}).
		AddRow(int64(5), "Ivanenko I.", int64(2), false)
}

func TestOpen_Success(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT 42`).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(int64(42)))
	mock.ExpectQuery(`payment\.access_check\(\)`).WillReturnRows(accessRows(2, false))
	mock.ExpectQuery(`WHERE user_login = session_user`).WillReturnRows(userRows())

	s, err := Open(context.Background(), db, Options{SelfTest: true})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, domain.User{UserID: 5, DisplayName: "Ivanenko I.", AccessType: domain.AccessManager}, s.User())
	assert.NotNil(t, s.Services().Request)
	require.NoError(t, mock.ExpectationsWereMet())

	// The user is loaded once; later reads do not touch the store.
	_ = s.User()
	require.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestOpen_AccessDenied(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`payment\.access_check\(\)`).WillReturnRows(accessRows(0, false))

	_, err := Open(context.Background(), db, Options{})

	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, db.Stats().InUse, "connection must be released")
}

func TestOpen_EmptyGrantIsDenied(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`payment\.access_check\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"access_type", "is_super_user"}))

	_, err := Open(context.Background(), db, Options{})

	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
}

func TestOpen_LoginFailed(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`payment\.access_check\(\)`).
		WillReturnError(&pgconn.PgError{Code: "28P01", Message: "password authentication failed"})

	_, err := Open(context.Background(), db, Options{})

	assert.ErrorIs(t, err, apperrors.ErrLoginFailed)
	assert.NotErrorIs(t, err, apperrors.ErrAccessDenied)
	assert.Equal(t, 0, db.Stats().InUse)
}

func TestOpen_MissingProfileIsDenied(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`payment\.access_check\(\)`).WillReturnRows(accessRows(1, false))
	mock.ExpectQuery(`WHERE user_login = session_user`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "short_user_name", "access_type", "is_super_user"}))

	_, err := Open(context.Background(), db, Options{})

	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
}

func TestOpen_SelfTestUnreachable(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT 42`).WillReturnError(&pgconn.PgError{Code: "08006"})

	_, err := Open(context.Background(), db, Options{SelfTest: true})

	assert.ErrorIs(t, err, apperrors.ErrNetworkUnavailable)
}
