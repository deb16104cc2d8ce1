package session

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listColumns = []string{
	"id", "user_id", "short_user_name", "mvz_sap", "mvz_name", "service_name",
	"category_id", "category_name", "contragent", "csp", "date_planed", "sum_no_tax", "tax", "description",
	"status_id", "value_name", "date_created", "approver_id", "approver_name",
}

func superUserRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "short_user_name", "access_type", "is_super_user"}).
		AddRow(int64(1), "Admin A.", int64(0), true)
}

func TestSession_RecoversAfterConnectionLoss(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)

	// Holding a second connection keeps the mock driver accepting new ones
	// once the session's connection is dropped.
	spare, err := db.Conn(ctx)
	require.NoError(t, err)
	defer spare.Close()

	mock.ExpectQuery(`payment\.access_check\(\)`).WillReturnRows(accessRows(0, true))
	mock.ExpectQuery(`WHERE user_login = session_user`).WillReturnRows(superUserRows())
	s, err := Open(ctx, db, Options{})
	require.NoError(t, err)
	defer s.Close()

	mock.ExpectQuery(`FROM payment\.payments_list pl`).WillReturnError(driver.ErrBadConn)

	lost := &faultguard.Flag{}
	got, err := s.Services().Request.ListRequests(faultguard.WithObserver(ctx, lost), s.User(), domain.ListingFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, lost.Raised())

	planned := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM payment\.payments_list pl`).WillReturnRows(sqlmock.NewRows(listColumns).
		AddRow(int64(1042), int64(5), "Ivanenko I.", "M100", "Retail", "Kyiv",
			int64(3), "Services", "ACME", nil, planned, "1000.00", "20", "Rent",
			int64(1), "Pending", planned, int64(12), "Petrenko P."))

	again := &faultguard.Flag{}
	got, err = s.Services().Request.ListRequests(faultguard.WithObserver(ctx, again), s.User(), domain.ListingFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1042), got[0].ID)
	assert.False(t, again.Raised())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_StaysUsableWhileStoreIsDown(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)

	mock.ExpectQuery(`payment\.access_check\(\)`).WillReturnRows(accessRows(0, true))
	mock.ExpectQuery(`WHERE user_login = session_user`).WillReturnRows(superUserRows())
	s, err := Open(ctx, db, Options{})
	require.NoError(t, err)
	defer s.Close()

	mock.ExpectQuery(`FROM payment\.payments_list pl`).WillReturnError(driver.ErrBadConn)
	_, err = s.Services().Request.ListRequests(ctx, s.User(), domain.ListingFilter{})
	require.NoError(t, err)

	// No connection can be acquired now, so the call degrades to another
	// absorbed network fault instead of an error.
	lost := &faultguard.Flag{}
	got, err := s.Services().Request.ListRequests(faultguard.WithObserver(ctx, lost), s.User(), domain.ListingFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, lost.Raised())
}

func TestObservers_SkipNil(t *testing.T) {
	flag := &faultguard.Flag{}
	faultguard.Observers{nil, flag}.NetworkUnavailable(context.Background(), "op", nil)
	assert.True(t, flag.Raised())
}
