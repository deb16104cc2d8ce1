package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindApprovals(t *testing.T) {
	db, mock := newMock(t)
	repo := newPgxApprovalRepository(BaseRepository{DB: db})
	decided := time.Date(2023, 3, 16, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM payment\.get_approvals\(\$1\)`).
		WithArgs(int64(1042)).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "user_id", "user_name", "is_active_approval", "is_approved", "decided_at"}).
			AddRow(int64(1042), int64(11), "Petrenko P.", false, true, decided).
			AddRow(int64(1042), int64(12), "Sydorenko S.", true, nil, nil))

	got, err := repo.FindApprovals(context.Background(), 1042)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.DecisionApproved, got[0].Decision)
	assert.Equal(t, decided, *got[0].DecidedAt)
	assert.Equal(t, domain.DecisionPending, got[1].Decision)
	assert.True(t, got[1].IsActive)
}

func TestFindFirstStageApprovers(t *testing.T) {
	db, mock := newMock(t)
	repo := newPgxApprovalRepository(BaseRepository{DB: db})

	mock.ExpectQuery(`FROM payment\.get_approvals_for_first_stage\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_name"}).AddRow(int64(11), "Petrenko P."))

	got, err := repo.FindFirstStageApprovers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ApprovalCandidate{{UserID: 11, Name: "Petrenko P."}}, got)
}

func TestApproveRequest(t *testing.T) {
	db, mock := newMock(t)
	repo := newPgxApprovalRepository(BaseRepository{DB: db})

	mock.ExpectExec(`SELECT payment\.approve_request\(\$1, \$2, \$3\)`).
		WithArgs(int64(12), int64(1042), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ApproveRequest(context.Background(), 12, 1042, false))
}

func TestDiscardRequest_NetworkFault(t *testing.T) {
	db, mock := newMock(t)
	repo := newPgxApprovalRepository(BaseRepository{DB: db})

	mock.ExpectExec(`SELECT payment\.discard_request\(\$1\)`).
		WithArgs(int64(1042)).
		WillReturnError(&pgconn.PgError{Code: "57P01"})

	err := repo.DiscardRequest(context.Background(), 1042)
	assert.ErrorIs(t, err, apperrors.ErrNetworkUnavailable)
}
