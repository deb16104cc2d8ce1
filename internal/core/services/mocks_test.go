package services_test

import (
	"context"
	"time"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionRepository) CheckAccess(ctx context.Context) (*domain.AccessGrant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessGrant), args.Error(1)
}

func (m *MockSessionRepository) FindCurrentUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock PaymentRequestRepository ---
type MockPaymentRequestRepository struct {
	mock.Mock
}

func (m *MockPaymentRequestRepository) FindRequests(ctx context.Context, user domain.User, filter domain.ListingFilter) ([]domain.PaymentRequest, error) {
	args := m.Called(ctx, user, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRequest), args.Error(1)
}

func (m *MockPaymentRequestRepository) FindRequestStatus(ctx context.Context, requestID int64) (domain.RequestStatus, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(domain.RequestStatus), args.Error(1)
}

func (m *MockPaymentRequestRepository) CreateRequest(ctx context.Context, userID int64, req domain.NewRequest) (domain.CreateResult, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.CreateResult), args.Error(1)
}

// --- Mock ApprovalRepository ---
type MockApprovalRepository struct {
	mock.Mock
}

func (m *MockApprovalRepository) FindApprovals(ctx context.Context, requestID int64) ([]domain.Approval, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Approval), args.Error(1)
}

func (m *MockApprovalRepository) FindFirstStageApprovers(ctx context.Context) ([]domain.ApprovalCandidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalCandidate), args.Error(1)
}

func (m *MockApprovalRepository) ApproveRequest(ctx context.Context, userID, requestID int64, approved bool) error {
	args := m.Called(ctx, userID, requestID, approved)
	return args.Error(0)
}

func (m *MockApprovalRepository) DiscardRequest(ctx context.Context, requestID int64) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

// --- Mock LimitRepository ---
type MockLimitRepository struct {
	mock.Mock
}

func (m *MockLimitRepository) FindRemainingLimit(ctx context.Context, userID int64, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLimitRepository) FindLimits(ctx context.Context) ([]domain.MonthlyLimit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyLimit), args.Error(1)
}

func (m *MockLimitRepository) UpdateLimits(ctx context.Context, limits []domain.MonthlyLimit) error {
	args := m.Called(ctx, limits)
	return args.Error(0)
}

// --- Mock ReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) FindCategories(ctx context.Context, user domain.User) ([]domain.Category, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockReferenceRepository) FindMVZ(ctx context.Context, user domain.User) ([]domain.MVZ, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MVZ), args.Error(1)
}

func (m *MockReferenceRepository) FindAllowedInitiators(ctx context.Context, user domain.User) ([]domain.Initiator, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Initiator), args.Error(1)
}
