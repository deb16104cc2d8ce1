package handlers_test

import (
	"context"
	"sync"
	"time"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portssvc "github.com/VShkaberda/Payments-contol/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeSession satisfies handlers.Session over mock services.
type fakeSession struct {
	sync.Mutex
	user     domain.User
	services *portssvc.ServiceContainer
}

func (s *fakeSession) User() domain.User {
	return s.user
}

func (s *fakeSession) Services() *portssvc.ServiceContainer {
	return s.services
}

// --- Mock RequestService ---
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) ListRequests(ctx context.Context, user domain.User, filter domain.ListingFilter) ([]domain.PaymentRequest, error) {
	args := m.Called(ctx, user, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRequest), args.Error(1)
}

func (m *MockRequestService) GetApprovals(ctx context.Context, requestID int64) ([]domain.Approval, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Approval), args.Error(1)
}

func (m *MockRequestService) GetFirstStageApprovers(ctx context.Context) ([]domain.ApprovalCandidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalCandidate), args.Error(1)
}

func (m *MockRequestService) CreateRequest(ctx context.Context, userID int64, req domain.NewRequest) (domain.CreateResult, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.CreateResult), args.Error(1)
}

// --- Mock ApprovalService ---
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) RecordDecision(ctx context.Context, approverID, requestID int64, approved bool) (bool, error) {
	args := m.Called(ctx, approverID, requestID, approved)
	return args.Bool(0), args.Error(1)
}

func (m *MockApprovalService) Discard(ctx context.Context, requestID int64) (bool, error) {
	args := m.Called(ctx, requestID)
	return args.Bool(0), args.Error(1)
}

// --- Mock LimitService ---
type MockLimitService struct {
	mock.Mock
}

func (m *MockLimitService) GetRemainingLimit(ctx context.Context, userID int64, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLimitService) GetAllLimits(ctx context.Context) ([]domain.MonthlyLimit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyLimit), args.Error(1)
}

func (m *MockLimitService) UpdateLimits(ctx context.Context, limits []domain.MonthlyLimit) (bool, error) {
	args := m.Called(ctx, limits)
	return args.Bool(0), args.Error(1)
}

// --- Mock ReferenceService ---
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) GetCategories(ctx context.Context, user domain.User) ([]domain.Category, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockReferenceService) GetMVZ(ctx context.Context, user domain.User) ([]domain.MVZ, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MVZ), args.Error(1)
}

func (m *MockReferenceService) GetAllowedInitiators(ctx context.Context, user domain.User) ([]domain.Initiator, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Initiator), args.Error(1)
}
