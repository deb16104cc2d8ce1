package services_test

import (
	"context"
	"testing"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/VShkaberda/Payments-contol/internal/core/services"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	requestRepo  *MockPaymentRequestRepository
	approvalRepo *MockApprovalRepository
	flag         *faultguard.Flag
	service      *services.ApprovalService
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.requestRepo = new(MockPaymentRequestRepository)
	suite.approvalRepo = new(MockApprovalRepository)
	suite.flag = &faultguard.Flag{}
	suite.service = services.NewApprovalService(
		services.BaseService{Guard: faultguard.New(suite.flag)},
		suite.requestRepo,
		suite.approvalRepo,
	)
}

func (suite *ApprovalServiceTestSuite) TestRecordDecision_OpenRequest() {
	ctx := context.Background()
	for _, status := range []domain.RequestStatus{domain.StatusPending, domain.StatusPartiallyApproved} {
		suite.requestRepo.On("FindRequestStatus", ctx, int64(9)).Return(status, nil).Once()
		suite.approvalRepo.On("ApproveRequest", ctx, int64(11), int64(9), true).Return(nil).Once()

		ok, err := suite.service.RecordDecision(ctx, 11, 9, true)

		suite.Require().NoError(err)
		suite.True(ok)
	}
	suite.approvalRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestRecordDecision_TerminalRequestIsNotSent() {
	ctx := context.Background()
	for _, status := range []domain.RequestStatus{domain.StatusApproved, domain.StatusDiscarded} {
		suite.requestRepo.On("FindRequestStatus", ctx, int64(9)).Return(status, nil).Once()

		ok, err := suite.service.RecordDecision(ctx, 11, 9, false)

		suite.Require().NoError(err)
		suite.False(ok)
	}
	suite.approvalRepo.AssertNotCalled(suite.T(), "ApproveRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestRecordDecision_UnknownRequest() {
	ctx := context.Background()
	suite.requestRepo.On("FindRequestStatus", ctx, int64(404)).Return(domain.RequestStatus(0), apperrors.ErrNotFound).Once()

	ok, err := suite.service.RecordDecision(ctx, 11, 404, true)

	suite.Require().NoError(err)
	suite.False(ok)
	suite.approvalRepo.AssertNotCalled(suite.T(), "ApproveRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestRecordDecision_NetworkFaultOnStatusRead() {
	ctx := context.Background()
	suite.requestRepo.On("FindRequestStatus", ctx, int64(9)).Return(domain.RequestStatus(0), networkFault).Once()

	ok, err := suite.service.RecordDecision(ctx, 11, 9, true)

	suite.Require().NoError(err)
	suite.False(ok)
	suite.True(suite.flag.Raised())
	suite.approvalRepo.AssertNotCalled(suite.T(), "ApproveRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestDiscard() {
	ctx := context.Background()
	suite.requestRepo.On("FindRequestStatus", ctx, int64(9)).Return(domain.StatusPending, nil).Once()
	suite.approvalRepo.On("DiscardRequest", ctx, int64(9)).Return(nil).Once()
	suite.requestRepo.On("FindRequestStatus", ctx, int64(9)).Return(domain.StatusDiscarded, nil).Once()

	ok, err := suite.service.Discard(ctx, 9)
	suite.Require().NoError(err)
	suite.True(ok)

	// A replayed discard is not sent again.
	ok, err = suite.service.Discard(ctx, 9)
	suite.Require().NoError(err)
	suite.False(ok)

	suite.approvalRepo.AssertNumberOfCalls(suite.T(), "DiscardRequest", 1)
}

func (suite *ApprovalServiceTestSuite) TestDiscard_NetworkFault() {
	ctx := context.Background()
	suite.requestRepo.On("FindRequestStatus", ctx, int64(9)).Return(domain.StatusPending, nil).Once()
	suite.approvalRepo.On("DiscardRequest", ctx, int64(9)).Return(networkFault).Once()

	ok, err := suite.service.Discard(ctx, 9)

	suite.Require().NoError(err)
	suite.False(ok)
	suite.True(suite.flag.Raised())
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
