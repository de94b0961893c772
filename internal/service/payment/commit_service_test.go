package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/models"
	storeModels "github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
	"github.com/DVilla96/banqi-1-sub000/internal/service/reservation"
)

type commitFixture struct {
	loanRepo    *MockLoanRepository
	disbRepo    *MockDisbursementRepository
	payRepo     *MockPaymentRepository
	ledgerRepo  *MockLedgerRepository
	commitsRepo *MockCommitsRepository
	redisStore  *MockRedisStore
	svc         *CommitService

	sourceID primitive.ObjectID
	targetID primitive.ObjectID
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newCommitFixture() *commitFixture {
	f := &commitFixture{
		loanRepo:    new(MockLoanRepository),
		disbRepo:    new(MockDisbursementRepository),
		payRepo:     new(MockPaymentRepository),
		ledgerRepo:  new(MockLedgerRepository),
		commitsRepo: new(MockCommitsRepository),
		redisStore:  new(MockRedisStore),
		sourceID:    primitive.NewObjectID(),
		targetID:    primitive.NewObjectID(),
	}
	f.svc = NewCommitService(
		f.loanRepo, f.disbRepo, f.payRepo, f.ledgerRepo, f.commitsRepo,
		reservation.NewService(f.redisStore),
		passthroughTxn{},
		nil, nil, nil,
	)
	return f
}

func (f *commitFixture) request(amount float64, planAmount float64) models.CommitRequest {
	return models.CommitRequest{
		PayerID:      "payer-1",
		SourceLoanID: f.sourceID.Hex(),
		Amount:       amount,
		Plan: []models.CommitAllocation{
			{LoanID: f.targetID.Hex(), Amount: planAmount},
		},
	}
}

func (f *commitFixture) sourceLoan() *storeModels.Loans {
	return &storeModels.Loans{
		LoanID:               f.sourceID,
		Amount:               1000000,
		MonthlyInterestRate:  0.021,
		TermMonths:           12,
		MonthlyTechnologyFee: 30000,
		PaymentDay:           10,
		Status:               consts.LoanRepaymentActive,
	}
}

func (f *commitFixture) targetLoan(committedPct float64) storeModels.Loans {
	return storeModels.Loans{
		LoanID:              f.targetID,
		Amount:              500000,
		Status:              consts.LoanFundingActive,
		FundedPercentage:    20,
		CommittedPercentage: committedPct,
	}
}

func (f *commitFixture) arrangeHappyPath(committedPct float64) {
	f.commitsRepo.On("CheckEntryExists", mock.Anything, "payer-1").Return(false, nil)
	f.commitsRepo.On("CreateEntry", mock.Anything, "payer-1").Return(nil)
	f.commitsRepo.On("DeleteEntry", mock.Anything, "payer-1").Return(nil)

	f.loanRepo.On("GetLoanByID", mock.Anything, f.sourceID).Return(f.sourceLoan(), nil)
	f.loanRepo.On("GetLoansByIDs", mock.Anything, []primitive.ObjectID{f.targetID}).
		Return([]storeModels.Loans{f.targetLoan(committedPct)}, nil)

	f.disbRepo.On("GetByLoanID", mock.Anything, f.sourceID).Return([]storeModels.Disbursements{
		{LoanID: f.sourceID, LenderID: "banker-1", Amount: 1000000, Status: consts.DisbursementConfirmed, ConfirmedAt: day(2024, 1, 10)},
	}, nil)
	f.payRepo.On("GetByLoanID", mock.Anything, f.sourceID).Return([]storeModels.Payments{}, nil)
}

func TestCommitHappyPath(t *testing.T) {
	f := newCommitFixture()
	f.arrangeHappyPath(0)

	paymentID := primitive.NewObjectID()
	f.payRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *storeModels.Payments) bool {
		return p.LoanID == f.sourceID && p.PayerID == "payer-1" && p.Period == 1 && p.Amount == 150000
	})).Return(paymentID, nil)

	f.ledgerRepo.On("CreateEntries", mock.Anything, mock.MatchedBy(func(entries []storeModels.LedgerEntries) bool {
		// one funding banker plus the platform pseudo-entry
		return len(entries) == 2 && entries[0].PaymentID == paymentID
	})).Return(nil)

	f.disbRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *storeModels.Disbursements) bool {
		return d.LoanID == f.targetID && d.LenderID == "payer-1" &&
			d.Amount == 100000 && d.Status == consts.DisbursementPending
	})).Return(primitive.NewObjectID(), nil)

	// 100k on a 500k loan bumps committed by 20 points
	f.loanRepo.On("UpdatePercentages", mock.Anything, f.targetID, 20.0, 20.0).Return(nil)

	f.redisStore.On("DeleteReservation", mock.Anything, f.targetID.Hex(), "payer-1").Return(nil)

	result, err := f.svc.Commit(context.Background(), f.request(150000, 100000), day(2024, 2, 10))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, paymentID.Hex(), result.PaymentID)
	assert.Equal(t, 1, result.Period)
	assert.Equal(t, 150000.0, result.Total)
	assert.InDelta(t, result.Total, result.Capital+result.Interest+result.Fee+result.LateFee, 0.011)
	assert.Len(t, result.Shares, 2)

	f.commitsRepo.AssertExpectations(t)
	f.payRepo.AssertExpectations(t)
	f.ledgerRepo.AssertExpectations(t)
	f.disbRepo.AssertExpectations(t)
	f.loanRepo.AssertExpectations(t)
	f.redisStore.AssertExpectations(t)
}

func TestCommitRejectsSecondInFlightCommit(t *testing.T) {
	f := newCommitFixture()
	f.commitsRepo.On("CheckEntryExists", mock.Anything, "payer-1").Return(true, nil)

	result, err := f.svc.Commit(context.Background(), f.request(150000, 100000), day(2024, 2, 10))

	assert.Nil(t, result)
	var customErr models.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, consts.ErrCodeCommitInProgress, customErr.Code)
	f.commitsRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
	f.payRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommitAbortsOnTargetCapacityShortfall(t *testing.T) {
	f := newCommitFixture()
	// target is 90% committed: only 50k left for a 100k allocation
	f.arrangeHappyPath(90)

	result, err := f.svc.Commit(context.Background(), f.request(150000, 100000), day(2024, 2, 10))

	assert.Nil(t, result)
	var customErr models.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, consts.ErrCodeInsufficientCapacity, customErr.Code)

	// capacity is validated in the read phase, before any write
	f.payRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.ledgerRepo.AssertNotCalled(t, "CreateEntries", mock.Anything, mock.Anything)
	f.disbRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	// the guard is still cleared on failure
	f.commitsRepo.AssertCalled(t, "DeleteEntry", mock.Anything, "payer-1")
}

func TestCommitRejectsSourceNotInRepayment(t *testing.T) {
	f := newCommitFixture()
	f.commitsRepo.On("CheckEntryExists", mock.Anything, "payer-1").Return(false, nil)
	f.commitsRepo.On("CreateEntry", mock.Anything, "payer-1").Return(nil)
	f.commitsRepo.On("DeleteEntry", mock.Anything, "payer-1").Return(nil)

	source := f.sourceLoan()
	source.Status = consts.LoanFundingActive
	f.loanRepo.On("GetLoanByID", mock.Anything, f.sourceID).Return(source, nil)

	result, err := f.svc.Commit(context.Background(), f.request(150000, 100000), day(2024, 2, 10))

	assert.Nil(t, result)
	var customErr models.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, consts.ErrCodeInvalidTransition, customErr.Code)
}

func TestCommitRejectsPlanLargerThanPayment(t *testing.T) {
	f := newCommitFixture()

	result, err := f.svc.Commit(context.Background(), f.request(100000, 150000), day(2024, 2, 10))

	assert.Nil(t, result)
	var customErr models.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, consts.ErrCodeInvalidRequest, customErr.Code)
	f.commitsRepo.AssertNotCalled(t, "CheckEntryExists", mock.Anything, mock.Anything)
}

func TestCommitValidatesRequestShape(t *testing.T) {
	f := newCommitFixture()

	req := f.request(150000, 100000)
	req.SourceLoanID = "not-an-object-id"

	result, err := f.svc.Commit(context.Background(), req, day(2024, 2, 10))

	assert.Nil(t, result)
	var customErr models.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, consts.ErrCodeInvalidRequest, customErr.Code)
}
