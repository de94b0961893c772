package loan

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	storeModels "github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
)

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) GetLoanByID(ctx context.Context, loanID primitive.ObjectID) (*storeModels.Loans, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storeModels.Loans), args.Error(1)
}

func (m *MockLoanRepository) GetLoansByIDs(ctx context.Context, loanIDs []primitive.ObjectID) ([]storeModels.Loans, error) {
	args := m.Called(ctx, loanIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storeModels.Loans), args.Error(1)
}

func (m *MockLoanRepository) UpdateStatus(ctx context.Context, loanID primitive.ObjectID, status consts.LoanStatus) error {
	args := m.Called(ctx, loanID, status)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdatePercentages(ctx context.Context, loanID primitive.ObjectID, fundedPct, committedPct float64) error {
	args := m.Called(ctx, loanID, fundedPct, committedPct)
	return args.Error(0)
}

type MockDisbursementRepository struct {
	mock.Mock
}

func (m *MockDisbursementRepository) GetByLoanID(ctx context.Context, loanID primitive.ObjectID) ([]storeModels.Disbursements, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storeModels.Disbursements), args.Error(1)
}

func (m *MockDisbursementRepository) Create(ctx context.Context, disbursement *storeModels.Disbursements) (primitive.ObjectID, error) {
	args := m.Called(ctx, disbursement)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) GetByLoanID(ctx context.Context, loanID primitive.ObjectID) ([]storeModels.Payments, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storeModels.Payments), args.Error(1)
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *storeModels.Payments) (primitive.ObjectID, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockPaymentRepository) AttachProof(ctx context.Context, paymentID primitive.ObjectID, proofURL string) error {
	args := m.Called(ctx, paymentID, proofURL)
	return args.Error(0)
}
