package payment

import (
	"context"
	"time"

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

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) CreateEntries(ctx context.Context, entries []storeModels.LedgerEntries) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type MockCommitsRepository struct {
	mock.Mock
}

func (m *MockCommitsRepository) CheckEntryExists(ctx context.Context, payerID string) (bool, error) {
	args := m.Called(ctx, payerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommitsRepository) CreateEntry(ctx context.Context, payerID string) error {
	args := m.Called(ctx, payerID)
	return args.Error(0)
}

func (m *MockCommitsRepository) DeleteEntry(ctx context.Context, payerID string) error {
	args := m.Called(ctx, payerID)
	return args.Error(0)
}

type MockRedisStore struct {
	mock.Mock
}

func (m *MockRedisStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockRedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRedisStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRedisStore) SaveReservation(ctx context.Context, entry storeModels.Reservation, ttl time.Duration) error {
	args := m.Called(ctx, entry, ttl)
	return args.Error(0)
}

func (m *MockRedisStore) GetReservation(ctx context.Context, loanID, payerID string) (*storeModels.Reservation, error) {
	args := m.Called(ctx, loanID, payerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storeModels.Reservation), args.Error(1)
}

func (m *MockRedisStore) DeleteReservation(ctx context.Context, loanID, payerID string) error {
	args := m.Called(ctx, loanID, payerID)
	return args.Error(0)
}

func (m *MockRedisStore) ListReservations(ctx context.Context, loanID string) ([]storeModels.Reservation, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storeModels.Reservation), args.Error(1)
}

// passthroughTxn runs the transaction body directly, no session involved.
type passthroughTxn struct{}

func (passthroughTxn) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
