package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
)

type LoanRepositoryInterface interface {
	GetLoanByID(ctx context.Context, loanID primitive.ObjectID) (*models.Loans, error)
	GetLoansByIDs(ctx context.Context, loanIDs []primitive.ObjectID) ([]models.Loans, error)
	UpdateStatus(ctx context.Context, loanID primitive.ObjectID, status consts.LoanStatus) error
	UpdatePercentages(ctx context.Context, loanID primitive.ObjectID, fundedPct, committedPct float64) error
}

type DisbursementRepositoryInterface interface {
	GetByLoanID(ctx context.Context, loanID primitive.ObjectID) ([]models.Disbursements, error)
	Create(ctx context.Context, disbursement *models.Disbursements) (primitive.ObjectID, error)
}

type PaymentRepositoryInterface interface {
	GetByLoanID(ctx context.Context, loanID primitive.ObjectID) ([]models.Payments, error)
	Create(ctx context.Context, payment *models.Payments) (primitive.ObjectID, error)
	AttachProof(ctx context.Context, paymentID primitive.ObjectID, proofURL string) error
}

type LedgerRepositoryInterface interface {
	CreateEntries(ctx context.Context, entries []models.LedgerEntries) error
}

type CommitsInProgressRepositoryInterface interface {
	CheckEntryExists(ctx context.Context, payerID string) (bool, error)
	CreateEntry(ctx context.Context, payerID string) error
	DeleteEntry(ctx context.Context, payerID string) error
}
