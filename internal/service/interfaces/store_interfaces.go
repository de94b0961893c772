package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
)

// Typed views over the generic Mongo repository, one per collection, so the
// per-collection repos can be tested against mocks.

type LoanStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.Loans, error)
	Find(ctx context.Context, filter interface{}) ([]models.Loans, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
}

type DisbursementStoreInterface interface {
	Find(ctx context.Context, filter interface{}) ([]models.Disbursements, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
}

type PaymentStoreInterface interface {
	Find(ctx context.Context, filter interface{}) ([]models.Payments, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
}

type LedgerStoreInterface interface {
	CreateMany(ctx context.Context, documents []interface{}) (*mongo.InsertManyResult, error)
}

type CommitsInProgressStoreInterface interface {
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, filter interface{}) error
}
