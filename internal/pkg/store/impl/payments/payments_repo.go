package payments

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	mongodb "github.com/DVilla96/banqi-1-sub000/internal/pkg/db/mongo"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/repository"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

type PaymentRepository struct {
	repo interfaces.PaymentStoreInterface
}

func NewPaymentsRepository(client *mongodb.MongoClient) *PaymentRepository {
	collection := client.Database.Collection(consts.PaymentCollection)
	repo := repository.NewMongoRepository[models.Payments](collection)
	return &PaymentRepository{repo: repo}
}

func NewPaymentRepositoryWithInterface(repo interfaces.PaymentStoreInterface) *PaymentRepository {
	return &PaymentRepository{repo: repo}
}

func (pr *PaymentRepository) GetByLoanID(ctx context.Context, loanID primitive.ObjectID) ([]models.Payments, error) {
	filter := bson.M{"loanId": loanID}

	payments, err := pr.repo.Find(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, "Error fetching payments", err, slog.String("loan_id", loanID.Hex()))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched payments", slog.String("loan_id", loanID.Hex()), slog.Int("count", len(payments)))
	return payments, nil
}

func (pr *PaymentRepository) Create(ctx context.Context, payment *models.Payments) (primitive.ObjectID, error) {
	result, err := pr.repo.Create(ctx, payment)
	if err != nil {
		logger.CtxError(ctx, "Error creating payment", err, slog.String("loan_id", payment.LoanID.Hex()))
		return primitive.NilObjectID, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (pr *PaymentRepository) AttachProof(ctx context.Context, paymentID primitive.ObjectID, proofURL string) error {
	update := bson.M{"proofUrl": proofURL}
	if err := pr.repo.UpdateOne(ctx, bson.M{"_id": paymentID}, update); err != nil {
		logger.CtxError(ctx, "Error attaching payment proof", err, slog.String("payment_id", paymentID.Hex()))
		return err
	}
	return nil
}
