package disbursements

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

type DisbursementRepository struct {
	repo interfaces.DisbursementStoreInterface
}

func NewDisbursementsRepository(client *mongodb.MongoClient) *DisbursementRepository {
	collection := client.Database.Collection(consts.DisbursementCollection)
	repo := repository.NewMongoRepository[models.Disbursements](collection)
	return &DisbursementRepository{repo: repo}
}

func NewDisbursementRepositoryWithInterface(repo interfaces.DisbursementStoreInterface) *DisbursementRepository {
	return &DisbursementRepository{repo: repo}
}

func (dr *DisbursementRepository) GetByLoanID(ctx context.Context, loanID primitive.ObjectID) ([]models.Disbursements, error) {
	filter := bson.M{"loanId": loanID}

	disbursements, err := dr.repo.Find(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, "Error fetching disbursements", err, slog.String("loan_id", loanID.Hex()))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched disbursements", slog.String("loan_id", loanID.Hex()), slog.Int("count", len(disbursements)))
	return disbursements, nil
}

func (dr *DisbursementRepository) Create(ctx context.Context, disbursement *models.Disbursements) (primitive.ObjectID, error) {
	result, err := dr.repo.Create(ctx, disbursement)
	if err != nil {
		logger.CtxError(ctx, "Error creating disbursement", err, slog.String("loan_id", disbursement.LoanID.Hex()))
		return primitive.NilObjectID, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}
