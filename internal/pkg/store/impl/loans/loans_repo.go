package loans

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	mongodb "github.com/DVilla96/banqi-1-sub000/internal/pkg/db/mongo"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/repository"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

type LoanRepository struct {
	repo interfaces.LoanStoreInterface
}

func NewLoansRepository(client *mongodb.MongoClient) *LoanRepository {
	collection := client.Database.Collection(consts.LoanCollection)
	repo := repository.NewMongoRepository[models.Loans](collection)
	return &LoanRepository{repo: repo}
}

func NewLoanRepositoryWithInterface(repo interfaces.LoanStoreInterface) *LoanRepository {
	return &LoanRepository{repo: repo}
}

func (lr *LoanRepository) GetLoanByID(ctx context.Context, loanID primitive.ObjectID) (*models.Loans, error) {
	filter := bson.M{"_id": loanID}
	loan, err := lr.repo.FindOne(ctx, filter, options.FindOne())

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No loan found", slog.String("loan_id", loanID.Hex()))
			return nil, err
		}
		logger.CtxError(ctx, "Error finding loan", err, slog.String("loan_id", loanID.Hex()))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched loan", slog.String("loan_id", loanID.Hex()))
	return &loan, nil
}

func (lr *LoanRepository) GetLoansByIDs(ctx context.Context, loanIDs []primitive.ObjectID) ([]models.Loans, error) {
	filter := bson.M{"_id": bson.M{"$in": loanIDs}}

	loans, err := lr.repo.Find(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, "Error fetching loans by id list", err, slog.Int("count", len(loanIDs)))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched loans by id list", slog.Int("count", len(loans)))
	return loans, nil
}

func (lr *LoanRepository) UpdateStatus(ctx context.Context, loanID primitive.ObjectID, status consts.LoanStatus) error {
	update := bson.M{"status": status, "updatedAt": time.Now().UTC()}
	if err := lr.repo.UpdateOne(ctx, bson.M{"_id": loanID}, update); err != nil {
		logger.CtxError(ctx, "Error updating loan status", err,
			slog.String("loan_id", loanID.Hex()), slog.String("status", string(status)))
		return err
	}
	return nil
}

func (lr *LoanRepository) UpdatePercentages(ctx context.Context, loanID primitive.ObjectID, fundedPct, committedPct float64) error {
	update := bson.M{
		"fundedPercentage":    fundedPct,
		"committedPercentage": committedPct,
		"updatedAt":           time.Now().UTC(),
	}
	if err := lr.repo.UpdateOne(ctx, bson.M{"_id": loanID}, update); err != nil {
		logger.CtxError(ctx, "Error updating loan percentages", err, slog.String("loan_id", loanID.Hex()))
		return err
	}
	return nil
}
