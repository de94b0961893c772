package commits_in_progress

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	mongodb "github.com/DVilla96/banqi-1-sub000/internal/pkg/db/mongo"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/repository"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

type CommitsInProgressRepository struct {
	repo interfaces.CommitsInProgressStoreInterface
}

func NewCommitsInProgressRepository(client *mongodb.MongoClient) *CommitsInProgressRepository {
	collection := client.Database.Collection(consts.CommitsInProgressCollection)
	repo := repository.NewMongoRepository[models.CommitsInProgress](collection)
	return &CommitsInProgressRepository{repo: repo}
}

func NewCommitsInProgressRepositoryWithInterface(repo interfaces.CommitsInProgressStoreInterface) *CommitsInProgressRepository {
	return &CommitsInProgressRepository{repo: repo}
}

func (cr *CommitsInProgressRepository) CheckEntryExists(ctx context.Context, payerID string) (bool, error) {
	count, err := cr.repo.CountDocuments(ctx, bson.M{"payerId": payerID})
	if err != nil {
		logger.CtxError(ctx, "Error checking commit guard", err, slog.String("payer_id", payerID))
		return false, err
	}
	return count > 0, nil
}

func (cr *CommitsInProgressRepository) CreateEntry(ctx context.Context, payerID string) error {
	entry := models.CommitsInProgress{
		PayerID:   payerID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := cr.repo.Create(ctx, entry); err != nil {
		logger.CtxError(ctx, "Error creating commit guard", err, slog.String("payer_id", payerID))
		return err
	}
	return nil
}

func (cr *CommitsInProgressRepository) DeleteEntry(ctx context.Context, payerID string) error {
	if err := cr.repo.Delete(ctx, bson.M{"payerId": payerID}); err != nil {
		logger.CtxError(ctx, "Error deleting commit guard", err, slog.String("payer_id", payerID))
		return err
	}
	return nil
}
