package ledger

import (
	"context"
	"log/slog"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	mongodb "github.com/DVilla96/banqi-1-sub000/internal/pkg/db/mongo"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/repository"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

type LedgerRepository struct {
	repo interfaces.LedgerStoreInterface
}

func NewLedgerRepository(client *mongodb.MongoClient) *LedgerRepository {
	collection := client.Database.Collection(consts.LedgerEntryCollection)
	repo := repository.NewMongoRepository[models.LedgerEntries](collection)
	return &LedgerRepository{repo: repo}
}

func NewLedgerRepositoryWithInterface(repo interfaces.LedgerStoreInterface) *LedgerRepository {
	return &LedgerRepository{repo: repo}
}

func (lr *LedgerRepository) CreateEntries(ctx context.Context, entries []models.LedgerEntries) error {
	if len(entries) == 0 {
		return nil
	}

	documents := make([]interface{}, len(entries))
	for i := range entries {
		documents[i] = entries[i]
	}

	if _, err := lr.repo.CreateMany(ctx, documents); err != nil {
		logger.CtxError(ctx, "Error creating ledger entries", err, slog.Int("count", len(entries)))
		return err
	}

	logger.CtxDebug(ctx, "Created ledger entries", slog.Int("count", len(entries)))
	return nil
}
