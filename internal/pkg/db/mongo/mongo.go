package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/config"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func ConnectToMongoDB(ctx context.Context, cfg config.MongoConfig, connector MongoConnector) (*MongoClient, error) {
	logger.CtxInfo(ctx, "Connecting to MongoDB",
		slog.String("db_name", cfg.DBName),
	)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout)

	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	if connector == nil {
		connector = &DefaultMongoConnector{}
	}

	client, err := connector.Connect(ctx, opts)
	if err != nil {
		logger.CtxError(ctx, "MongoDB connect failed", err)
		return nil, err
	}

	if err := connector.Ping(ctx, client); err != nil {
		logger.CtxError(ctx, "MongoDB ping failed", err)
		return nil, err
	}

	logger.CtxInfo(ctx, "Successfully connected to MongoDB")

	return &MongoClient{
		Client:   client,
		Database: client.Database(cfg.DBName),
	}, nil
}

func Disconnect(client *mongo.Client) error {
	return client.Disconnect(context.Background())
}
