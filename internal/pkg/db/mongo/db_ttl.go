package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
)

// CreateCommitGuardTTLIfNotExists keeps a TTL index on the commits-in-progress
// collection so abandoned commit guards expire on their own. Recreates the
// index when the configured window changed.
func CreateCommitGuardTTLIfNotExists(client *MongoClient, ttl time.Duration) {
	if client == nil || client.Database == nil {
		logger.Info("Skipping TTL index setup: MongoDB is not connected")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := client.Database.Collection(consts.CommitsInProgressCollection)

	indexField := "createdAt"
	ttlSeconds := int32(ttl.Seconds())

	indexesCursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("Failed to list indexes", err)
		return
	}

	indexExists := false
	for indexesCursor.Next(ctx) {
		var index bson.M
		if err := indexesCursor.Decode(&index); err != nil {
			logger.Error("Error decoding index information", err)
			continue
		}

		expiryValue, hasExpireOption := index["expireAfterSeconds"]
		if !hasExpireOption {
			continue
		}

		if expiryValue.(int32) != ttlSeconds {
			if _, err := collection.Indexes().DropOne(ctx, index["name"].(string)); err != nil {
				logger.Error("could not drop TTL index", err)
			}
			logger.Info("TTL index deleted.")
		} else {
			indexExists = true
			logger.Info("TTL index already exists.")
		}
		break
	}

	if !indexExists {
		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: indexField, Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
		}

		if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
			logger.Error("Failed to create TTL index", err)
		} else {
			logger.Info("TTL index created successfully.")
		}
	}
}
