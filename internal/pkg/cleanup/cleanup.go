package cleanup

import (
	"context"
	"net/http"
	"time"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/db/mongo"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/db/redis"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/kafka"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

// CleanupResources tears external connections down in dependency order. Nil
// resources are skipped so partial startups shut down cleanly too.
func CleanupResources(
	ctx context.Context,
	server *http.Server,
	kafkaProducer *kafka.KafkaProducer,
	pubsubPublisher interface{ Close() error },
	gcsClient interfaces.GcsInterface,
	mongoClient *mongo.MongoClient,
	redisClient *redis.RedisClient,
) {
	logger.CtxInfo(ctx, log_messages.CleanupStarted)

	cleanupHTTPServer(server, ctx)
	cleanupKafkaResource(kafkaProducer, ctx)
	cleanupPubSubResource(pubsubPublisher, ctx)
	cleanupGCSResource(gcsClient, ctx)
	cleanupMongoResource(mongoClient, ctx)
	cleanupRedisResource(redisClient, ctx)

	logger.CtxInfo(ctx, log_messages.CleanupCompleted)
}

func cleanupHTTPServer(server *http.Server, ctx context.Context) {
	if server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.CtxError(ctx, "Failed to shutdown HTTP server", err)
	} else {
		logger.CtxInfo(ctx, "HTTP server shutdown successfully")
	}
}

func cleanupKafkaResource(kafkaProducer *kafka.KafkaProducer, ctx context.Context) {
	if kafkaProducer == nil {
		return
	}
	if err := kafkaProducer.Close(); err != nil {
		logger.CtxError(ctx, "Failed to close Kafka producer", err)
	} else {
		logger.CtxInfo(ctx, "Kafka producer closed successfully")
	}
}

func cleanupPubSubResource(resource interface{ Close() error }, ctx context.Context) {
	if resource == nil {
		return
	}
	if err := resource.Close(); err != nil {
		logger.CtxError(ctx, "Failed to close PubSub publisher", err)
	} else {
		logger.CtxInfo(ctx, "PubSub publisher closed successfully")
	}
}

func cleanupGCSResource(gcsClient interfaces.GcsInterface, ctx context.Context) {
	if gcsClient == nil {
		return
	}
	gcsClient.Close(ctx)
	logger.CtxInfo(ctx, log_messages.GCSClientClosedSuccessfully)
}

func cleanupMongoResource(mongoClient *mongo.MongoClient, ctx context.Context) {
	if mongoClient == nil || mongoClient.Client == nil {
		return
	}
	mongoCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Client.Disconnect(mongoCtx); err != nil {
		logger.CtxError(mongoCtx, "Failed to disconnect MongoDB client", err)
	} else {
		logger.CtxInfo(mongoCtx, "MongoDB client disconnected successfully")
	}
}

func cleanupRedisResource(redisClient *redis.RedisClient, ctx context.Context) {
	if redisClient == nil || redisClient.Client == nil {
		return
	}
	if err := redis.Disconnect(redisClient.Client); err != nil {
		logger.CtxError(ctx, "Failed to close Redis client", err)
	} else {
		logger.CtxInfo(ctx, "Redis client closed successfully")
	}
}
