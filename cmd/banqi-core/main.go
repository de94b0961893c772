package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/DVilla96/banqi-1-sub000/internal/app/router"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/cleanup"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/config"
	mongodb "github.com/DVilla96/banqi-1-sub000/internal/pkg/db/mongo"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/db/redis"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/gcs"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/kafka"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/otel"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/pubsub"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/repository"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/utils/worker"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

func main() {
	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("%s: %v", log_messages.ErrorLoadingConfig, err)
	}
	logger.SetLevel(cfg.Logging.LogLevel)

	shutdownTracing, err := otel.Setup(ctx, cfg.Otel.ServiceName, cfg.Otel.CollectorURL)
	if err != nil {
		logger.CtxError(ctx, "Error setting up OTLP", err)
	}
	if shutdownTracing != nil {
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logger.Error("Failed to shutdown tracing", err)
			}
		}()
	}

	mongoClient, err := mongodb.ConnectToMongoDB(ctx, cfg.Mongo, nil)
	if err != nil {
		log.Fatalf("%s: %v", log_messages.ErrorConnectingMongo, err)
	}
	mongodb.CreateCommitGuardTTLIfNotExists(mongoClient, cfg.Commit.GuardTTL)

	redisClient, err := redis.ConnectToRedis(ctx, cfg.Redis, nil)
	if err != nil {
		log.Fatalf("%s: %v", log_messages.ErrorConnectingRedis, err)
	}

	kafkaProducer, err := kafka.NewKafkaProducer(cfg.Kafka)
	if err != nil {
		logger.CtxError(ctx, "Failed to create Kafka producer", err)
	} else {
		logger.Info(log_messages.KafkaProducerCreated)
	}

	pubsubPublisher, err := pubsub.NewPublisher(ctx, cfg.PubSub)
	if err != nil {
		logger.CtxError(ctx, "Failed to create Pub/Sub publisher", err)
	} else {
		logger.Info(log_messages.PubsubPublisherCreated)
	}

	var gcsClient interfaces.GcsInterface
	if cfg.GCS.BucketName != "" {
		client, err := gcs.NewGCSClient(ctx, cfg.GCS)
		if err != nil {
			logger.CtxError(ctx, "Failed to create GCS client", err)
		} else {
			logger.Info(log_messages.GCSClientCreated)
			gcsClient = client
		}
	}

	asyncWorker := worker.NewWorker()
	asyncWorker.Start()
	defer asyncWorker.Stop()

	var kafkaPublisher interfaces.KafkaPublisherInterface
	if kafkaProducer != nil {
		kafkaPublisher = kafkaProducer
	}
	var notifier interfaces.PubSubPublisherInterface
	if pubsubPublisher != nil {
		notifier = pubsubPublisher
	}

	engine := router.SetupRouter(
		cfg.Otel.ServiceName,
		mongoClient,
		repository.NewRedisStoreAdapter(redisClient.Client),
		kafkaPublisher,
		notifier,
		gcsClient,
		asyncWorker,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		logger.Info(log_messages.ServerStarting, slog.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", err)
			stop()
		}
	}()

	<-ctx.Done()

	var closablePubSub interface{ Close() error }
	if pubsubPublisher != nil {
		closablePubSub = pubsubPublisher
	}
	cleanup.CleanupResources(context.Background(), server, kafkaProducer, closablePubSub, gcsClient, mongoClient, redisClient)
}
