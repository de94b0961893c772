package redis

import (
	"context"
	"crypto/tls"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/config"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
)

type RedisClientConstructor func(opt *redis.Options) *redis.Client

type RedisClient struct {
	Client *redis.Client
}

func ConnectToRedis(ctx context.Context, cfg config.RedisConfig, newClientFunc RedisClientConstructor) (*RedisClient, error) {
	logger.CtxInfo(ctx, "Connecting to Redis",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
		slog.Bool("enable_tls", cfg.EnableTLS),
	)

	options := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	if cfg.EnableTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	if newClientFunc == nil {
		newClientFunc = redis.NewClient
	}
	client := newClientFunc(options)

	if err := client.Ping(ctx).Err(); err != nil {
		logger.CtxError(ctx, "Redis ping failed", err)
		return nil, err
	}

	logger.CtxInfo(ctx, "Successfully connected to Redis")

	return &RedisClient{
		Client: client,
	}, nil
}

func Disconnect(client *redis.Client) error {
	return client.Close()
}
