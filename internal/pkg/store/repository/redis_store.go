package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	redismodel "github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
)

type RedisStoreAdapter struct {
	client *redis.Client
}

func NewRedisStoreAdapter(client *redis.Client) *RedisStoreAdapter {
	return &RedisStoreAdapter{client: client}
}

func (a *RedisStoreAdapter) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return a.client.Set(ctx, key, value, expiration).Err()
}

func (a *RedisStoreAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	return a.client.Get(ctx, key).Bytes()
}

func (a *RedisStoreAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

func (a *RedisStoreAdapter) Keys(ctx context.Context, pattern string) ([]string, error) {
	return a.client.Keys(ctx, pattern).Result()
}

func (a *RedisStoreAdapter) SaveReservation(ctx context.Context, entry redismodel.Reservation, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Second
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation: %w", err)
	}

	key := redismodel.ReservationKeyBuilder(entry.LoanID, entry.PayerID)
	return a.Set(ctx, key, data, ttl)
}

func (a *RedisStoreAdapter) GetReservation(ctx context.Context, loanID, payerID string) (*redismodel.Reservation, error) {
	data, err := a.Get(ctx, redismodel.ReservationKeyBuilder(loanID, payerID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entry redismodel.Reservation
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservation: %w", err)
	}
	return &entry, nil
}

func (a *RedisStoreAdapter) DeleteReservation(ctx context.Context, loanID, payerID string) error {
	return a.Delete(ctx, redismodel.ReservationKeyBuilder(loanID, payerID))
}

// ListReservations returns every reservation recorded against a loan. Redis
// expires keys on its own; entries whose key is still alive but whose payload
// window has lapsed are filtered by the caller.
func (a *RedisStoreAdapter) ListReservations(ctx context.Context, loanID string) ([]redismodel.Reservation, error) {
	keys, err := a.Keys(ctx, redismodel.ReservationScanPattern(loanID))
	if err != nil {
		return nil, err
	}

	var entries []redismodel.Reservation
	for _, key := range keys {
		data, err := a.Get(ctx, key)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// expired between KEYS and GET
				continue
			}
			logger.CtxError(ctx, log_messages.ErrorReadingReservation, err, slog.String("key", key))
			return nil, err
		}

		var entry redismodel.Reservation
		if err := json.Unmarshal(data, &entry); err != nil {
			logger.CtxWarn(ctx, "skipping malformed reservation entry", slog.String("key", key))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
