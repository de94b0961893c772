package interfaces

import (
	"context"
	"time"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
)

// RedisStoreInterface is the reservation layer's view of the fast shared
// store: raw KV plus the typed claim operations built on it.
type RedisStoreInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, pattern string) ([]string, error)

	SaveReservation(ctx context.Context, entry models.Reservation, ttl time.Duration) error
	GetReservation(ctx context.Context, loanID, payerID string) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, loanID, payerID string) error
	ListReservations(ctx context.Context, loanID string) ([]models.Reservation, error)
}
