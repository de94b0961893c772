package models

import (
	"fmt"
	"time"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
)

// Reservation is a TTL'd advisory claim by one payer against the uncommitted
// capacity of one receiving loan. It lives only in Redis; the commit
// transaction re-validates capacity on its own.
type Reservation struct {
	LoanID    string    `json:"loanId"`
	PayerID   string    `json:"payerId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (r *Reservation) IsExpired(asOf time.Time) bool {
	return !asOf.Before(r.ExpiresAt)
}

// ReservationKeyBuilder builds the per-(loan, payer) Redis key.
func ReservationKeyBuilder(loanID, payerID string) string {
	return fmt.Sprintf("%s:%s:%s", consts.ReservationKeyPrefix, loanID, payerID)
}

// ReservationScanPattern matches every payer's reservation on one loan.
func ReservationScanPattern(loanID string) string {
	return fmt.Sprintf("%s:%s:*", consts.ReservationKeyPrefix, loanID)
}
