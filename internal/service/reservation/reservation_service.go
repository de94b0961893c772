package reservation

import (
	"context"
	"log/slog"
	"time"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/models"
	storeModels "github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
	"github.com/DVilla96/banqi-1-sub000/internal/service/finance"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

// Service manages TTL'd advisory claims against the uncommitted capacity of
// receiving loans. Claims lower the odds of a failed commit after the payer
// has already uploaded proof documents; they are not locks, and the commit
// transaction re-validates capacity on its own.
type Service struct {
	store interfaces.RedisStoreInterface
}

func NewService(store interfaces.RedisStoreInterface) *Service {
	return &Service{store: store}
}

// AvailableCapacity is the loan's uncommitted principal minus every other
// payer's unexpired reservation. Entries that lapsed but whose Redis key is
// still alive are swept here, by whichever reader sees them first.
func (s *Service) AvailableCapacity(ctx context.Context, loan *storeModels.Loans, excludePayerID string, asOf time.Time) (float64, error) {
	entries, err := s.store.ListReservations(ctx, loan.LoanID.Hex())
	if err != nil {
		return 0, err
	}

	reserved := 0.0
	for _, entry := range entries {
		if entry.IsExpired(asOf) {
			if err := s.store.DeleteReservation(ctx, entry.LoanID, entry.PayerID); err != nil {
				logger.CtxWarn(ctx, log_messages.ErrorSweepingReservation,
					slog.String("loan_id", entry.LoanID), slog.String("payer_id", entry.PayerID))
			}
			continue
		}
		if entry.PayerID == excludePayerID {
			continue
		}
		reserved += entry.Amount
	}

	available := loan.Amount*(1-loan.CommittedPercentage/100) - reserved
	return finance.RoundCents(available), nil
}

// Claim writes a reservation for the payer when the loan still has room for
// the amount. An existing claim by the same payer is replaced, not stacked.
func (s *Service) Claim(ctx context.Context, loan *storeModels.Loans, payerID string, amount float64, asOf time.Time) (*storeModels.Reservation, error) {
	if amount <= 0 {
		return nil, models.CustomError{Code: consts.ErrCodeInvalidRequest, Message: "reservation amount must be positive"}
	}

	available, err := s.AvailableCapacity(ctx, loan, payerID, asOf)
	if err != nil {
		return nil, err
	}

	if amount > available+consts.CapacityTolerance {
		logger.CtxInfo(ctx, "Rejected reservation: insufficient capacity",
			slog.String("loan_id", loan.LoanID.Hex()),
			slog.String("payer_id", payerID),
			slog.Float64("requested", amount),
			slog.Float64("available", available))
		return nil, models.CustomError{
			Code:    consts.ErrCodeInsufficientCapacity,
			Message: "requested amount exceeds the loan's remaining capacity",
		}
	}

	entry := storeModels.Reservation{
		LoanID:    loan.LoanID.Hex(),
		PayerID:   payerID,
		Amount:    amount,
		CreatedAt: asOf,
		ExpiresAt: asOf.Add(consts.ReservationTTL),
	}

	if err := s.store.SaveReservation(ctx, entry, consts.ReservationTTL); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "Reservation claimed",
		slog.String("loan_id", entry.LoanID),
		slog.String("payer_id", payerID),
		slog.Float64("amount", amount))
	return &entry, nil
}

// Release drops the payer's claim. Releasing never touches committed ledger
// state.
func (s *Service) Release(ctx context.Context, loanID, payerID string) error {
	if err := s.store.DeleteReservation(ctx, loanID, payerID); err != nil {
		logger.CtxError(ctx, log_messages.ErrorReleasingReservation, err,
			slog.String("loan_id", loanID), slog.String("payer_id", payerID))
		return err
	}
	return nil
}
