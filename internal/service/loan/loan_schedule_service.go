package loan

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	storeModels "github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
	"github.com/DVilla96/banqi-1-sub000/internal/service/finance"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

// ScheduleService loads a loan's records and feeds them through the pure
// computation engine. All I/O happens here; the engine itself never touches
// the database or the clock.
type ScheduleService struct {
	loanRepo interfaces.LoanRepositoryInterface
	disbRepo interfaces.DisbursementRepositoryInterface
	payRepo  interfaces.PaymentRepositoryInterface
}

func NewScheduleService(
	loanRepo interfaces.LoanRepositoryInterface,
	disbRepo interfaces.DisbursementRepositoryInterface,
	payRepo interfaces.PaymentRepositoryInterface,
) *ScheduleService {
	return &ScheduleService{loanRepo: loanRepo, disbRepo: disbRepo, payRepo: payRepo}
}

type loanRecords struct {
	loan          *storeModels.Loans
	disbursements []finance.Disbursement
	payments      []finance.Payment
}

func (s *ScheduleService) load(ctx context.Context, loanID primitive.ObjectID) (*loanRecords, error) {
	loan, err := s.loanRepo.GetLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	disbursements, err := s.disbRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	payments, err := s.payRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	return &loanRecords{
		loan:          loan,
		disbursements: storeModels.ConfirmedToFinance(disbursements),
		payments:      storeModels.PaymentsToFinance(payments),
	}, nil
}

// GetSchedule regenerates the amortization schedule as of the given date.
// A (nil, nil) return means the loan is not ready to be scheduled.
func (s *ScheduleService) GetSchedule(ctx context.Context, loanID primitive.ObjectID, asOf time.Time) (*finance.Schedule, error) {
	records, err := s.load(ctx, loanID)
	if err != nil {
		return nil, err
	}

	sched := finance.GenerateSchedule(records.loan.Terms(), records.disbursements, records.payments, asOf, records.loan.IsProjection())
	if sched == nil {
		logger.CtxDebug(ctx, "Loan not ready for scheduling", slog.String("loan_id", loanID.Hex()))
	}
	return sched, nil
}

// GetPayoff values the cost of closing the loan at the given date.
func (s *ScheduleService) GetPayoff(ctx context.Context, loanID primitive.ObjectID, asOf time.Time) (float64, error) {
	records, err := s.load(ctx, loanID)
	if err != nil {
		return 0, err
	}
	return finance.PayoffBalance(records.loan.Terms(), records.disbursements, records.payments, asOf), nil
}

// PreviewBreakdown allocates a candidate payment amount without persisting
// anything; the same computation runs again inside the commit transaction.
func (s *ScheduleService) PreviewBreakdown(ctx context.Context, loanID primitive.ObjectID, amount float64, asOf time.Time) (*finance.PaymentBreakdown, error) {
	records, err := s.load(ctx, loanID)
	if err != nil {
		return nil, err
	}

	sched := finance.GenerateSchedule(records.loan.Terms(), records.disbursements, records.payments, asOf, records.loan.IsProjection())
	if sched == nil {
		return nil, nil
	}

	return finance.AllocatePayment(amount, sched, records.loan.Terms(), records.disbursements, asOf), nil
}

// DistributeForPayment computes the per-banker split of a breakdown using
// the loan's original disbursement list.
func (s *ScheduleService) DistributeForPayment(ctx context.Context, loanID primitive.ObjectID, breakdown finance.PaymentBreakdown, effective time.Time) ([]finance.BankerShare, error) {
	records, err := s.load(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return finance.DistributeBreakdown(breakdown, records.disbursements, records.loan.Terms(), effective), nil
}
