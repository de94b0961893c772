package loan

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/models"
	storeModels "github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

// allowedTransitions is the loan lifecycle in one place. Early states can
// still be rejected or withdrawn; once funded the loan only moves forward
// (repayment-active and overdue flip back and forth until completion).
var allowedTransitions = map[consts.LoanStatus][]consts.LoanStatus{
	consts.LoanPending:         {consts.LoanPreApproved, consts.LoanRejected, consts.LoanRejectedDocs, consts.LoanWithdrawn},
	consts.LoanPreApproved:     {consts.LoanApproved, consts.LoanRejected, consts.LoanRejectedDocs, consts.LoanWithdrawn},
	consts.LoanApproved:        {consts.LoanFundingActive, consts.LoanWithdrawn},
	consts.LoanFundingActive:   {consts.LoanFunded, consts.LoanWithdrawn},
	consts.LoanFunded:          {consts.LoanRepaymentActive},
	consts.LoanRepaymentActive: {consts.LoanOverdue, consts.LoanCompleted},
	consts.LoanOverdue:         {consts.LoanRepaymentActive, consts.LoanCompleted},
}

// CanTransition reports whether the lifecycle allows moving from one status
// to another.
func CanTransition(from, to consts.LoanStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type StatusService struct {
	loanRepo interfaces.LoanRepositoryInterface
}

func NewStatusService(loanRepo interfaces.LoanRepositoryInterface) *StatusService {
	return &StatusService{loanRepo: loanRepo}
}

func (s *StatusService) Transition(ctx context.Context, loanID primitive.ObjectID, to consts.LoanStatus) error {
	loan, err := s.loanRepo.GetLoanByID(ctx, loanID)
	if err != nil {
		return err
	}

	if !CanTransition(loan.Status, to) {
		logger.CtxWarn(ctx, "Rejected loan status transition",
			slog.String("loan_id", loanID.Hex()),
			slog.String("from", string(loan.Status)),
			slog.String("to", string(to)))
		return models.CustomError{
			Code:    consts.ErrCodeInvalidTransition,
			Message: "loan cannot move from " + string(loan.Status) + " to " + string(to),
		}
	}

	return s.loanRepo.UpdateStatus(ctx, loanID, to)
}

// UpdateFunding bumps the funded/committed percentages. Committed can never
// fall below funded; both only grow outside an explicit reversal.
func (s *StatusService) UpdateFunding(ctx context.Context, loan *storeModels.Loans, fundedPct, committedPct float64) error {
	if committedPct < fundedPct {
		committedPct = fundedPct
	}
	if fundedPct < loan.FundedPercentage {
		fundedPct = loan.FundedPercentage
	}
	if committedPct < loan.CommittedPercentage {
		committedPct = loan.CommittedPercentage
	}
	return s.loanRepo.UpdatePercentages(ctx, loan.LoanID, fundedPct, committedPct)
}
