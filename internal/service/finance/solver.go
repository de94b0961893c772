package finance

import (
	"log/slog"
	"math"
	"time"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
)

// SolveInstallment finds, by bisection, the constant total installment
// (principal+interest+fee) that amortizes balance to zero across the given
// due dates, with interest and fee accruing per elapsed days from anchor.
//
// There is no closed form here: the fee accrues on elapsed days per period
// and period lengths are irregular, the first period especially, so principal's
// share of each installment is not algebraically separable from the fee term.
//
// When the one-cent tolerance is not reached within the iteration cap, the
// best midpoint is returned anyway; a broken schedule is worse than an
// installment off by a fraction of a cent.
func SolveInstallment(balance float64, dueDates []time.Time, anchor time.Time, dailyRate, dailyFee float64) float64 {
	if len(dueDates) == 0 || balance <= 0 {
		return 0
	}

	n := float64(len(dueDates))
	lo := balance / n
	hi := 3 * balance / n
	mid := (lo + hi) / 2

	for i := 0; i < consts.SolverMaxIterations; i++ {
		mid = (lo + hi) / 2
		ending := simulateWalk(balance, dueDates, anchor, dailyRate, dailyFee, mid)

		if math.Abs(ending) < consts.SolverTolerance {
			return mid
		}
		if ending > 0 {
			// installment too small to clear the balance
			lo = mid
		} else {
			hi = mid
		}
	}

	logger.Warn(log_messages.SolverDidNotConverge,
		slog.Float64("balance", balance),
		slog.Int("periods", len(dueDates)),
		slog.Float64("installment", mid))
	return mid
}

// simulateWalk runs the amortization walk for one candidate installment and
// returns the ending balance.
func simulateWalk(balance float64, dueDates []time.Time, anchor time.Time, dailyRate, dailyFee, installment float64) float64 {
	bal := balance
	prev := anchor
	for _, due := range dueDates {
		days := float64(DaysBetween(prev, due))
		interest := bal * (math.Pow(1+dailyRate, days) - 1)
		fee := dailyFee * days
		principal := installment - interest - fee
		bal -= principal
		prev = due
	}
	return bal
}
