package finance

import (
	"log/slog"
	"math"
	"time"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
)

// DistributeBreakdown splits an aggregate payment breakdown among the bankers
// who funded the loan.
//
// Ownership is time-weighted: each banker's weight is the present value of
// their disbursement discounted back to the earliest disbursement date, so
// earlier capital earns a larger share.
//
// Interest splits two ways. For the first period the aggregate interest is by
// construction the sum of each banker's own accrual (capital compounded from
// their own disbursement date), so it is split by those individual accruals,
// which stays exact for staggered lenders. From period two on no per-banker time
// structure remains and the split is pro-rata by weight.
//
// The platform's reserved pseudo-banker collects a fixed commission on every
// other banker's interest plus the full technology and late fees.
//
// The shares must reconcile with the aggregate to within DistributionTolerance;
// a larger drift indicates a weight-computation bug and is logged as a
// data-integrity warning, never silently ignored.
func DistributeBreakdown(breakdown PaymentBreakdown, bankers []Disbursement, terms LoanTerms, effective time.Time) []BankerShare {
	if len(bankers) == 0 {
		return nil
	}
	effective = DateOnly(effective)
	dailyRate := DailyRate(terms.MonthlyRate)

	earliest := DateOnly(bankers[0].Date)
	for _, b := range bankers {
		if DateOnly(b.Date).Before(earliest) {
			earliest = DateOnly(b.Date)
		}
	}

	presentValues := make([]float64, len(bankers))
	totalPV := 0.0
	for i, b := range bankers {
		days := float64(DaysBetween(earliest, b.Date))
		presentValues[i] = b.Amount / math.Pow(1+dailyRate, days)
		totalPV += presentValues[i]
	}

	accruals := make([]float64, len(bankers))
	totalAccrual := 0.0
	if breakdown.Period == 1 {
		for i, b := range bankers {
			days := float64(DaysBetween(b.Date, effective))
			if days < 0 {
				days = 0
			}
			accruals[i] = b.Amount * (math.Pow(1+dailyRate, days) - 1)
			totalAccrual += accruals[i]
		}
	}

	shares := make([]BankerShare, 0, len(bankers))
	var platform *BankerShare
	totalCommission := 0.0

	for i, b := range bankers {
		weight := presentValues[i] / totalPV

		var interest float64
		if breakdown.Period == 1 && totalAccrual > 0 {
			interest = breakdown.Interest * accruals[i] / totalAccrual
		} else {
			interest = breakdown.Interest * weight
		}
		capital := breakdown.Capital * weight

		share := BankerShare{
			LenderID: b.LenderID,
			Weight:   weight,
			Capital:  RoundCents(capital),
			Interest: RoundCents(interest),
		}

		if b.LenderID != consts.PlatformLenderID {
			share.Commission = RoundCents(interest * consts.CommissionRate)
			totalCommission += share.Commission
		}
		share.AmountToReinvest = RoundCents(share.Capital + share.Interest - share.Commission)
		shares = append(shares, share)
		if b.LenderID == consts.PlatformLenderID {
			platform = &shares[len(shares)-1]
		}
	}

	if platform == nil {
		shares = append(shares, BankerShare{LenderID: consts.PlatformLenderID})
		platform = &shares[len(shares)-1]
	}
	platform.Commission = 0
	platform.TechnologyFee = breakdown.TechnologyFee
	platform.LateFee = breakdown.LateFee
	platform.AmountToReinvest = RoundCents(platform.Capital + platform.Interest +
		totalCommission + breakdown.TechnologyFee + breakdown.LateFee)

	checkConservation(shares, breakdown)
	return shares
}

func checkConservation(shares []BankerShare, breakdown PaymentBreakdown) {
	total := 0.0
	for _, s := range shares {
		total += s.AmountToReinvest
	}
	if drift := math.Abs(total - breakdown.Total); drift > consts.DistributionTolerance {
		logger.Warn(log_messages.DistributionDriftExceeded,
			slog.Float64("drift", drift),
			slog.Float64("sharesTotal", total),
			slog.Float64("aggregateTotal", breakdown.Total))
	}
}
