package finance

import (
	"math"
	"time"
)

// AllocatePayment splits a chosen payment amount across interest, technology
// fee and capital for the first unpaid period of the schedule, as of the
// given date.
//
// The waterfall order is fixed: accrued interest first, then technology fee,
// then capital. Capital is never touched while either ceiling has room left.
// (Late fee is carried in the breakdown for audit parity; no accrual rule is
// defined for it, so it allocates zero.)
//
// Accruals run from the last real event (the last paid row, or the last
// disbursement when nothing has been paid) to the as-of date, under the same
// day-count conventions as the schedule itself.
//
// Returns nil when the schedule has no unpaid period left.
func AllocatePayment(amount float64, sched *Schedule, terms LoanTerms, disbursements []Disbursement, asOf time.Time) *PaymentBreakdown {
	if sched == nil || amount <= 0 {
		return nil
	}
	asOf = DateOnly(asOf)
	dailyRate := DailyRate(terms.MonthlyRate)
	dailyFee := DailyFeeRate(terms.MonthlyTechFee)

	target, anchor, balance, firstPayment := unpaidAnchor(sched, disbursements)
	if target == 0 {
		return nil
	}

	days := float64(DaysBetween(anchor, asOf))
	if days < 0 {
		days = 0
	}

	var interestAccrued float64
	if firstPayment {
		// Staggered lenders: the true accrual is the forward value of each
		// disbursement, not a single-balance compound.
		disbFlows := make([]Cashflow, 0, len(disbursements))
		pooled := 0.0
		for _, d := range disbursements {
			disbFlows = append(disbFlows, Cashflow{Amount: d.Amount, Date: d.Date})
			pooled += d.Amount
		}
		interestAccrued = ValueAt(disbFlows, asOf, dailyRate) - pooled
	} else {
		interestAccrued = balance * (math.Pow(1+dailyRate, days) - 1)
	}
	if interestAccrued < 0 {
		interestAccrued = 0
	}
	feeAccrued := dailyFee * days

	interest := RoundCents(math.Min(amount, interestAccrued))
	remainder := amount - interest
	fee := RoundCents(math.Min(remainder, feeAccrued))
	capital := RoundCents(amount - interest - fee)

	return &PaymentBreakdown{
		Capital:       capital,
		Interest:      interest,
		TechnologyFee: fee,
		LateFee:       0,
		Total:         RoundCents(amount),
		AsOf:          asOf,
		Period:        target,
	}
}

// unpaidAnchor locates the first unpaid payment row and the last real event
// preceding it. The returned balance is the capital outstanding at that
// event; firstPayment reports whether no real payment exists yet.
func unpaidAnchor(sched *Schedule, disbursements []Disbursement) (period int, anchor time.Time, balance float64, firstPayment bool) {
	firstPayment = true
	for _, row := range sched.Rows {
		if row.Period == 0 {
			anchor = row.Date
			balance = row.Balance
			continue
		}
		if row.Paid {
			firstPayment = false
			anchor = row.Date
			if len(row.ActualPayments) > 0 {
				anchor = DateOnly(row.ActualPayments[0].Date)
				for _, p := range row.ActualPayments[1:] {
					if DateOnly(p.Date).After(anchor) {
						anchor = DateOnly(p.Date)
					}
				}
			}
			balance = row.Balance
			continue
		}
		return row.Period, anchor, balance, firstPayment
	}
	return 0, anchor, balance, firstPayment
}
