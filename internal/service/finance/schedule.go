package finance

import (
	"math"
	"sort"
	"time"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
)

// GenerateSchedule builds the full amortization schedule for a loan from its
// terms, its confirmed disbursements, and its recorded payments, as of the
// given date. It is a pure function: same inputs, byte-identical output.
//
// Returns nil when the loan is not ready to be scheduled (missing rate, term
// or payment day, or no confirmed disbursement): "nothing to show yet", not
// an error.
func GenerateSchedule(terms LoanTerms, disbursements []Disbursement, payments []Payment, asOf time.Time, projection bool) *Schedule {
	if terms.MonthlyRate <= 0 || terms.TermMonths <= 0 ||
		terms.PaymentDay < 1 || terms.PaymentDay > 28 || len(disbursements) == 0 {
		return nil
	}

	asOf = DateOnly(asOf)
	dailyRate := DailyRate(terms.MonthlyRate)
	dailyFee := DailyFeeRate(terms.MonthlyTechFee)

	groups := groupByDate(disbursements)
	lastDisbursed := groups[len(groups)-1].date

	rows := make([]ScheduleRow, 0, len(groups)+terms.TermMonths)
	pooledPrincipal := 0.0
	for _, g := range groups {
		pooledPrincipal += g.amount
		rows = append(rows, ScheduleRow{
			Period:   0,
			Date:     g.date,
			Type:     RowDisbursement,
			CashFlow: g.amount,
			Balance:  RoundCents(pooledPrincipal),
		})
	}

	disbFlows := make([]Cashflow, 0, len(disbursements))
	for _, disb := range disbursements {
		disbFlows = append(disbFlows, Cashflow{Amount: disb.Amount, Date: disb.Date})
	}

	firstDue := firstPaymentDate(lastDisbursed, terms.PaymentDay)
	dueDates := make([]time.Time, terms.TermMonths)
	for i := range dueDates {
		dueDates[i] = AddMonths(firstDue, i)
	}

	// The solver is seeded with the pooled balance at the last disbursement
	// date; the walk below carries the capital-only balance with the true
	// staggered first-period interest. The two are algebraically the same
	// amortization.
	pooledBalance := ValueAt(disbFlows, lastDisbursed, dailyRate)
	installment := SolveInstallment(pooledBalance, dueDates, lastDisbursed, dailyRate, dailyFee)

	sortedPays := make([]Payment, len(payments))
	copy(sortedPays, payments)
	sort.SliceStable(sortedPays, func(i, j int) bool {
		return DateOnly(sortedPays[i].Date).Before(DateOnly(sortedPays[j].Date))
	})

	bal := pooledPrincipal
	accrualFrom := lastDisbursed
	nextDueMarked := false

	for i, due := range dueDates {
		periodPays := paymentsForPeriod(sortedPays, accrualStartForBucket(i, dueDates, lastDisbursed), due, i == len(dueDates)-1)

		days := float64(DaysBetween(accrualFrom, due))
		var interest float64
		if i == 0 {
			// Disbursements may have landed on different days; the first
			// period charges the true weighted time-value of each lender's
			// capital, not a single-balance accrual.
			interest = ValueAt(disbFlows, firstDue, dailyRate) - pooledPrincipal
		} else {
			interest = bal * (math.Pow(1+dailyRate, days) - 1)
		}
		fee := dailyFee * days

		row := ScheduleRow{
			Period: i + 1,
			Date:   due,
			Type:   RowPayment,
		}

		switch {
		case len(periodPays) > 0:
			var amount, principal, paidInterest, paidFee float64
			last := accrualFrom
			for _, p := range periodPays {
				amount += p.Amount
				principal += p.Principal
				paidInterest += p.Interest
				paidFee += p.TechnologyFee + p.LateFee
				if DateOnly(p.Date).After(last) {
					last = DateOnly(p.Date)
				}
			}
			bal -= principal
			if bal < 0 {
				bal = 0
			}
			row.CashFlow = RoundCents(amount)
			row.Interest = RoundCents(paidInterest)
			row.Principal = RoundCents(principal)
			row.Fee = RoundCents(paidFee)
			row.Paid = true
			row.ActualPayments = periodPays
			accrualFrom = last

			// Reality diverged from projection: every remaining period gets
			// a freshly solved installment anchored at the last real payment.
			if bal > consts.SolverTolerance && i < len(dueDates)-1 {
				installment = SolveInstallment(bal, dueDates[i+1:], accrualFrom, dailyRate, dailyFee)
			}

		case due.Before(asOf):
			// Missed period: zero flow, balance untouched. Unpaid interest is
			// never silently capitalized.
			row.Interest = RoundCents(interest)
			row.Fee = RoundCents(fee)
			row.Overdue = true
			accrualFrom = due

		default:
			principal := installment - interest - fee
			if i == len(dueDates)-1 {
				// last period clears the balance exactly
				principal = bal
			}
			bal -= principal
			row.CashFlow = RoundCents(principal + interest + fee)
			row.Interest = RoundCents(interest)
			row.Principal = RoundCents(principal)
			row.Fee = RoundCents(fee)
			if !nextDueMarked {
				row.NextDue = true
				nextDueMarked = true
			}
			accrualFrom = due
		}

		row.Balance = RoundCents(bal)
		rows = append(rows, row)
	}

	return &Schedule{
		Rows:         rows,
		Installment:  RoundCents(installment),
		IsProjection: projection,
	}
}

// firstPaymentDate picks the paymentDay-of-month on or after the last
// disbursement, pushed one month out when fewer than MinFirstPeriodDays
// would separate the two.
func firstPaymentDate(lastDisbursed time.Time, paymentDay int) time.Time {
	d := DateOnly(lastDisbursed)
	candidate := time.Date(d.Year(), d.Month(), paymentDay, 0, 0, 0, 0, time.UTC)
	if candidate.Before(d) {
		candidate = AddMonths(candidate, 1)
	}
	if DaysBetween(d, candidate) < consts.MinFirstPeriodDays {
		candidate = AddMonths(candidate, 1)
	}
	return candidate
}

type dateGroup struct {
	date   time.Time
	amount float64
}

// groupByDate pools disbursements landing on the same calendar day into a
// single cashflow, ordered chronologically.
func groupByDate(disbursements []Disbursement) []dateGroup {
	byDate := map[time.Time]float64{}
	for _, d := range disbursements {
		byDate[DateOnly(d.Date)] += d.Amount
	}
	groups := make([]dateGroup, 0, len(byDate))
	for date, amount := range byDate {
		groups = append(groups, dateGroup{date: date, amount: amount})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].date.Before(groups[j].date) })
	return groups
}

// accrualStartForBucket returns the exclusive lower bound of a period's
// payment bucket: the previous due date, or the last disbursement for the
// first period.
func accrualStartForBucket(i int, dueDates []time.Time, lastDisbursed time.Time) time.Time {
	if i == 0 {
		return lastDisbursed
	}
	return dueDates[i-1]
}

// paymentsForPeriod buckets payments with date in (after, until]; the final
// period also absorbs anything paid past the last due date.
func paymentsForPeriod(sorted []Payment, after, until time.Time, final bool) []Payment {
	var out []Payment
	for _, p := range sorted {
		d := DateOnly(p.Date)
		if d.After(DateOnly(after)) && (final || !d.After(DateOnly(until))) {
			out = append(out, p)
		}
	}
	return out
}
