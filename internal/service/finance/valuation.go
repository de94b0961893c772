package finance

import (
	"math"
	"time"
)

// Cashflow is an (amount, date) pair for focal-date valuation.
type Cashflow struct {
	Amount float64
	Date   time.Time
}

// ValueAt brings a set of cashflows to a common focal date under daily
// compounding: flows on or before the focal date compound forward, later
// flows discount back.
func ValueAt(flows []Cashflow, focal time.Time, dailyRate float64) float64 {
	total := 0.0
	for _, f := range flows {
		days := DaysBetween(f.Date, focal)
		if days >= 0 {
			total += f.Amount * math.Pow(1+dailyRate, float64(days))
		} else {
			total += f.Amount / math.Pow(1+dailyRate, float64(-days))
		}
	}
	return total
}

// PayoffBalance is the cost of closing the loan at the focal date: compounded
// disbursements minus compounded principal repayments minus interest already
// collected, plus the flat fee accrued since the last disbursement net of fee
// already collected. The fee is a service charge, not a financed amount, so
// it never compounds. Floored at zero.
func PayoffBalance(terms LoanTerms, disbursements []Disbursement, payments []Payment, focal time.Time) float64 {
	if len(disbursements) == 0 {
		return 0
	}

	d := DailyRate(terms.MonthlyRate)

	disbFlows := make([]Cashflow, 0, len(disbursements))
	lastDisbursed := DateOnly(disbursements[0].Date)
	for _, disb := range disbursements {
		disbFlows = append(disbFlows, Cashflow{Amount: disb.Amount, Date: disb.Date})
		if DateOnly(disb.Date).After(lastDisbursed) {
			lastDisbursed = DateOnly(disb.Date)
		}
	}

	principalFlows := make([]Cashflow, 0, len(payments))
	interestPaid := 0.0
	feePaid := 0.0
	for _, p := range payments {
		principalFlows = append(principalFlows, Cashflow{Amount: p.Principal, Date: p.Date})
		interestPaid += p.Interest
		feePaid += p.TechnologyFee
	}

	accruedFee := 0.0
	if days := DaysBetween(lastDisbursed, focal); days > 0 {
		accruedFee = DailyFeeRate(terms.MonthlyTechFee) * float64(days)
	}

	balance := ValueAt(disbFlows, focal, d) -
		ValueAt(principalFlows, focal, d) -
		interestPaid +
		accruedFee - feePaid

	if balance < 0 {
		return 0
	}
	return RoundCents(balance)
}
