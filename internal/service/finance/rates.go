package finance

import "math"

// DailyRate converts a nominal monthly rate into an effective daily
// compounding rate: annualize via x12, then take the 365th root.
// (1+r)^(1/30)-1 is NOT equivalent and would shift every downstream number.
func DailyRate(monthlyRate float64) float64 {
	return math.Pow(1+monthlyRate, 12.0/365.0) - 1
}

// DailyFeeRate spreads a flat monthly fee over the year. The fee never
// compounds; it is a constant per-day accrual.
func DailyFeeRate(monthlyFee float64) float64 {
	return monthlyFee * 12.0 / 365.0
}
