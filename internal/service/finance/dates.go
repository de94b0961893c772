package finance

import (
	"math"
	"time"
)

// DateOnly strips the time-of-day component. All engine math is day-precise;
// two events on the same calendar day are the same instant to it.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from one date to a later one. Negative
// when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// AddMonths advances a due date by whole months keeping the payment day.
// Payment days are capped at 28 upstream, so no month-end clamping is needed.
func AddMonths(t time.Time, months int) time.Time {
	d := DateOnly(t)
	return time.Date(d.Year(), d.Month()+time.Month(months), d.Day(), 0, 0, 0, 0, time.UTC)
}

// RoundCents rounds a money amount to two decimals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
