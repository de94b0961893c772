package finance

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyRateAnnualizesBeforeTakingRoot(t *testing.T) {
	daily := DailyRate(0.021)

	// compounding the daily rate over a full year must land back on the
	// annualized monthly rate
	assert.InDelta(t, math.Pow(1.021, 12), math.Pow(1+daily, 365), 1e-9)

	// the naive 30th-root convention is a different number
	naive := math.Pow(1.021, 1.0/30.0) - 1
	assert.Greater(t, math.Abs(naive-daily), 1e-7)
}

func TestDailyRateZero(t *testing.T) {
	assert.Equal(t, 0.0, DailyRate(0))
}

func TestDailyFeeRateIsLinear(t *testing.T) {
	assert.InDelta(t, 30000*12.0/365.0, DailyFeeRate(30000), 1e-9)
	assert.InDelta(t, 2*DailyFeeRate(15000), DailyFeeRate(30000), 1e-9)
}

func TestDaysBetween(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb10 := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 31, DaysBetween(jan10, feb10))
	assert.Equal(t, -31, DaysBetween(feb10, jan10))
	assert.Equal(t, 0, DaysBetween(jan10, jan10))

	// time-of-day never shifts the count
	lateJan10 := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 31, DaysBetween(lateJan10, feb10))
}

func TestAddMonthsKeepsPaymentDay(t *testing.T) {
	jan28 := time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), AddMonths(jan28, 1))
	assert.Equal(t, time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC), AddMonths(jan28, 11))
	assert.Equal(t, time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC), AddMonths(jan28, 12))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.35, RoundCents(10.346))
	assert.Equal(t, 10.34, RoundCents(10.344))
	assert.Equal(t, -2.5, RoundCents(-2.499))
}
