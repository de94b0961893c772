package finance

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
)

func monthlyDueDates(first time.Time, n int) []time.Time {
	dues := make([]time.Time, n)
	for i := range dues {
		dues[i] = AddMonths(first, i)
	}
	return dues
}

func TestSolveInstallmentClearsBalance(t *testing.T) {
	anchor := date(2024, 1, 10)
	dues := monthlyDueDates(date(2024, 2, 10), 12)
	r := DailyRate(0.021)
	f := DailyFeeRate(30000)

	installment := SolveInstallment(1000000, dues, anchor, r, f)
	require.Greater(t, installment, 0.0)

	ending := simulateWalk(1000000, dues, anchor, r, f, installment)
	assert.InDelta(t, 0.0, ending, 2*consts.SolverTolerance)
}

func TestSolveInstallmentWithinBisectionBounds(t *testing.T) {
	anchor := date(2024, 1, 10)
	dues := monthlyDueDates(date(2024, 2, 10), 12)
	r := DailyRate(0.021)

	installment := SolveInstallment(1000000, dues, anchor, r, 0)
	assert.Greater(t, installment, 1000000.0/12)
	assert.Less(t, installment, 3*1000000.0/12)
}

func TestSolveInstallmentZeroRateApproachesEqualSplit(t *testing.T) {
	anchor := date(2024, 1, 10)
	dues := monthlyDueDates(date(2024, 2, 10), 10)

	installment := SolveInstallment(1000, dues, anchor, 0, 0)
	assert.InDelta(t, 100.0, installment, 0.01)
}

func TestSolveInstallmentDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, SolveInstallment(0, monthlyDueDates(date(2024, 2, 10), 12), date(2024, 1, 10), 0.001, 0))
	assert.Equal(t, 0.0, SolveInstallment(-5, monthlyDueDates(date(2024, 2, 10), 12), date(2024, 1, 10), 0.001, 0))
	assert.Equal(t, 0.0, SolveInstallment(1000, nil, date(2024, 1, 10), 0.001, 0))
}

func TestSolveInstallmentIrregularFirstPeriod(t *testing.T) {
	// 45-day first period, monthly afterwards
	anchor := date(2024, 1, 1)
	dues := monthlyDueDates(date(2024, 2, 15), 6)
	r := DailyRate(0.021)
	f := DailyFeeRate(10000)

	installment := SolveInstallment(500000, dues, anchor, r, f)
	ending := simulateWalk(500000, dues, anchor, r, f, installment)
	assert.Less(t, math.Abs(ending), 2*consts.SolverTolerance)
}
