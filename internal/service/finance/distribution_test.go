package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
)

func shareByLender(shares []BankerShare, lenderID string) *BankerShare {
	for i := range shares {
		if shares[i].LenderID == lenderID {
			return &shares[i]
		}
	}
	return nil
}

func TestDistributeBreakdownSingleLender(t *testing.T) {
	bankers := []Disbursement{{LenderID: "A", Amount: 1000000, Date: date(2024, 1, 10)}}
	bd := PaymentBreakdown{Capital: 70000, Interest: 20000, TechnologyFee: 9863.01, Total: 99863.01, Period: 2}

	shares := DistributeBreakdown(bd, bankers, standardTerms(), date(2024, 2, 10))
	require.Len(t, shares, 2)

	a := shareByLender(shares, "A")
	require.NotNil(t, a)
	assert.InDelta(t, 1.0, a.Weight, 1e-9)
	assert.Equal(t, 70000.0, a.Capital)
	assert.Equal(t, 20000.0, a.Interest)
	assert.Equal(t, RoundCents(20000*consts.CommissionRate), a.Commission)
	assert.Equal(t, RoundCents(70000+20000-6000), a.AmountToReinvest)

	platform := shareByLender(shares, consts.PlatformLenderID)
	require.NotNil(t, platform)
	assert.Equal(t, bd.TechnologyFee, platform.TechnologyFee)
	assert.InDelta(t, 6000+9863.01, platform.AmountToReinvest, 0.011)
}

func TestDistributeBreakdownConservation(t *testing.T) {
	bankers := []Disbursement{
		{LenderID: "A", Amount: 600000, Date: date(2024, 1, 5)},
		{LenderID: "B", Amount: 250000, Date: date(2024, 1, 12)},
		{LenderID: "C", Amount: 150000, Date: date(2024, 1, 20)},
	}
	bd := PaymentBreakdown{Capital: 71234.56, Interest: 21987.65, TechnologyFee: 10000, Total: 103222.21, Period: 3}

	shares := DistributeBreakdown(bd, bankers, standardTerms(), date(2024, 4, 10))

	total := 0.0
	for _, s := range shares {
		total += s.AmountToReinvest
	}
	assert.InDelta(t, bd.Total, total, consts.DistributionTolerance)
}

func TestDistributeBreakdownWeightsFavorEarlierCapital(t *testing.T) {
	// equal amounts, different dates: the earlier lender's present value is
	// higher, so it earns the larger weight
	bankers := []Disbursement{
		{LenderID: "EARLY", Amount: 500000, Date: date(2024, 1, 5)},
		{LenderID: "LATE", Amount: 500000, Date: date(2024, 1, 25)},
	}
	bd := PaymentBreakdown{Capital: 80000, Interest: 20000, Total: 100000, Period: 2}

	shares := DistributeBreakdown(bd, bankers, standardTerms(), date(2024, 3, 10))

	early := shareByLender(shares, "EARLY")
	late := shareByLender(shares, "LATE")
	require.NotNil(t, early)
	require.NotNil(t, late)
	assert.Greater(t, early.Weight, late.Weight)
	assert.InDelta(t, 1.0, early.Weight+late.Weight, 1e-9)
	assert.Greater(t, early.Capital, late.Capital)
}

func TestDistributeBreakdownFirstPeriodUsesIndividualAccruals(t *testing.T) {
	bankers := []Disbursement{
		{LenderID: "A", Amount: 600000, Date: date(2024, 1, 5)},
		{LenderID: "B", Amount: 400000, Date: date(2024, 1, 20)},
	}
	effective := date(2024, 2, 10)
	r := DailyRate(0.021)

	accrualA := 600000 * (math.Pow(1+r, float64(DaysBetween(date(2024, 1, 5), effective))) - 1)
	accrualB := 400000 * (math.Pow(1+r, float64(DaysBetween(date(2024, 1, 20), effective))) - 1)
	totalInterest := RoundCents(accrualA + accrualB)

	bd := PaymentBreakdown{Capital: 70000, Interest: totalInterest, Total: 70000 + totalInterest, Period: 1}
	shares := DistributeBreakdown(bd, bankers, standardTerms(), effective)

	a := shareByLender(shares, "A")
	b := shareByLender(shares, "B")
	require.NotNil(t, a)
	require.NotNil(t, b)

	// when the paid interest equals the true accrual, each banker receives
	// exactly their own compounded time value
	assert.InDelta(t, accrualA, a.Interest, 0.011)
	assert.InDelta(t, accrualB, b.Interest, 0.011)
}

func TestDistributeBreakdownPlatformAsFundingBanker(t *testing.T) {
	// the platform can co-fund; its own interest share carries no commission
	bankers := []Disbursement{
		{LenderID: "A", Amount: 500000, Date: date(2024, 1, 10)},
		{LenderID: consts.PlatformLenderID, Amount: 500000, Date: date(2024, 1, 10)},
	}
	bd := PaymentBreakdown{Capital: 80000, Interest: 20000, TechnologyFee: 5000, Total: 105000, Period: 2}

	shares := DistributeBreakdown(bd, bankers, standardTerms(), date(2024, 3, 10))
	require.Len(t, shares, 2)

	platform := shareByLender(shares, consts.PlatformLenderID)
	require.NotNil(t, platform)
	assert.Equal(t, 0.0, platform.Commission)
	assert.Equal(t, 5000.0, platform.TechnologyFee)

	a := shareByLender(shares, "A")
	require.NotNil(t, a)
	assert.Greater(t, a.Commission, 0.0)

	// platform reinvests its own cut plus A's commission plus the fee
	assert.InDelta(t, platform.Capital+platform.Interest+a.Commission+5000, platform.AmountToReinvest, 0.011)
}

func TestDistributeBreakdownEmptyBankers(t *testing.T) {
	bd := PaymentBreakdown{Capital: 100, Interest: 10, Total: 110}
	assert.Nil(t, DistributeBreakdown(bd, nil, standardTerms(), date(2024, 2, 10)))
}
