package consts

// PlatformLenderID is the reserved pseudo-lender that collects the
// technology fee and the interest commission carved out of every
// other banker's share.
const PlatformLenderID = "PLATFORM"

// CommissionRate is the platform's cut of each non-platform banker's
// interest share.
const CommissionRate = 0.30

// MinFirstPeriodDays pushes the first due date a month out when the last
// disbursement lands too close to the payment day. Near-zero first periods
// distort the first installment's interest split.
const MinFirstPeriodDays = 15

// SolverMaxIterations / SolverTolerance bound the installment bisection.
const (
	SolverMaxIterations = 100
	SolverTolerance     = 0.01
)

// DistributionTolerance is the acceptable rounding drift between the sum of
// per-banker shares and the aggregate breakdown total.
const DistributionTolerance = 1.0

// CapacityTolerance absorbs cent-level rounding when validating committed
// capacity at commit time.
const CapacityTolerance = 0.01
