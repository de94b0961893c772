package finance

import "time"

// LoanTerms carries the contractual parameters the engine needs. Everything
// else about a loan (status, borrower, documents) lives outside this package.
type LoanTerms struct {
	Principal      float64
	MonthlyRate    float64 // nominal monthly rate, e.g. 0.021 for 2.1%
	TermMonths     int
	MonthlyTechFee float64
	PaymentDay     int // day of month, 1-28
}

// Disbursement is one banker's confirmed contribution to a loan.
type Disbursement struct {
	LenderID string
	Amount   float64
	Date     time.Time
}

// Payment is one recorded borrower repayment with its stored decomposition.
type Payment struct {
	Date          time.Time
	Amount        float64
	Principal     float64
	Interest      float64
	TechnologyFee float64
	LateFee       float64
}

type RowType string

const (
	RowDisbursement   RowType = "DISBURSEMENT"
	RowPayment        RowType = "PAYMENT"
	RowCapitalization RowType = "CAPITALIZATION"
)

// ScheduleRow is one line of the generated amortization schedule. Period is
// 0 for disbursement rows and 1-based for payment rows.
type ScheduleRow struct {
	Period         int
	Date           time.Time
	Type           RowType
	CashFlow       float64
	Interest       float64
	Principal      float64
	Fee            float64
	Balance        float64
	Paid           bool
	Overdue        bool
	NextDue        bool
	ActualPayments []Payment
}

// Schedule is derived, recomputed on every query, never persisted.
type Schedule struct {
	Rows         []ScheduleRow
	Installment  float64
	IsProjection bool
}

// PaymentBreakdown is the allocation of one chosen payment amount.
type PaymentBreakdown struct {
	Capital       float64
	Interest      float64
	TechnologyFee float64
	LateFee       float64
	Total         float64
	AsOf          time.Time
	Period        int
}

// BankerShare is one banker's cut of an aggregate breakdown.
type BankerShare struct {
	LenderID         string
	Weight           float64
	Capital          float64
	Interest         float64
	Commission       float64
	TechnologyFee    float64
	LateFee          float64
	AmountToReinvest float64
}
