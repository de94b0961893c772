package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/service/finance"
)

type Loans struct {
	LoanID               primitive.ObjectID `bson:"_id,omitempty"`
	BorrowerID           string             `bson:"borrowerId"`
	Amount               float64            `bson:"amount"`
	MonthlyInterestRate  float64            `bson:"monthlyInterestRate"`
	TermMonths           int32              `bson:"termMonths"`
	MonthlyTechnologyFee float64            `bson:"monthlyTechnologyFee"`
	PaymentDay           int32              `bson:"paymentDay"`
	Status               consts.LoanStatus  `bson:"status"`
	FundedPercentage     float64            `bson:"fundedPercentage"`
	CommittedPercentage  float64            `bson:"committedPercentage"`
	CreatedAt            time.Time          `bson:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt,omitempty"`
}

// Terms maps the stored document onto the computation engine's input shape.
func (l *Loans) Terms() finance.LoanTerms {
	return finance.LoanTerms{
		Principal:      l.Amount,
		MonthlyRate:    l.MonthlyInterestRate,
		TermMonths:     int(l.TermMonths),
		MonthlyTechFee: l.MonthlyTechnologyFee,
		PaymentDay:     int(l.PaymentDay),
	}
}

// IsProjection reports whether the loan has not yet entered real repayment.
func (l *Loans) IsProjection() bool {
	switch l.Status {
	case consts.LoanRepaymentActive, consts.LoanOverdue, consts.LoanCompleted:
		return false
	}
	return true
}

type Disbursements struct {
	DisbursementID primitive.ObjectID        `bson:"_id,omitempty"`
	LoanID         primitive.ObjectID        `bson:"loanId"`
	LenderID       string                    `bson:"lenderId"`
	Amount         float64                   `bson:"amount"`
	Status         consts.DisbursementStatus `bson:"status"`
	CreatedAt      time.Time                 `bson:"createdAt"`
	ConfirmedAt    time.Time                 `bson:"confirmedAt,omitempty"`
}

func (d *Disbursements) ToFinance() finance.Disbursement {
	date := d.ConfirmedAt
	if date.IsZero() {
		date = d.CreatedAt
	}
	return finance.Disbursement{
		LenderID: d.LenderID,
		Amount:   d.Amount,
		Date:     date,
	}
}

// ConfirmedToFinance keeps only confirmed disbursements; the engine never
// sees pending, disputed or rejected contributions.
func ConfirmedToFinance(docs []Disbursements) []finance.Disbursement {
	out := make([]finance.Disbursement, 0, len(docs))
	for i := range docs {
		if docs[i].Status == consts.DisbursementConfirmed {
			out = append(out, docs[i].ToFinance())
		}
	}
	return out
}

type Payments struct {
	PaymentID     primitive.ObjectID `bson:"_id,omitempty"`
	LoanID        primitive.ObjectID `bson:"loanId"`
	PayerID       string             `bson:"payerId"`
	Date          time.Time          `bson:"date"`
	Amount        float64            `bson:"amount"`
	Capital       float64            `bson:"capital"`
	Interest      float64            `bson:"interest"`
	TechnologyFee float64            `bson:"technologyFee"`
	LateFee       float64            `bson:"lateFee"`
	Period        int32              `bson:"period"`
	ProofURL      string             `bson:"proofUrl,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

func (p *Payments) ToFinance() finance.Payment {
	return finance.Payment{
		Date:          p.Date,
		Amount:        p.Amount,
		Principal:     p.Capital,
		Interest:      p.Interest,
		TechnologyFee: p.TechnologyFee,
		LateFee:       p.LateFee,
	}
}

func PaymentsToFinance(docs []Payments) []finance.Payment {
	out := make([]finance.Payment, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].ToFinance())
	}
	return out
}

// LedgerEntries is one banker's persisted cut of one payment. Written only
// inside the commit transaction, never updated afterwards.
type LedgerEntries struct {
	EntryID          primitive.ObjectID `bson:"_id,omitempty"`
	PaymentID        primitive.ObjectID `bson:"paymentId"`
	LoanID           primitive.ObjectID `bson:"loanId"`
	LenderID         string             `bson:"lenderId"`
	Weight           float64            `bson:"weight"`
	Capital          float64            `bson:"capital"`
	Interest         float64            `bson:"interest"`
	Commission       float64            `bson:"commission"`
	TechnologyFee    float64            `bson:"technologyFee"`
	LateFee          float64            `bson:"lateFee"`
	AmountToReinvest float64            `bson:"amountToReinvest"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

// CommitsInProgress guards against the same payer double-submitting a commit
// while one is in flight. Expired by a TTL index on createdAt.
type CommitsInProgress struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PayerID   string             `bson:"payerId"`
	CreatedAt time.Time          `bson:"createdAt"`
}
