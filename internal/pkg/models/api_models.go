package models

import "time"

// BreakdownRequest previews the allocation of a candidate payment amount.
type BreakdownRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	AsOf   string  `json:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// ReservationRequest claims capacity on a receiving loan.
type ReservationRequest struct {
	PayerID string  `json:"payerId" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
}

// StatusUpdateRequest moves a loan through its lifecycle.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// CommitAllocation routes part of a repayment to one receiving loan.
type CommitAllocation struct {
	LoanID string  `json:"loanId" validate:"required,len=24,hexadecimal"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CommitRequest is a multi-loan repayment commit: the borrower's payment on
// the source loan plus the plan redistributing it across receiving loans.
type CommitRequest struct {
	PayerID      string             `json:"payerId" validate:"required"`
	SourceLoanID string             `json:"sourceLoanId" validate:"required,len=24,hexadecimal"`
	Amount       float64            `json:"amount" validate:"required,gt=0"`
	AsOf         string             `json:"asOf" validate:"omitempty,datetime=2006-01-02"`
	ProofURL     string             `json:"proofUrl" validate:"omitempty,url"`
	Plan         []CommitAllocation `json:"plan" validate:"required,min=1,dive"`
}

// CommitResult reports what the commit transaction persisted.
type CommitResult struct {
	PaymentID string             `json:"paymentId"`
	Capital   float64            `json:"capital"`
	Interest  float64            `json:"interest"`
	Fee       float64            `json:"technologyFee"`
	LateFee   float64            `json:"lateFee"`
	Total     float64            `json:"total"`
	Period    int                `json:"period"`
	Shares    []CommitShare      `json:"shares"`
	Plan      []CommitAllocation `json:"plan"`
}

type CommitShare struct {
	LenderID         string  `json:"lenderId"`
	AmountToReinvest float64 `json:"amountToReinvest"`
}

// RepaymentAuditEvent is the Kafka record written after every commit.
type RepaymentAuditEvent struct {
	PaymentID    string    `json:"paymentId"`
	SourceLoanID string    `json:"sourceLoanId"`
	PayerID      string    `json:"payerId"`
	Amount       float64   `json:"amount"`
	Period       int       `json:"period"`
	CommittedAt  time.Time `json:"committedAt"`
	TraceID      string    `json:"traceId,omitempty"`
}

// PaymentCommittedMessage is published to Pub/Sub for the notification
// pipeline.
type PaymentCommittedMessage struct {
	PaymentID    string    `json:"paymentId"`
	SourceLoanID string    `json:"sourceLoanId"`
	PayerID      string    `json:"payerId"`
	Total        float64   `json:"total"`
	CommittedAt  time.Time `json:"committedAt"`
}
