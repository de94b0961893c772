package consts

// LoanStatus is the lifecycle state of a credit line.
type LoanStatus string

const (
	LoanPending         LoanStatus = "PENDING"
	LoanPreApproved     LoanStatus = "PRE_APPROVED"
	LoanApproved        LoanStatus = "APPROVED"
	LoanFundingActive   LoanStatus = "FUNDING_ACTIVE"
	LoanFunded          LoanStatus = "FUNDED"
	LoanRepaymentActive LoanStatus = "REPAYMENT_ACTIVE"
	LoanOverdue         LoanStatus = "REPAYMENT_OVERDUE"
	LoanCompleted       LoanStatus = "COMPLETED"
	LoanRejected        LoanStatus = "REJECTED"
	LoanRejectedDocs    LoanStatus = "REJECTED_DOCS"
	LoanWithdrawn       LoanStatus = "WITHDRAWN"
)

// DisbursementStatus is the confirmation state of one lender contribution.
type DisbursementStatus string

const (
	DisbursementPending   DisbursementStatus = "PENDING_CONFIRMATION"
	DisbursementConfirmed DisbursementStatus = "CONFIRMED"
	DisbursementDisputed  DisbursementStatus = "DISPUTED"
	DisbursementRejected  DisbursementStatus = "REJECTED_BY_ADMIN"
)
