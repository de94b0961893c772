package consts

// MongoDB collection names
const (
	LoanCollection              = "loans"
	DisbursementCollection      = "disbursements"
	PaymentCollection           = "payments"
	LedgerEntryCollection       = "ledgerEntries"
	CommitsInProgressCollection = "commitsInProgress"
)
