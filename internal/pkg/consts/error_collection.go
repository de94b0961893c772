package consts

// Error codes surfaced to API consumers
const (
	ErrCodeLoanNotFound         = "LOAN_NOT_FOUND"
	ErrCodeScheduleNotReady     = "SCHEDULE_NOT_READY"
	ErrCodeInsufficientCapacity = "INSUFFICIENT_CAPACITY"
	ErrCodeReservationConflict  = "RESERVATION_CONFLICT"
	ErrCodeCommitInProgress     = "COMMIT_IN_PROGRESS"
	ErrCodeInvalidTransition    = "INVALID_STATUS_TRANSITION"
	ErrCodeInvalidRequest       = "INVALID_REQUEST"
	ErrCodeInternal             = "INTERNAL_ERROR"
)
