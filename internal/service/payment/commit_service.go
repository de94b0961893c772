package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	mongodb "github.com/DVilla96/banqi-1-sub000/internal/pkg/db/mongo"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/models"
	storeModels "github.com/DVilla96/banqi-1-sub000/internal/pkg/store/models"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/utils/worker"
	"github.com/DVilla96/banqi-1-sub000/internal/service/finance"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
	"github.com/DVilla96/banqi-1-sub000/internal/service/loan"
	"github.com/DVilla96/banqi-1-sub000/internal/service/reservation"
)

// CommitService executes the repayment commit: one borrower payment on the
// source loan, split by the waterfall, distributed to bankers, and the
// payer's reinvestment plan written as pending disbursements on the
// receiving loans. Everything that touches Mongo runs in a single
// transaction with all reads performed before any write, so a capacity
// conflict discovered mid-flight aborts the whole commit.
type CommitService struct {
	loanRepo     interfaces.LoanRepositoryInterface
	disbRepo     interfaces.DisbursementRepositoryInterface
	payRepo      interfaces.PaymentRepositoryInterface
	ledgerRepo   interfaces.LedgerRepositoryInterface
	commitsRepo  interfaces.CommitsInProgressRepositoryInterface
	reservations *reservation.Service
	txn          mongodb.TransactionRunner
	kafka        interfaces.KafkaPublisherInterface
	pubsub       interfaces.PubSubPublisherInterface
	worker       *worker.Worker
	validate     *validator.Validate
}

func NewCommitService(
	loanRepo interfaces.LoanRepositoryInterface,
	disbRepo interfaces.DisbursementRepositoryInterface,
	payRepo interfaces.PaymentRepositoryInterface,
	ledgerRepo interfaces.LedgerRepositoryInterface,
	commitsRepo interfaces.CommitsInProgressRepositoryInterface,
	reservations *reservation.Service,
	txn mongodb.TransactionRunner,
	kafkaPublisher interfaces.KafkaPublisherInterface,
	pubsubPublisher interfaces.PubSubPublisherInterface,
	asyncWorker *worker.Worker,
) *CommitService {
	return &CommitService{
		loanRepo:     loanRepo,
		disbRepo:     disbRepo,
		payRepo:      payRepo,
		ledgerRepo:   ledgerRepo,
		commitsRepo:  commitsRepo,
		reservations: reservations,
		txn:          txn,
		kafka:        kafkaPublisher,
		pubsub:       pubsubPublisher,
		worker:       asyncWorker,
		validate:     validator.New(),
	}
}

// Commit runs the full repayment flow as of the given date.
func (s *CommitService) Commit(ctx context.Context, req models.CommitRequest, asOf time.Time) (*models.CommitResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, models.CustomError{Code: consts.ErrCodeInvalidRequest, Message: err.Error()}
	}

	planTotal := 0.0
	for _, alloc := range req.Plan {
		planTotal += alloc.Amount
	}
	if planTotal > req.Amount+consts.CapacityTolerance {
		return nil, models.CustomError{
			Code:    consts.ErrCodeInvalidRequest,
			Message: "reinvestment plan exceeds the payment amount",
		}
	}

	sourceLoanID, err := primitive.ObjectIDFromHex(req.SourceLoanID)
	if err != nil {
		return nil, models.CustomError{Code: consts.ErrCodeInvalidRequest, Message: "invalid source loan id"}
	}
	targetIDs := make([]primitive.ObjectID, 0, len(req.Plan))
	for _, alloc := range req.Plan {
		id, err := primitive.ObjectIDFromHex(alloc.LoanID)
		if err != nil {
			return nil, models.CustomError{Code: consts.ErrCodeInvalidRequest, Message: "invalid target loan id"}
		}
		targetIDs = append(targetIDs, id)
	}

	// One in-flight commit per payer. The guard document expires via TTL if
	// the process dies before the deferred delete runs.
	exists, err := s.commitsRepo.CheckEntryExists(ctx, req.PayerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.CustomError{
			Code:    consts.ErrCodeCommitInProgress,
			Message: "another commit by this payer is already in progress",
		}
	}
	if err := s.commitsRepo.CreateEntry(ctx, req.PayerID); err != nil {
		return nil, err
	}
	defer func() {
		if err := s.commitsRepo.DeleteEntry(ctx, req.PayerID); err != nil {
			logger.CtxWarn(ctx, "failed to clear commit guard", slog.String("payer_id", req.PayerID))
		}
	}()

	var result *models.CommitResult
	txnErr := s.txn.Run(ctx, func(sc context.Context) error {
		result, err = s.commitInTransaction(sc, req, sourceLoanID, targetIDs, asOf)
		return err
	})
	if txnErr != nil {
		logger.CtxError(ctx, log_messages.ErrorCommittingPayment, txnErr,
			slog.String("payer_id", req.PayerID),
			slog.String("source_loan_id", req.SourceLoanID))
		return nil, txnErr
	}

	// Reservations are advisory; releasing them after the transaction is
	// safe because the transaction re-validated capacity on its own.
	for _, alloc := range req.Plan {
		if err := s.reservations.Release(ctx, alloc.LoanID, req.PayerID); err != nil {
			logger.CtxWarn(ctx, log_messages.ErrorReleasingReservation,
				slog.String("loan_id", alloc.LoanID), slog.String("payer_id", req.PayerID))
		}
	}

	s.publishAsync(ctx, req, result)
	return result, nil
}

func (s *CommitService) commitInTransaction(
	ctx context.Context,
	req models.CommitRequest,
	sourceLoanID primitive.ObjectID,
	targetIDs []primitive.ObjectID,
	asOf time.Time,
) (*models.CommitResult, error) {
	// Reads. Nothing below this block may touch the database for input.
	sourceLoan, err := s.loanRepo.GetLoanByID(ctx, sourceLoanID)
	if err != nil {
		return nil, err
	}
	if sourceLoan.Status != consts.LoanRepaymentActive && sourceLoan.Status != consts.LoanOverdue {
		return nil, models.CustomError{
			Code:    consts.ErrCodeInvalidTransition,
			Message: "source loan is not accepting repayments",
		}
	}

	disbursementDocs, err := s.disbRepo.GetByLoanID(ctx, sourceLoanID)
	if err != nil {
		return nil, err
	}
	paymentDocs, err := s.payRepo.GetByLoanID(ctx, sourceLoanID)
	if err != nil {
		return nil, err
	}

	targets, err := s.loanRepo.GetLoansByIDs(ctx, targetIDs)
	if err != nil {
		return nil, err
	}
	targetsByID := make(map[string]*storeModels.Loans, len(targets))
	for i := range targets {
		targetsByID[targets[i].LoanID.Hex()] = &targets[i]
	}
	for _, alloc := range req.Plan {
		target, ok := targetsByID[alloc.LoanID]
		if !ok {
			return nil, models.CustomError{Code: consts.ErrCodeLoanNotFound, Message: "target loan not found: " + alloc.LoanID}
		}
		if target.Status != consts.LoanFundingActive {
			return nil, models.CustomError{
				Code:    consts.ErrCodeInvalidTransition,
				Message: "target loan is not open for funding: " + alloc.LoanID,
			}
		}
		capacity := target.Amount * (1 - target.CommittedPercentage/100)
		if alloc.Amount > capacity+consts.CapacityTolerance {
			return nil, models.CustomError{
				Code:    consts.ErrCodeInsufficientCapacity,
				Message: "target loan capacity exhausted: " + alloc.LoanID,
			}
		}
	}

	// Pure computation on the snapshot read above.
	terms := sourceLoan.Terms()
	disbursements := storeModels.ConfirmedToFinance(disbursementDocs)
	payments := storeModels.PaymentsToFinance(paymentDocs)

	sched := finance.GenerateSchedule(terms, disbursements, payments, asOf, sourceLoan.IsProjection())
	if sched == nil {
		return nil, models.CustomError{Code: consts.ErrCodeScheduleNotReady, Message: "source loan has no schedulable state"}
	}
	breakdown := finance.AllocatePayment(req.Amount, sched, terms, disbursements, asOf)
	if breakdown == nil {
		return nil, models.CustomError{Code: consts.ErrCodeScheduleNotReady, Message: "source loan has no unpaid period"}
	}
	shares := finance.DistributeBreakdown(*breakdown, disbursements, terms, asOf)

	// Writes.
	now := time.Now().UTC()
	paymentDoc := &storeModels.Payments{
		LoanID:        sourceLoanID,
		PayerID:       req.PayerID,
		Date:          finance.DateOnly(asOf),
		Amount:        breakdown.Total,
		Capital:       breakdown.Capital,
		Interest:      breakdown.Interest,
		TechnologyFee: breakdown.TechnologyFee,
		LateFee:       breakdown.LateFee,
		Period:        int32(breakdown.Period),
		ProofURL:      req.ProofURL,
		CreatedAt:     now,
	}
	paymentID, err := s.payRepo.Create(ctx, paymentDoc)
	if err != nil {
		return nil, err
	}

	entries := make([]storeModels.LedgerEntries, 0, len(shares))
	for _, share := range shares {
		entries = append(entries, storeModels.LedgerEntries{
			PaymentID:        paymentID,
			LoanID:           sourceLoanID,
			LenderID:         share.LenderID,
			Weight:           share.Weight,
			Capital:          share.Capital,
			Interest:         share.Interest,
			Commission:       share.Commission,
			TechnologyFee:    share.TechnologyFee,
			LateFee:          share.LateFee,
			AmountToReinvest: share.AmountToReinvest,
			CreatedAt:        now,
		})
	}
	if err := s.ledgerRepo.CreateEntries(ctx, entries); err != nil {
		return nil, err
	}

	for _, alloc := range req.Plan {
		target := targetsByID[alloc.LoanID]
		disbursement := &storeModels.Disbursements{
			LoanID:    target.LoanID,
			LenderID:  req.PayerID,
			Amount:    alloc.Amount,
			Status:    consts.DisbursementPending,
			CreatedAt: now,
		}
		if _, err := s.disbRepo.Create(ctx, disbursement); err != nil {
			return nil, err
		}

		committed := target.CommittedPercentage + alloc.Amount/target.Amount*100
		if committed > 100 {
			committed = 100
		}
		if err := s.loanRepo.UpdatePercentages(ctx, target.LoanID, target.FundedPercentage, committed); err != nil {
			return nil, err
		}
	}

	// A payment that clears the remaining balance completes the loan.
	paidOff := append(payments, finance.Payment{
		Date:          finance.DateOnly(asOf),
		Amount:        breakdown.Total,
		Principal:     breakdown.Capital,
		Interest:      breakdown.Interest,
		TechnologyFee: breakdown.TechnologyFee,
		LateFee:       breakdown.LateFee,
	})
	if finance.PayoffBalance(terms, disbursements, paidOff, asOf) <= consts.CapacityTolerance &&
		loan.CanTransition(sourceLoan.Status, consts.LoanCompleted) {
		if err := s.loanRepo.UpdateStatus(ctx, sourceLoanID, consts.LoanCompleted); err != nil {
			return nil, err
		}
	}

	result := &models.CommitResult{
		PaymentID: paymentID.Hex(),
		Capital:   breakdown.Capital,
		Interest:  breakdown.Interest,
		Fee:       breakdown.TechnologyFee,
		LateFee:   breakdown.LateFee,
		Total:     breakdown.Total,
		Period:    breakdown.Period,
		Plan:      req.Plan,
	}
	for _, share := range shares {
		result.Shares = append(result.Shares, models.CommitShare{
			LenderID:         share.LenderID,
			AmountToReinvest: share.AmountToReinvest,
		})
	}
	return result, nil
}

// publishAsync hands the audit and notification publishes to the worker so
// the HTTP response never waits on Kafka or Pub/Sub.
func (s *CommitService) publishAsync(ctx context.Context, req models.CommitRequest, result *models.CommitResult) {
	if s.worker == nil {
		return
	}
	traceID := logger.GetTraceID(ctx)
	committedAt := time.Now().UTC()

	s.worker.Submit(func() {
		bgCtx := logger.WithTraceID(context.Background(), traceID)

		if s.kafka != nil {
			event := models.RepaymentAuditEvent{
				PaymentID:    result.PaymentID,
				SourceLoanID: req.SourceLoanID,
				PayerID:      req.PayerID,
				Amount:       result.Total,
				Period:       result.Period,
				CommittedAt:  committedAt,
				TraceID:      traceID,
			}
			if err := s.kafka.Publish(bgCtx, event); err != nil {
				logger.CtxError(bgCtx, log_messages.ErrorProducingKafkaMessage, err,
					slog.String("payment_id", result.PaymentID))
			}
		}

		if s.pubsub != nil {
			message := models.PaymentCommittedMessage{
				PaymentID:    result.PaymentID,
				SourceLoanID: req.SourceLoanID,
				PayerID:      req.PayerID,
				Total:        result.Total,
				CommittedAt:  committedAt,
			}
			if _, err := s.pubsub.PublishMessage(bgCtx, message); err != nil {
				logger.CtxError(bgCtx, log_messages.ErrorInMessagePublishing, err,
					slog.String("payment_id", result.PaymentID))
			}
		}
	})
}
