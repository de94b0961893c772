package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/DVilla96/banqi-1-sub000/internal/app/handlers"
	"github.com/DVilla96/banqi-1-sub000/internal/app/middleware"
	mongodb "github.com/DVilla96/banqi-1-sub000/internal/pkg/db/mongo"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/impl/commits_in_progress"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/impl/disbursements"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/impl/ledger"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/impl/loans"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/store/impl/payments"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/utils/worker"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
	"github.com/DVilla96/banqi-1-sub000/internal/service/loan"
	"github.com/DVilla96/banqi-1-sub000/internal/service/payment"
	"github.com/DVilla96/banqi-1-sub000/internal/service/reservation"
)

// SetupRouter builds the repositories, services and handlers on top of the
// shared clients and wires the HTTP surface.
func SetupRouter(
	serviceName string,
	mongoClient *mongodb.MongoClient,
	redisStore interfaces.RedisStoreInterface,
	kafkaPublisher interfaces.KafkaPublisherInterface,
	pubsubPublisher interfaces.PubSubPublisherInterface,
	gcsClient interfaces.GcsInterface,
	asyncWorker *worker.Worker,
) *gin.Engine {
	server := gin.Default()
	server.Use(middleware.AttachTraceID())
	server.Use(middleware.NewMetricMiddleware(otel.GetMeterProvider().Meter(serviceName)))

	loanRepo := loans.NewLoansRepository(mongoClient)
	disbRepo := disbursements.NewDisbursementsRepository(mongoClient)
	payRepo := payments.NewPaymentsRepository(mongoClient)
	ledgerRepo := ledger.NewLedgerRepository(mongoClient)
	commitsRepo := commits_in_progress.NewCommitsInProgressRepository(mongoClient)

	scheduleService := loan.NewScheduleService(loanRepo, disbRepo, payRepo)
	statusService := loan.NewStatusService(loanRepo)
	reservationService := reservation.NewService(redisStore)
	commitService := payment.NewCommitService(
		loanRepo, disbRepo, payRepo, ledgerRepo, commitsRepo,
		reservationService,
		mongodb.NewSessionTransactionRunner(mongoClient),
		kafkaPublisher, pubsubPublisher, asyncWorker,
	)

	healthCheckHandler := handlers.NewHealthCheckHandler()
	loanHandler := handlers.NewLoanHandler(scheduleService, statusService)
	reservationHandler := handlers.NewReservationHandler(reservationService, loanRepo)
	commitHandler := handlers.NewCommitHandler(commitService)

	server.GET("/health", healthCheckHandler.HealthCheck)

	v1 := server.Group("/api/v1")
	{
		v1.GET("/loans/:loanId/schedule", loanHandler.GetSchedule)
		v1.GET("/loans/:loanId/payoff", loanHandler.GetPayoff)
		v1.POST("/loans/:loanId/breakdown", loanHandler.PreviewBreakdown)
		v1.POST("/loans/:loanId/status", loanHandler.UpdateStatus)

		v1.GET("/loans/:loanId/capacity", reservationHandler.Capacity)
		v1.POST("/loans/:loanId/reservations", reservationHandler.Claim)
		v1.DELETE("/loans/:loanId/reservations/:payerId", reservationHandler.Release)

		v1.POST("/commits", commitHandler.Commit)

		if gcsClient != nil {
			proofHandler := handlers.NewProofHandler(gcsClient, payRepo)
			v1.POST("/payments/:paymentId/proof", proofHandler.UploadProof)
		}
	}

	return server
}
