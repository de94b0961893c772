package log_messages

const (
	ErrorLoadingConfig          = "failed to load configuration"
	ErrorConnectingMongo        = "failed to connect to MongoDB"
	ErrorConnectingRedis        = "failed to connect to Redis"
	ErrorMarshallingJSON        = "failed to marshal payload to JSON"
	ErrorMarshallingMessage     = "failed to marshal message: %v"
	ErrorInMessagePublishing    = "failed to publish message: %v"
	ErrorPubSubClientCreation   = "failed to create Pub/Sub client"
	TopicDoesNotExists          = "topic %s does not exist"
	ErrorUploadingToGCSBucket   = "failed to upload payment proof to GCS bucket"
	ErrorClosingGCSWriter       = "failed to close GCS writer"
	ErrorClosingGCSClient       = "failed to close GCS client"
	UploadedToGCSBucket         = "uploaded payment proof to GCS bucket"
	ErrorProducingKafkaMessage  = "failed to produce Kafka message"
	SolverDidNotConverge        = "installment solver did not converge, using best midpoint"
	DistributionDriftExceeded   = "banker distribution drift exceeded tolerance"
	ErrorCommittingPayment      = "payment commit transaction failed"
	ErrorReleasingReservation   = "failed to release reservation"
	ErrorSweepingReservation    = "failed to sweep expired reservation"
	ErrorReadingReservation     = "failed to read reservation entry"
)
