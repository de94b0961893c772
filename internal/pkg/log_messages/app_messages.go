package log_messages

const (
	KafkaProducerCreated        = "Kafka producer created"
	PubsubPublisherCreated      = "Pub/Sub publisher created"
	GCSClientCreated            = "GCS client created"
	ServerStarting              = "starting HTTP server"
	CleanupStarted              = "cleanup started"
	CleanupCompleted            = "cleanup completed"
	GCSClientClosedSuccessfully = "GCS client closed successfully"
)
