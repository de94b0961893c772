package interfaces

import "context"

type KafkaPublisherInterface interface {
	Publish(ctx context.Context, message any) error
}
