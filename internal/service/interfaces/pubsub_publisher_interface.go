package interfaces

import "context"

type PubSubPublisherInterface interface {
	PublishMessage(ctx context.Context, message any) (string, error)
}
