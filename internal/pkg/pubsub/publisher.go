package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/config"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
)

// TopicInterface is the slice of *pubsub.Topic the publisher uses.
type TopicInterface interface {
	Exists(ctx context.Context) (bool, error)
	Publish(ctx context.Context, data []byte) (string, error)
}

// ClientInterface abstracts *pubsub.Client so tests can substitute a mock.
type ClientInterface interface {
	Topic(id string) TopicInterface
	Close() error
}

type topicAdapter struct {
	topic *pubsub.Topic
}

func (t *topicAdapter) Exists(ctx context.Context) (bool, error) {
	return t.topic.Exists(ctx)
}

func (t *topicAdapter) Publish(ctx context.Context, data []byte) (string, error) {
	result := t.topic.Publish(ctx, &pubsub.Message{Data: data})
	return result.Get(ctx)
}

type clientAdapter struct {
	client *pubsub.Client
}

func (c *clientAdapter) Topic(id string) TopicInterface {
	return &topicAdapter{topic: c.client.Topic(id)}
}

func (c *clientAdapter) Close() error {
	return c.client.Close()
}

// Publisher sends payment-committed notifications to the configured topic.
type Publisher struct {
	client ClientInterface
	topic  string
}

func NewPublisher(ctx context.Context, cfg config.PubSubConfig, opts ...option.ClientOption) (*Publisher, error) {
	sdkClient, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorPubSubClientCreation, err)
		return nil, err
	}
	return NewPublisherWithInterface(&clientAdapter{client: sdkClient}, cfg.NotificationTopic), nil
}

func NewPublisherWithInterface(client ClientInterface, topic string) *Publisher {
	return &Publisher{client: client, topic: topic}
}

// PublishMessage marshals the message and publishes it, returning the
// server-assigned message ID.
func (p *Publisher) PublishMessage(ctx context.Context, message any) (string, error) {
	topic := p.client.Topic(p.topic)

	exists, err := topic.Exists(ctx)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf(log_messages.TopicDoesNotExists, p.topic)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorMarshallingJSON, err)
		return "", err
	}

	id, err := topic.Publish(ctx, payload)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
