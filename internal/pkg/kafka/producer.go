package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/config"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
)

// ProducerInterface is the slice of the confluent producer the publisher
// needs; tests substitute a mock.
type ProducerInterface interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// KafkaProducer publishes repayment audit events to the audit topic.
type KafkaProducer struct {
	producer ProducerInterface
	topic    string
}

func NewKafkaProducer(cfg config.KafkaConfig) (*KafkaProducer, error) {
	kafkaConfig := &kafka.ConfigMap{
		"bootstrap.servers": cfg.Server,
		"security.protocol": cfg.SecurityProtocol,
		"sasl.mechanisms":   cfg.SASLMechanism,
		"sasl.username":     cfg.SASLUsername,
		"sasl.password":     cfg.SASLPassword,
		"client.id":         cfg.ClientID,
	}

	producer, err := kafka.NewProducer(kafkaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaProducer{
		producer: producer,
		topic:    cfg.AuditTopic,
	}, nil
}

// NewKafkaProducerWithInterface builds a producer around a mock.
func NewKafkaProducerWithInterface(producer ProducerInterface, topic string) *KafkaProducer {
	return &KafkaProducer{producer: producer, topic: topic}
}

// Publish marshals the message and waits for the delivery report.
func (kp *KafkaProducer) Publish(ctx context.Context, message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorMarshallingJSON, err)
		return err
	}

	deliveryChan := make(chan kafka.Event, 1)
	defer close(deliveryChan)

	err = kp.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &kp.topic, Partition: kafka.PartitionAny},
		Value:          payload,
	}, deliveryChan)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorProducingKafkaMessage, err)
		return err
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected event type")
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failed: %w", m.TopicPartition.Error)
		}
	case <-time.After(10 * time.Second):
		return fmt.Errorf("timeout waiting for Kafka delivery report")
	}

	return nil
}

// Close flushes and closes the Kafka producer.
func (kp *KafkaProducer) Close() error {
	kp.producer.Flush(5000)
	kp.producer.Close()
	return nil
}
