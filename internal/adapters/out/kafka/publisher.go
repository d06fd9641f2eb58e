// Package kafka ships outbox messages to a Kafka topic. Messages are keyed by
// order id, so every event of one order lands on the same partition and
// consumers see them in publication order.
package kafka

import (
	"context"

	"ordertaking/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Publisher implements EventPublisher on top of a kafka-go writer.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish ships one outbox message.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return p.writer.WriteMessages(ctx, buildMessage(msg))
}

// Close flushes pending writes and releases the writer's resources.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func buildMessage(msg ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: msg.Payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(msg.ID.String())},
			{Key: "event_type", Value: []byte(msg.EventType)},
		},
	}
}
