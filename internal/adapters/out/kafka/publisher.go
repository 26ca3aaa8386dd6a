// Package kafka delivers order events to the message broker. Publication is
// synchronous: the outbox relay only marks an event published after the
// broker acknowledged it, so a lost write is retried on the next relay tick
// rather than lost.
package kafka

import (
	"context"

	"storefront/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

// EventPublisher implements ports.EventPublisher over a kafka-go writer.
// Messages are keyed by order id so all events of one order land in the same
// partition and consumers observe them in commit order.
type EventPublisher struct {
	writer *kafkago.Writer
}

// NewEventPublisher creates a publisher writing to the given brokers and topic.
func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	return &EventPublisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireAll,
		},
	}
}

// Publish sends one event and waits for the broker acknowledgement.
func (p *EventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.OrderID.String()),
		Value: event.Payload,
		Time:  event.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
