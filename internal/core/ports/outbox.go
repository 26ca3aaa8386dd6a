package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// Order event types appended to the outbox.
const (
	OrderEventCreated       = "order.created"
	OrderEventCancelled     = "order.cancelled"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is an outbox entry describing an order lifecycle change.
// Events are appended in the same transaction as the change they describe and
// relayed to the message broker afterwards, so downstream collaborators
// (notification, reporting) never see an event for a rolled-back change.
type OrderEvent struct {
	ID         int64
	OrderID    kernel.UUID
	Type       string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxRepository persists order events for asynchronous publishing.
type OutboxRepository interface {
	// Add appends an event within the current transaction.
	Add(ctx context.Context, event OrderEvent) error

	// FetchUnpublished returns up to limit events not yet published,
	// oldest first.
	FetchUnpublished(ctx context.Context, limit int) ([]OrderEvent, error)

	// MarkPublished records that the given events reached the broker.
	MarkPublished(ctx context.Context, ids []int64) error
}

// EventPublisher delivers order events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
