// Package outboxrepo persists order events in the transactional outbox. An
// event row is inserted in the same transaction as the change it describes;
// the relay job later fetches unpublished rows, hands them to the broker and
// marks them published. Publication is therefore at-least-once and consumers
// deduplicate by event id.
package outboxrepo

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderEventDTO represents the database structure for outbox entries. The
// bigserial id doubles as the publication cursor: fetching oldest-first by id
// preserves the order in which changes committed.
type OrderEventDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Type        string    `gorm:"not null"`
	Payload     []byte    `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time `gorm:"not null"`
	PublishedAt *time.Time
}

// TableName specifies the database table name for outbox entries.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add appends an event within the current transaction.
func (r *GormOutboxRepository) Add(ctx context.Context, event ports.OrderEvent) error {
	dto := OrderEventDTO{
		OrderID:    event.OrderID.Bytes(),
		Type:       event.Type,
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchUnpublished returns up to limit events not yet published, oldest first.
func (r *GormOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OrderEvent, error) {
	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]ports.OrderEvent, 0, len(dtos))
	for _, dto := range dtos {
		orderID, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		events = append(events, ports.OrderEvent{
			ID:         dto.ID,
			OrderID:    orderID,
			Type:       dto.Type,
			Payload:    dto.Payload,
			OccurredAt: dto.OccurredAt,
		})
	}

	return events, nil
}

// MarkPublished records that the given events reached the broker.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&OrderEventDTO{}).
		Where("id IN ?", ids).
		Update("published_at", time.Now().UTC()).Error
}
