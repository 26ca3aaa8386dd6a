package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize bounds how many events one tick moves to the broker.
const relayBatchSize = 100

// OutboxRelayJob periodically drains the transactional outbox to the message
// broker. Each tick fetches unpublished events oldest first, publishes them
// one by one and marks the acknowledged ones published. A broker failure
// stops the tick; the unmarked remainder is picked up on the next one, so
// delivery is at-least-once and in commit order per order.
type OutboxRelayJob struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOutboxRelayJob creates a relay draining the outbox to the given publisher.
func NewOutboxRelayJob(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		uowFactory: uowFactory,
		publisher:  publisher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay, running every five seconds.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if relayErr := j.relayOnce(ctx); relayErr != nil {
			j.logger.ErrorContext(ctx, "Outbox relay tick failed", "error", relayErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every five seconds)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) relayOnce(ctx context.Context) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	events, err := uow.OutboxRepository().FetchUnpublished(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	published := make([]int64, 0, len(events))
	for _, event := range events {
		if pubErr := j.publisher.Publish(ctx, event); pubErr != nil {
			j.logger.WarnContext(ctx, "Publishing stopped mid-batch, remainder retried next tick",
				"event_id", event.ID, "error", pubErr)
			break
		}
		published = append(published, event.ID)
	}

	if len(published) == 0 {
		return nil
	}
	if err = uow.OutboxRepository().MarkPublished(ctx, published); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Relayed outbox events", "count", len(published))
	return nil
}
