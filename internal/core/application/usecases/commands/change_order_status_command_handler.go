package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles administrative status transitions,
// including force-cancellation with its stock compensation.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for administrative
// status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "changeOrderStatus"),
	}
}

// Handle applies the transition. Setting the current status again is a no-op.
// Moving to cancelled releases every line's stock; moving to delivered stamps
// the delivery time and marks collect-on-delivery orders as paid. Transitions
// out of delivered or cancelled fail with an IllegalTransitionError.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	now := time.Now().UTC()
	release, err := aggregate.ChangeStatus(cmd.Target(), now)
	if err != nil {
		return err
	}
	if aggregate.Status() == previous {
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if release {
		inventory := uow.InventoryRepository()
		for _, line := range aggregate.Lines() {
			if err = inventory.Release(ctx, line.ProductID(), line.Quantity()); err != nil {
				return err
			}
		}
	}

	eventType := ports.OrderEventStatusChanged
	if aggregate.Status() == order.Cancelled {
		eventType = ports.OrderEventCancelled
	}
	event, err := newOrderEvent(eventType, aggregate, previous, now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"orderNumber", aggregate.Number(),
		"from", previous.String(),
		"to", aggregate.Status().String(),
	)
	return nil
}
