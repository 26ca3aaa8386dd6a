package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated order cancellation.
// Cancellation compensates checkout: every frozen line's quantity goes back
// to available stock, in the same transaction as the status change.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for customer cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancelOrder"),
	}
}

// Handle cancels the order. An order belonging to another user reports
// ObjectNotFoundError, the same as a nonexistent one, so order identifiers
// cannot be probed. Cancelling an already-cancelled order is a no-op; the
// optimistic version check on the update ensures stock is released at most
// once even under concurrent cancellation attempts.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if !aggregate.UserID().IsEqual(cmd.UserID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	previous := aggregate.Status()
	now := time.Now().UTC()
	release, err := aggregate.Cancel(false, now)
	if err != nil {
		return err
	}
	if !release {
		// Already cancelled. Nothing to write, nothing to release.
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	inventory := uow.InventoryRepository()
	for _, line := range aggregate.Lines() {
		if err = inventory.Release(ctx, line.ProductID(), line.Quantity()); err != nil {
			return err
		}
	}

	event, err := newOrderEvent(ports.OrderEventCancelled, aggregate, previous, now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order cancelled",
		"orderNumber", aggregate.Number(),
		"userId", aggregate.UserID().String(),
	)
	return nil
}
