package commands

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CheckoutCommandHandler converts a cart into an order. This is the one place
// where stock, order, outbox, and cart change together, so everything runs in
// a single transaction and checkouts for the same user are serialized with a
// per-user lock: two concurrent submissions produce one order, the loser of
// the lock finds the cart already empty and gets ErrEmptyCart.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricing    DeliveryPricing
	logger     *slog.Logger

	userLocks sync.Map // userID string -> *sync.Mutex
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	pricing DeliveryPricing,
	logger *slog.Logger,
) *CheckoutCommandHandler {
	return &CheckoutCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		logger:     logger.With("component", "checkout"),
	}
}

// Handle processes the checkout command and returns the placed order.
//
// Steps, all inside one transaction:
//  1. load the cart; empty or missing yields ErrEmptyCart
//  2. resolve every line against the catalog and freeze name, price, image;
//     a deleted product yields ErrProductUnavailable
//  3. reserve stock per line in ascending product id order; on a shortage,
//     release the reservations already taken and yield InsufficientStockError
//  4. allocate the order number, persist the order, append the created event
//     to the outbox, and empty the cart
//
// No partial outcome survives: either the order exists with stock decremented
// and the cart empty, or nothing changed.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lock := h.lockFor(cmd.UserID())
	lock.Lock()
	defer lock.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userCart, err := uow.CartRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if userCart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	orderLines, err := h.freezeLines(ctx, uow, userCart.Lines())
	if err != nil {
		return nil, err
	}

	if err = h.reserveStock(ctx, uow, userCart.Lines(), orderLines); err != nil {
		return nil, err
	}

	number, err := uow.OrderNumbers().NextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	subtotal := kernel.Money{}
	for _, line := range orderLines {
		subtotal = subtotal.Add(line.Subtotal())
	}
	fee := h.pricing.FeeFor(cmd.DeliveryOption(), subtotal)

	now := time.Now().UTC()
	placed, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		cmd.UserID(),
		orderLines,
		cmd.Address(),
		cmd.DeliveryOption(),
		fee,
		cmd.PaymentMethod(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	event, err := newOrderEvent(ports.OrderEventCreated, placed, order.Unknown, now)
	if err != nil {
		return nil, err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	userCart.Clear()
	if err = uow.CartRepository().Update(ctx, userCart); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order placed",
		"orderNumber", placed.Number(),
		"userId", placed.UserID().String(),
		"total", placed.Total().Amount(),
	)
	return placed, nil
}

// freezeLines resolves every cart line against the catalog and snapshots the
// product data the order will carry forever.
func (h *CheckoutCommandHandler) freezeLines(
	ctx context.Context,
	uow CheckoutUoW,
	cartLines []cart.Line,
) ([]order.Line, error) {
	catalog := uow.ProductCatalog()

	orderLines := make([]order.Line, 0, len(cartLines))
	for _, line := range cartLines {
		product, err := catalog.GetProduct(ctx, line.ProductID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, ErrProductUnavailable
			}
			return nil, err
		}

		frozen, err := order.NewLine(
			product.ID,
			product.Name,
			product.Price,
			line.Quantity(),
			line.Size(),
			line.Color(),
			product.Image,
		)
		if err != nil {
			return nil, err
		}
		orderLines = append(orderLines, frozen)
	}

	return orderLines, nil
}

// reserveStock decrements available stock for every cart line. Reservations
// run in ascending product id order so concurrent checkouts sharing products
// contend on rows in the same sequence. On a shortage the reservations
// already taken are released explicitly before the transaction is abandoned,
// and the failure names the product so the customer knows what to adjust.
func (h *CheckoutCommandHandler) reserveStock(
	ctx context.Context,
	uow CheckoutUoW,
	cartLines []cart.Line,
	orderLines []order.Line,
) error {
	nameByProduct := make(map[kernel.UUID]string, len(orderLines))
	for _, line := range orderLines {
		nameByProduct[line.ProductID()] = line.Name()
	}

	sorted := make([]cart.Line, len(cartLines))
	copy(sorted, cartLines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ProductID().String() < sorted[j].ProductID().String()
	})

	inventory := uow.InventoryRepository()
	reserved := make([]cart.Line, 0, len(sorted))
	for _, line := range sorted {
		err := inventory.TryReserve(ctx, line.ProductID(), line.Quantity())
		if err == nil {
			reserved = append(reserved, line)
			continue
		}

		h.releaseAll(ctx, inventory, reserved)

		if errors.Is(err, ports.ErrInsufficientStock) {
			return &InsufficientStockError{ProductName: nameByProduct[line.ProductID()]}
		}
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrProductUnavailable
		}
		return err
	}

	return nil
}

func (h *CheckoutCommandHandler) releaseAll(
	ctx context.Context,
	inventory ports.InventoryRepository,
	reserved []cart.Line,
) {
	for _, line := range reserved {
		if err := inventory.Release(ctx, line.ProductID(), line.Quantity()); err != nil {
			h.logger.ErrorContext(ctx, "failed to release reserved stock",
				"productId", line.ProductID().String(),
				"quantity", line.Quantity(),
				"error", err,
			)
		}
	}
}

func (h *CheckoutCommandHandler) lockFor(userID kernel.UUID) *sync.Mutex {
	lock, _ := h.userLocks.LoadOrStore(userID.String(), &sync.Mutex{})
	return lock.(*sync.Mutex)
}
