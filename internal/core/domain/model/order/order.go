package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a committed purchase. It is created by
// checkout and from then on only the state machine mutates it: status and its
// side-effect fields (paymentStatus, deliveredAt, cancelledAt). Everything
// else (lines, prices, address, totals) is a frozen snapshot.
//
// Invariants:
//   - total = subtotal + deliveryFee, computed once at creation and never
//     recomputed from current catalog prices
//   - at least one line; every line quantity >= 1
//   - entering Cancelled releases stock exactly once (tracked by cancelledAt)
//   - no transition leaves Delivered or Cancelled
type Order struct {
	id            kernel.UUID
	number        string
	userID        kernel.UUID
	lines         []Line
	address       Address
	option        DeliveryOption
	deliveryFee   kernel.Money
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	subtotal      kernel.Money
	total         kernel.Money
	status        Status
	notes         string
	createdAt     time.Time
	deliveredAt   *time.Time
	cancelledAt   *time.Time
	version       int

	isConstructed bool
}

// NewOrder creates a pending order from checkout inputs. The subtotal is
// computed from the frozen lines and the total from subtotal plus delivery
// fee; neither changes afterward.
func NewOrder(
	id kernel.UUID,
	number string,
	userID kernel.UUID,
	lines []Line,
	address Address,
	option DeliveryOption,
	deliveryFee kernel.Money,
	paymentMethod PaymentMethod,
	notes string,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	if err := errors.Join(
		address.Validate(),
		option.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	subtotal := kernel.Money{}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(line.Subtotal())
	}

	frozen := make([]Line, len(lines))
	copy(frozen, lines)

	return &Order{
		id:            id,
		number:        number,
		userID:        userID,
		lines:         frozen,
		address:       address,
		option:        option,
		deliveryFee:   deliveryFee,
		paymentMethod: paymentMethod,
		paymentStatus: PaymentPending,
		subtotal:      subtotal,
		total:         subtotal.Add(deliveryFee),
		status:        Pending,
		notes:         notes,
		createdAt:     now,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without recomputing the
// frozen totals. The stored subtotal and total are authoritative: they record
// what the customer saw, not what the catalog says today.
func RestoreOrder(
	id kernel.UUID,
	number string,
	userID kernel.UUID,
	lines []Line,
	address Address,
	option DeliveryOption,
	deliveryFee kernel.Money,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	subtotal kernel.Money,
	total kernel.Money,
	status Status,
	notes string,
	createdAt time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	if err := errors.Join(
		address.Validate(),
		option.Validate(),
		paymentMethod.Validate(),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order")
	}

	frozen := make([]Line, len(lines))
	copy(frozen, lines)

	return &Order{
		id:            id,
		number:        number,
		userID:        userID,
		lines:         frozen,
		address:       address,
		option:        option,
		deliveryFee:   deliveryFee,
		paymentMethod: paymentMethod,
		paymentStatus: paymentStatus,
		subtotal:      subtotal,
		total:         total,
		status:        status,
		notes:         notes,
		createdAt:     createdAt,
		deliveredAt:   deliveredAt,
		cancelledAt:   cancelledAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's system identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-readable order number.
func (o *Order) Number() string { return o.number }

// UserID returns the purchasing user's identifier.
func (o *Order) UserID() kernel.UUID { return o.userID }

// Lines returns the frozen line snapshots.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Address returns the frozen shipping address.
func (o *Order) Address() Address { return o.address }

// DeliveryOption returns the chosen service level.
func (o *Order) DeliveryOption() DeliveryOption { return o.option }

// DeliveryFee returns the fee computed at checkout.
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

// PaymentMethod returns the recorded payment label.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// PaymentStatus returns the current settlement state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// Subtotal returns the sum of line subtotals frozen at checkout.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// Total returns subtotal plus delivery fee, frozen at checkout.
func (o *Order) Total() kernel.Money { return o.total }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Notes returns the free-text note recorded at checkout.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// DeliveredAt returns the delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CancelledAt returns the cancellation timestamp, or nil.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// Version returns the optimistic-concurrency version. The repository rejects
// an update when the stored version differs from the one read.
func (o *Order) Version() int { return o.version }

// Cancel moves the order to Cancelled.
//
// Customers (force=false) may cancel only from Pending or Confirmed; operators
// (force=true) from any non-terminal status. Cancelling an already-cancelled
// order is an idempotent no-op.
//
// The returned flag reports whether the caller must release reserved stock for
// every line: true exactly when this call performed the transition, so
// compensation runs at most once per order.
func (o *Order) Cancel(force bool, now time.Time) (bool, error) {
	if o.status == Cancelled {
		return false, nil
	}

	if force {
		if o.status.IsTerminal() {
			return false, &IllegalTransitionError{From: o.status, To: Cancelled}
		}
	} else if !o.status.CanCustomerCancel() {
		return false, &IllegalTransitionError{From: o.status, To: Cancelled}
	}

	o.status = Cancelled
	o.cancelledAt = &now
	return true, nil
}

// ChangeStatus performs an administrative transition to any member of the
// known status set. Unknown targets fail with InvalidStatusError; leaving a
// terminal status fails with IllegalTransitionError; setting the current
// status again is a no-op.
//
// Entering Cancelled applies the cancellation effects (see Cancel); the
// returned flag tells the caller to release stock. Entering Delivered sets
// deliveredAt and, for collect-on-delivery orders, advances the payment
// status to paid; there is no separate payment-capture step.
func (o *Order) ChangeStatus(target Status, now time.Time) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	if target == o.status {
		return false, nil
	}
	if o.status.IsTerminal() {
		return false, &IllegalTransitionError{From: o.status, To: target}
	}

	if target == Cancelled {
		return o.Cancel(true, now)
	}

	if target == Delivered {
		o.deliveredAt = &now
		if o.paymentMethod.IsCollectOnDelivery() {
			o.paymentStatus = PaymentPaid
		}
	}

	o.status = target
	return false, nil
}
