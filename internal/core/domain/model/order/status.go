package order

import (
	"errors"
	"fmt"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │             │             │
//	   └────────────┴─────────────┴─────────────┘
//	                      │
//	                  Cancelled
//
// Customers may cancel only from Pending or Confirmed; operators may
// force-cancel from any non-terminal state. Delivered and Cancelled are
// terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned by checkout.
	Pending

	// Confirmed indicates the order has been accepted for fulfillment.
	Confirmed

	// Processing indicates the order is being picked and packed.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled and its stock released. Terminal.
	Cancelled
)

var (
	// ErrInvalidStatus classifies status values outside the known set.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrIllegalTransition classifies status changes the state machine forbids.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// InvalidStatusError reports a status value outside the known set,
// typically an unrecognized string from an administrative request.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidStatus, e.Value)
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// IllegalTransitionError reports a forbidden status change, naming both the
// current and the attempted status.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses an externally supplied status name. Unknown names
// yield an InvalidStatusError; administrative status changes rely on this to
// reject targets outside the known set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, &InvalidStatusError{Value: s}
}

// Validate checks that the Status is a member of the known status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return &InvalidStatusError{Value: fmt.Sprintf("%d", s)}
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanCustomerCancel reports whether a customer-initiated cancellation is legal
// from this status. Operators may force-cancel from any non-terminal status.
func (s Status) CanCustomerCancel() bool {
	return s == Pending || s == Confirmed
}
