package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod is the label the customer chose at checkout. It is recorded,
// never processed; payment gateway integration lives outside this core.
type PaymentMethod string

const (
	// PaymentMethodCashOnDelivery is collected by the carrier at the door.
	// Delivering an order paid this way advances its payment status to paid.
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"

	// PaymentMethodCard is a card payment captured outside this core.
	PaymentMethodCard PaymentMethod = "card"

	// PaymentMethodBankTransfer is a transfer settled outside this core.
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// Validate requires a non-empty label. Unknown labels are accepted: the set of
// methods is owned by the excluded payment collaborator.
func (m PaymentMethod) Validate() error {
	if m == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	return nil
}

// IsCollectOnDelivery reports whether payment is collected when the order is
// delivered.
func (m PaymentMethod) IsCollectOnDelivery() bool {
	return m == PaymentMethodCashOnDelivery
}

// PaymentStatus tracks the settlement state recorded on an order.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial settlement state.
	PaymentPending

	// PaymentPaid indicates the order has been paid.
	PaymentPaid

	// PaymentFailed indicates a settlement attempt failed.
	PaymentFailed

	// PaymentRefunded indicates the payment was returned.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a stored payment status name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if status != PaymentUnknown && name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the PaymentStatus is a member of the known set.
func (p PaymentStatus) Validate() error {
	if p == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the lowercase name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
