package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to convert the user's cart into an
// order. The shipping address is carried as a constructed value object; the
// delivery option and payment method arrive as external strings and are
// parsed here.
//
// Example:
//
//	addr, _ := order.NewAddress("Sam Doe", "+123456", "1 Main St", "Springfield", "49000", "US")
//	cmd, err := NewCheckoutCommand(userID, addr, "standard", "cash_on_delivery", "leave at door")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout input: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("order %s placed", placed.Number())
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	address       order.Address
	option        order.DeliveryOption
	paymentMethod order.PaymentMethod
	notes         string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. Validates the user identifier
// and the address, and parses the delivery option and payment method.
func NewCheckoutCommand(
	userID kernel.UUID,
	address order.Address,
	deliveryOption string,
	paymentMethod string,
	notes string,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAddress(address),
		cmd.setDeliveryOption(deliveryOption),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// UserID returns the purchasing user's identifier.
func (c CheckoutCommand) UserID() kernel.UUID {
	return c.userID
}

// Address returns the shipping address to freeze into the order.
func (c CheckoutCommand) Address() order.Address {
	return c.address
}

// DeliveryOption returns the parsed service level.
func (c CheckoutCommand) DeliveryOption() order.DeliveryOption {
	return c.option
}

// PaymentMethod returns the chosen payment label.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Notes returns the customer's free-text note.
func (c CheckoutCommand) Notes() string {
	return c.notes
}

func (c *CheckoutCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CheckoutCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CheckoutCommand) setDeliveryOption(deliveryOption string) error {
	option, err := order.DeliveryOptionFromString(deliveryOption)
	if err != nil {
		return err
	}

	c.option = option
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod string) error {
	method := order.PaymentMethod(paymentMethod)
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
