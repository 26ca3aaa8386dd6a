package order

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError("order Line must be created via NewLine")

// Line is a frozen snapshot of one cart line at checkout time: product name,
// unit price, and image are copied from the catalog and never re-read, so a
// later catalog change or deletion cannot corrupt the order. The product
// reference is weak: lookup only, no ownership.
type Line struct {
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	size      string
	color     *kernel.Color
	image     string

	guard guard.ConstructorGuard
}

// NewLine creates a validated order line snapshot.
func NewLine(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int, size string, color *kernel.Color, image string) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	if size == "" {
		return Line{}, errs.NewValueIsRequiredError("size")
	}
	if color != nil {
		if err := color.Validate(); err != nil {
			return Line{}, err
		}
	}

	return Line{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		size:      size,
		color:     color,
		image:     image,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the weak reference to the ordered product.
func (l Line) ProductID() kernel.UUID { return l.productID }

// Name returns the product name as the customer saw it.
func (l Line) Name() string { return l.name }

// UnitPrice returns the price frozen at checkout time.
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }

// Quantity returns the ordered quantity.
func (l Line) Quantity() int { return l.quantity }

// Size returns the ordered size.
func (l Line) Size() string { return l.size }

// Color returns the ordered color, or nil.
func (l Line) Color() *kernel.Color { return l.color }

// Image returns the product image frozen at checkout time.
func (l Line) Image() string { return l.image }

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MultiplyBy(l.quantity)
}
