package cart

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError("Line must be created via NewLine")

// Line is a single cart entry for one product variant. Quantity is always at
// least 1; a size is required; color is optional. Lines are value objects
// owned by the Cart aggregate and mutated only through it.
type Line struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	size      string
	color     *kernel.Color

	guard guard.ConstructorGuard
}

// NewLine creates a validated cart line.
func NewLine(id, productID kernel.UUID, quantity int, size string, color *kernel.Color) (Line, error) {
	if err := id.Validate(); err != nil {
		return Line{}, err
	}
	if err := productID.Validate(); err != nil {
		return Line{}, err
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
		id:        id,
		productID: productID,
		quantity:  quantity,
		size:      size,
		color:     color,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line's identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// ProductID returns the referenced product's identifier. This is a live
// reference: price and stock are re-derived from the catalog at read and
// checkout time, never stored on the line.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the line quantity, always >= 1.
func (l Line) Quantity() int {
	return l.quantity
}

// Size returns the selected size.
func (l Line) Size() string {
	return l.size
}

// Color returns the selected color, or nil when none was chosen.
func (l Line) Color() *kernel.Color {
	return l.color
}

// isSameVariant reports whether the line refers to the same
// (product, size, color) tuple. Lines for the same variant are merged,
// never duplicated.
func (l Line) isSameVariant(productID kernel.UUID, size string, color *kernel.Color) bool {
	if !l.productID.IsEqual(productID) || l.size != size {
		return false
	}
	if l.color == nil || color == nil {
		return l.color == nil && color == nil
	}
	return l.color.IsEqual(*color)
}

// withQuantity returns a copy of the line holding the given quantity.
func (l Line) withQuantity(quantity int) Line {
	l.quantity = quantity
	return l
}
