package kernel

import (
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrColorIsNotConstructed is returned when a Color was not created through NewColor.
var ErrColorIsNotConstructed = errs.NewValueIsRequiredError("Color must be created via NewColor")

// Color is an optional product variant attribute carried on cart and order
// lines. The name is required; the hex code is display-only and may be empty.
// Two colors are the same variant when both name and hex match.
type Color struct {
	name string
	hex  string

	guard guard.ConstructorGuard
}

// NewColor creates a Color with a required name and optional hex code.
func NewColor(name, hex string) (Color, error) {
	if name == "" {
		return Color{}, errs.NewValueIsRequiredError("color name")
	}
	return Color{
		name:  name,
		hex:   hex,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Color was created via NewColor.
func (c Color) Validate() error {
	return c.guard.Validate(ErrColorIsNotConstructed)
}

// Name returns the color's display name.
func (c Color) Name() string {
	return c.name
}

// Hex returns the color's hex code, possibly empty.
func (c Color) Hex() string {
	return c.hex
}

// IsEqual reports whether two colors denote the same variant.
func (c Color) IsEqual(other Color) bool {
	return c.name == other.name && c.hex == other.hex
}
