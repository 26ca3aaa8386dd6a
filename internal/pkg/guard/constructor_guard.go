// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was created through its designated constructor or left as a zero
// value, so validation can reject improperly built objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// for a guard that was never constructed. Validation therefore always fails with
// a meaningful message even when no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its constructor.
// The zero value is "not constructed"; NewConstructorGuard flips the flag.
//
// Example:
//
//	type Line struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewLine(quantity int) (Line, error) {
//	    if quantity < 1 {
//	        return Line{}, errors.New("quantity must be at least 1")
//	    }
//	    return Line{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (l Line) Validate() error {
//	    return l.guard.Validate(errLineNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
