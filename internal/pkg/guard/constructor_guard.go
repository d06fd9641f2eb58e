package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is supplied for a zero-value guard. It guarantees that validation of an
// improperly constructed object always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that value objects, entities, and commands are only
// obtained through their designated constructor functions. Embedding a guard in
// a struct makes the zero value of that struct detectable: a guard created via
// NewConstructorGuard validates cleanly, while the zero value does not.
//
// This is the backbone of the smart-constructor pattern used throughout the
// domain layer: the only way to hold a constrained value is to have passed its
// constructor's validation.
//
// Example:
//
//	type Price struct {
//	    value float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPrice(value float64) (Price, error) {
//	    if value < 0 {
//	        return Price{}, errors.New("price cannot be negative")
//	    }
//	    return Price{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
// Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for a constructed guard, the supplied validationError for a
// zero-value guard, or ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
