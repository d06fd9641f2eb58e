package kernel

import (
	"ordertaking/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed is returned when using an OrderID that was not
// created via NewOrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID constructor")

// ErrOrderLineIDIsNotConstructed is returned when using an OrderLineID that
// was not created via NewOrderLineID.
var ErrOrderLineIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderLineID must be created via NewOrderLineID constructor")

// OrderID identifies one order. It is supplied by the caller, not generated,
// and is held to the String50 bounds: non-empty, at most 50 characters.
type OrderID struct {
	value String50
}

// NewOrderID creates an OrderID from raw input.
func NewOrderID(paramName, raw string) (OrderID, error) {
	s, err := NewString50(paramName, raw)
	if err != nil {
		return OrderID{}, err
	}

	return OrderID{value: s}, nil
}

// Validate checks that the OrderID was created via its constructor.
func (id OrderID) Validate() error {
	return guardedValidate(id.value, ErrOrderIDIsNotConstructed)
}

// Value returns the wrapped identifier.
func (id OrderID) Value() string {
	return id.value.Value()
}

// String implements fmt.Stringer.
func (id OrderID) String() string {
	return id.value.Value()
}

// IsEqual compares two order ids by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value.Value() == other.value.Value()
}

// OrderLineID identifies one line within an order, with the same bounds as
// OrderID.
type OrderLineID struct {
	value String50
}

// NewOrderLineID creates an OrderLineID from raw input.
func NewOrderLineID(paramName, raw string) (OrderLineID, error) {
	s, err := NewString50(paramName, raw)
	if err != nil {
		return OrderLineID{}, err
	}

	return OrderLineID{value: s}, nil
}

// Validate checks that the OrderLineID was created via its constructor.
func (id OrderLineID) Validate() error {
	return guardedValidate(id.value, ErrOrderLineIDIsNotConstructed)
}

// Value returns the wrapped identifier.
func (id OrderLineID) Value() string {
	return id.value.Value()
}

// String implements fmt.Stringer.
func (id OrderLineID) String() string {
	return id.value.Value()
}

// guardedValidate maps the inner String50's construction error to the
// id-specific sentinel so callers see which type was misused.
func guardedValidate(inner String50, notConstructed error) error {
	if err := inner.Validate(); err != nil {
		return notConstructed
	}
	return nil
}
