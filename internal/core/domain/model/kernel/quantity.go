package kernel

import (
	"fmt"
	"math"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// Inclusive bounds for the two quantity variants.
const (
	// UnitQuantityMin is the smallest orderable number of units.
	UnitQuantityMin = 1
	// UnitQuantityMax is the largest orderable number of units.
	UnitQuantityMax = 1000
	// KilogramQuantityMin is the smallest orderable weight in kilograms.
	KilogramQuantityMin = 0.05
	// KilogramQuantityMax is the largest orderable weight in kilograms.
	KilogramQuantityMax = 100.0
)

// ErrUnitQuantityIsNotConstructed is returned when using a UnitQuantity that
// was not created via NewUnitQuantity.
var ErrUnitQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"UnitQuantity must be created via NewUnitQuantity constructor")

// ErrKilogramQuantityIsNotConstructed is returned when using a
// KilogramQuantity that was not created via NewKilogramQuantity.
var ErrKilogramQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"KilogramQuantity must be created via NewKilogramQuantity constructor")

// ErrOrderQuantityIsNotConstructed is returned when using an OrderQuantity
// that was not created via NewOrderQuantity.
var ErrOrderQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderQuantity must be created via NewOrderQuantity constructor")

// UnitQuantity is a whole number of units in [UnitQuantityMin, UnitQuantityMax].
type UnitQuantity struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewUnitQuantity creates a UnitQuantity from an integer count.
func NewUnitQuantity(paramName string, value int) (UnitQuantity, error) {
	q := UnitQuantity{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setValue(paramName, value); err != nil {
		return UnitQuantity{}, err
	}

	return q, nil
}

// Validate checks that the UnitQuantity was created via its constructor.
func (q UnitQuantity) Validate() error {
	return q.guard.Validate(ErrUnitQuantityIsNotConstructed)
}

// Value returns the unit count.
func (q UnitQuantity) Value() int {
	return q.value
}

func (q *UnitQuantity) setValue(paramName string, value int) error {
	if value < UnitQuantityMin || value > UnitQuantityMax {
		return errs.NewValueIsOutOfRangeError(paramName, value, UnitQuantityMin, UnitQuantityMax)
	}

	q.value = value
	return nil
}

// KilogramQuantity is a weight in kilograms in
// [KilogramQuantityMin, KilogramQuantityMax].
type KilogramQuantity struct { //nolint:recvcheck //using for validation
	value float64
	guard guard.ConstructorGuard
}

// NewKilogramQuantity creates a KilogramQuantity from a weight.
func NewKilogramQuantity(paramName string, value float64) (KilogramQuantity, error) {
	q := KilogramQuantity{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setValue(paramName, value); err != nil {
		return KilogramQuantity{}, err
	}

	return q, nil
}

// Validate checks that the KilogramQuantity was created via its constructor.
func (q KilogramQuantity) Validate() error {
	return q.guard.Validate(ErrKilogramQuantityIsNotConstructed)
}

// Value returns the weight in kilograms.
func (q KilogramQuantity) Value() float64 {
	return q.value
}

func (q *KilogramQuantity) setValue(paramName string, value float64) error {
	// NaN compares false against both bounds, so finiteness is checked first.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidError(paramName)
	}

	if value < KilogramQuantityMin || value > KilogramQuantityMax {
		return errs.NewValueIsOutOfRangeError(paramName, value, KilogramQuantityMin, KilogramQuantityMax)
	}

	q.value = value
	return nil
}

// QuantityKind discriminates the closed set of order-quantity variants.
type QuantityKind int

const (
	// QuantityKindUnit marks a quantity counted in whole units.
	QuantityKindUnit QuantityKind = iota + 1
	// QuantityKindKilogram marks a quantity measured in kilograms.
	QuantityKindKilogram
)

// String returns a human-readable name for the quantity kind.
func (k QuantityKind) String() string {
	switch k {
	case QuantityKindUnit:
		return "Unit"
	case QuantityKindKilogram:
		return "Kilogram"
	default:
		return fmt.Sprintf("QuantityKind(%d)", int(k))
	}
}

// OrderQuantity is a closed variant over unit and kilogram quantities. The
// variant is chosen by the product code at construction time: a widget always
// yields a unit quantity (the raw amount is truncated to an integer), a gizmo
// always yields a kilogram quantity. The wrong pairing cannot be expressed:
// there is no constructor for it.
type OrderQuantity struct { //nolint:recvcheck //using for validation
	kind      QuantityKind
	units     UnitQuantity
	kilograms KilogramQuantity
	guard     guard.ConstructorGuard
}

// NewOrderQuantity creates an OrderQuantity for an already-constructed product
// code and a raw numeric amount. For widget codes the amount is truncated to
// an integer and held to the unit bounds; for gizmo codes it is held to the
// kilogram bounds with no truncation.
func NewOrderQuantity(paramName string, code ProductCode, raw float64) (OrderQuantity, error) {
	if err := code.Validate(); err != nil {
		return OrderQuantity{}, err
	}

	q := OrderQuantity{
		guard: guard.NewConstructorGuard(),
	}

	switch code.Kind() {
	case ProductKindWidget:
		units, err := NewUnitQuantity(paramName, int(raw))
		if err != nil {
			return OrderQuantity{}, err
		}
		q.kind = QuantityKindUnit
		q.units = units
	case ProductKindGizmo:
		kilograms, err := NewKilogramQuantity(paramName, raw)
		if err != nil {
			return OrderQuantity{}, err
		}
		q.kind = QuantityKindKilogram
		q.kilograms = kilograms
	default:
		return OrderQuantity{}, errs.NewValueIsInvalidError(paramName)
	}

	return q, nil
}

// Validate checks that the OrderQuantity was created via its constructor.
func (q OrderQuantity) Validate() error {
	return q.guard.Validate(ErrOrderQuantityIsNotConstructed)
}

// Kind returns the variant tag.
func (q OrderQuantity) Kind() QuantityKind {
	return q.kind
}

// Units returns the unit quantity. Only meaningful for QuantityKindUnit.
func (q OrderQuantity) Units() UnitQuantity {
	return q.units
}

// Kilograms returns the kilogram quantity. Only meaningful for QuantityKindKilogram.
func (q OrderQuantity) Kilograms() KilogramQuantity {
	return q.kilograms
}

// Value returns the numeric magnitude of the quantity regardless of variant.
// This is the multiplier used when pricing a line.
func (q OrderQuantity) Value() float64 {
	switch q.kind {
	case QuantityKindUnit:
		return float64(q.units.Value())
	case QuantityKindKilogram:
		return q.kilograms.Value()
	default:
		return 0
	}
}
