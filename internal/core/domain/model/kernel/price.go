package kernel

import (
	"math"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// Inclusive bounds for a single price.
const (
	// PriceMin is the smallest valid price.
	PriceMin = 0.0
	// PriceMax is the largest valid price for a single line.
	PriceMax = 100.0
)

// ErrPriceIsNotConstructed is returned when using a Price that was not created
// via NewPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"Price must be created via NewPrice constructor")

// Price is a monetary amount in [PriceMin, PriceMax]. It is used both for a
// product's unit price and for a priced line's total, so multiplying a unit
// price by a quantity re-validates the result through the same bounds.
type Price struct { //nolint:recvcheck //using for validation
	value float64
	guard guard.ConstructorGuard
}

// NewPrice creates a Price from a raw amount.
func NewPrice(paramName string, value float64) (Price, error) {
	p := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setValue(paramName, value); err != nil {
		return Price{}, err
	}

	return p, nil
}

// Validate checks that the Price was created via its constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Value returns the amount.
func (p Price) Value() float64 {
	return p.value
}

// Multiply scales the price by a quantity and re-validates the result through
// the Price constructor. Fails if the product exceeds PriceMax.
func (p Price) Multiply(paramName string, quantity float64) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}

	return NewPrice(paramName, p.value*quantity)
}

func (p *Price) setValue(paramName string, value float64) error {
	// NaN compares false against both bounds, so finiteness is checked first.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidError(paramName)
	}

	if value < PriceMin || value > PriceMax {
		return errs.NewValueIsOutOfRangeError(paramName, value, PriceMin, PriceMax)
	}

	p.value = value
	return nil
}
