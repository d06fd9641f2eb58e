package kernel

import (
	"math"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// Inclusive bounds for an order's total.
const (
	// BillingAmountMin is the smallest valid order total.
	BillingAmountMin = 0.0
	// BillingAmountMax is the largest valid order total.
	BillingAmountMax = 10000.0
)

// ErrBillingAmountIsNotConstructed is returned when using a BillingAmount that
// was not created via NewBillingAmount or SumPrices.
var ErrBillingAmountIsNotConstructed = errs.NewValueIsRequiredError(
	"BillingAmount must be created via NewBillingAmount or SumPrices constructors")

// BillingAmount is an order total in [BillingAmountMin, BillingAmountMax].
type BillingAmount struct { //nolint:recvcheck //using for validation
	value float64
	guard guard.ConstructorGuard
}

// NewBillingAmount creates a BillingAmount from a raw total.
func NewBillingAmount(paramName string, value float64) (BillingAmount, error) {
	b := BillingAmount{
		guard: guard.NewConstructorGuard(),
	}

	if err := b.setValue(paramName, value); err != nil {
		return BillingAmount{}, err
	}

	return b, nil
}

// SumPrices sums a list of line prices into a BillingAmount, re-validating the
// grand total through the BillingAmount bounds. Fails if any price was not
// properly constructed or if the total exceeds BillingAmountMax.
func SumPrices(paramName string, prices []Price) (BillingAmount, error) {
	total := 0.0
	for _, p := range prices {
		if err := p.Validate(); err != nil {
			return BillingAmount{}, err
		}
		total += p.Value()
	}

	return NewBillingAmount(paramName, total)
}

// Validate checks that the BillingAmount was created via its constructor.
func (b BillingAmount) Validate() error {
	return b.guard.Validate(ErrBillingAmountIsNotConstructed)
}

// Value returns the total.
func (b BillingAmount) Value() float64 {
	return b.value
}

func (b *BillingAmount) setValue(paramName string, value float64) error {
	// NaN compares false against both bounds, so finiteness is checked first.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidError(paramName)
	}

	if value < BillingAmountMin || value > BillingAmountMax {
		return errs.NewValueIsOutOfRangeError(paramName, value, BillingAmountMin, BillingAmountMax)
	}

	b.value = value
	return nil
}
