package kernel

import (
	"fmt"
	"regexp"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// Full patterns for the two product families in the catalog.
const (
	// WidgetCodePattern matches widget codes: "W" followed by exactly 4 digits.
	WidgetCodePattern = `^W\d{4}$`
	// GizmoCodePattern matches gizmo codes: "G" followed by exactly 3 digits.
	GizmoCodePattern = `^G\d{3}$`
)

var (
	widgetCodeRegexp = regexp.MustCompile(WidgetCodePattern)
	gizmoCodeRegexp  = regexp.MustCompile(GizmoCodePattern)
)

// ProductKind discriminates the closed set of product-code variants.
type ProductKind int

const (
	// ProductKindWidget marks a discrete product sold by unit.
	ProductKindWidget ProductKind = iota + 1
	// ProductKindGizmo marks a product sold by weight.
	ProductKindGizmo
)

// String returns a human-readable name for the product kind.
func (k ProductKind) String() string {
	switch k {
	case ProductKindWidget:
		return "Widget"
	case ProductKindGizmo:
		return "Gizmo"
	default:
		return fmt.Sprintf("ProductKind(%d)", int(k))
	}
}

// ErrProductCodeIsNotConstructed is returned when using a ProductCode that was
// not created via NewProductCode.
var ErrProductCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"ProductCode must be created via NewProductCode constructor")

// ProductCode is a closed variant over the two product families. Construction
// dispatches on the first character of the raw code: "W" delegates to the
// widget pattern, "G" to the gizmo pattern, anything else is rejected as an
// unrecognized format. The kind tag is fixed at construction and drives
// variant-locked behavior downstream (see NewOrderQuantity).
//
// Example:
//
//	code, err := kernel.NewProductCode("ProductCode", "W1234")
//	if err != nil {
//	    // empty, malformed, or unrecognized prefix
//	}
//	switch code.Kind() {
//	case kernel.ProductKindWidget:
//	    // sold by unit
//	case kernel.ProductKindGizmo:
//	    // sold by weight
//	}
type ProductCode struct { //nolint:recvcheck //using for validation
	kind  ProductKind
	value string
	guard guard.ConstructorGuard
}

// NewProductCode creates a ProductCode from raw input. Fails if the input is
// empty, if a "W"/"G" code does not match its family pattern, or if the first
// character is neither "W" nor "G".
func NewProductCode(paramName, raw string) (ProductCode, error) {
	c := ProductCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setValue(paramName, raw); err != nil {
		return ProductCode{}, err
	}

	return c, nil
}

// Validate checks that the ProductCode was created via its constructor.
func (c ProductCode) Validate() error {
	return c.guard.Validate(ErrProductCodeIsNotConstructed)
}

// Kind returns the variant tag.
func (c ProductCode) Kind() ProductKind {
	return c.kind
}

// IsWidget reports whether the code belongs to the widget family.
func (c ProductCode) IsWidget() bool {
	return c.kind == ProductKindWidget
}

// IsGizmo reports whether the code belongs to the gizmo family.
func (c ProductCode) IsGizmo() bool {
	return c.kind == ProductKindGizmo
}

// Value returns the raw code, e.g. "W1234".
func (c ProductCode) Value() string {
	return c.value
}

// String implements fmt.Stringer.
func (c ProductCode) String() string {
	return c.value
}

func (c *ProductCode) setValue(paramName, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(paramName)
	}

	switch raw[0] {
	case 'W':
		if !widgetCodeRegexp.MatchString(raw) {
			return errs.NewValueDoesNotMatchPatternError(paramName, raw, WidgetCodePattern)
		}
		c.kind = ProductKindWidget
	case 'G':
		if !gizmoCodeRegexp.MatchString(raw) {
			return errs.NewValueDoesNotMatchPatternError(paramName, raw, GizmoCodePattern)
		}
		c.kind = ProductKindGizmo
	default:
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("product code %q has unrecognized format", raw))
	}

	c.value = raw
	return nil
}
