package kernel

import (
	"regexp"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ZipCodePattern is the full pattern a zip code must match: exactly 5 digits.
const ZipCodePattern = `^\d{5}$`

var zipCodeRegexp = regexp.MustCompile(ZipCodePattern)

// ErrZipCodeIsNotConstructed is returned when using a ZipCode that was not
// created via NewZipCode.
var ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"ZipCode must be created via NewZipCode constructor")

// ZipCode is a US-style 5-digit postal code.
type ZipCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewZipCode creates a ZipCode from raw input. Fails if the input is empty or
// is not exactly 5 digits.
func NewZipCode(paramName, raw string) (ZipCode, error) {
	z := ZipCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := z.setValue(paramName, raw); err != nil {
		return ZipCode{}, err
	}

	return z, nil
}

// Validate checks that the ZipCode was created via its constructor.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

// Value returns the wrapped zip code.
func (z ZipCode) Value() string {
	return z.value
}

// String implements fmt.Stringer.
func (z ZipCode) String() string {
	return z.value
}

func (z *ZipCode) setValue(paramName, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if !zipCodeRegexp.MatchString(raw) {
		return errs.NewValueDoesNotMatchPatternError(paramName, raw, ZipCodePattern)
	}

	z.value = raw
	return nil
}
