package kernel

import (
	"unicode/utf8"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// String50MaxLength is the maximum number of characters a String50 may hold.
const String50MaxLength = 50

// ErrString50IsNotConstructed is returned when using a String50 that was not
// created via NewString50.
var ErrString50IsNotConstructed = errs.NewValueIsRequiredError(
	"String50 must be created via NewString50 constructor")

// ErrOptionalString50IsNotConstructed is returned when using an OptionalString50
// that was not created via NewOptionalString50.
var ErrOptionalString50IsNotConstructed = errs.NewValueIsRequiredError(
	"OptionalString50 must be created via NewOptionalString50 constructor")

// String50 is a non-empty string of at most 50 characters. It is the base
// constrained type for names, cities, address lines, and identifiers.
//
// Example:
//
//	first, err := kernel.NewString50("FirstName", "Ada")
//	if err != nil {
//	    // field empty or longer than 50 chars
//	}
type String50 struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewString50 creates a String50 from raw input. The paramName is used in
// failure messages. Fails if the input is empty or longer than 50 characters.
func NewString50(paramName, raw string) (String50, error) {
	s := String50{
		guard: guard.NewConstructorGuard(),
	}

	if err := s.setValue(paramName, raw); err != nil {
		return String50{}, err
	}

	return s, nil
}

// Validate checks that the String50 was created via its constructor.
func (s String50) Validate() error {
	return s.guard.Validate(ErrString50IsNotConstructed)
}

// Value returns the wrapped string.
func (s String50) Value() string {
	return s.value
}

// String implements fmt.Stringer.
func (s String50) String() string {
	return s.value
}

func (s *String50) setValue(paramName, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(raw); n > String50MaxLength {
		return errs.NewValueTooLongError(paramName, n, String50MaxLength)
	}

	s.value = raw
	return nil
}

// OptionalString50 is a string of at most 50 characters that may be absent.
// Empty raw input constructs a valid absent value; non-empty input is held to
// the same length bound as String50.
type OptionalString50 struct { //nolint:recvcheck //using for validation
	value   string
	present bool
	guard   guard.ConstructorGuard
}

// NewOptionalString50 creates an OptionalString50 from raw input. Empty input
// yields an absent value; otherwise the String50 length bound applies.
func NewOptionalString50(paramName, raw string) (OptionalString50, error) {
	s := OptionalString50{
		guard: guard.NewConstructorGuard(),
	}

	if err := s.setValue(paramName, raw); err != nil {
		return OptionalString50{}, err
	}

	return s, nil
}

// Validate checks that the OptionalString50 was created via its constructor.
func (s OptionalString50) Validate() error {
	return s.guard.Validate(ErrOptionalString50IsNotConstructed)
}

// HasValue reports whether a value is present.
func (s OptionalString50) HasValue() bool {
	return s.present
}

// Value returns the wrapped string, or the empty string when absent.
func (s OptionalString50) Value() string {
	return s.value
}

func (s *OptionalString50) setValue(paramName, raw string) error {
	if raw == "" {
		return nil
	}
	if n := utf8.RuneCountInString(raw); n > String50MaxLength {
		return errs.NewValueTooLongError(paramName, n, String50MaxLength)
	}

	s.value = raw
	s.present = true
	return nil
}
