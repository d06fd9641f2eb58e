package kernel

import (
	"regexp"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// EmailAddressPattern is the full pattern an email address must match.
// Anything with a non-empty local part and domain separated by "@" is accepted;
// deliverability is the acknowledgement sender's problem, not the domain's.
const EmailAddressPattern = `^.+@.+$`

var emailAddressRegexp = regexp.MustCompile(EmailAddressPattern)

// ErrEmailAddressIsNotConstructed is returned when using an EmailAddress that
// was not created via NewEmailAddress.
var ErrEmailAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"EmailAddress must be created via NewEmailAddress constructor")

// EmailAddress is a string containing an "@" separator.
type EmailAddress struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmailAddress creates an EmailAddress from raw input. Fails if the input
// is empty or does not match EmailAddressPattern.
func NewEmailAddress(paramName, raw string) (EmailAddress, error) {
	e := EmailAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := e.setValue(paramName, raw); err != nil {
		return EmailAddress{}, err
	}

	return e, nil
}

// Validate checks that the EmailAddress was created via its constructor.
func (e EmailAddress) Validate() error {
	return e.guard.Validate(ErrEmailAddressIsNotConstructed)
}

// Value returns the wrapped address.
func (e EmailAddress) Value() string {
	return e.value
}

// String implements fmt.Stringer.
func (e EmailAddress) String() string {
	return e.value
}

func (e *EmailAddress) setValue(paramName, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if !emailAddressRegexp.MatchString(raw) {
		return errs.NewValueDoesNotMatchPatternError(paramName, raw, EmailAddressPattern)
	}

	e.value = raw
	return nil
}
