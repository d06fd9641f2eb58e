// Package errs provides standardized error types for the order-taking service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the validation scenarios the domain
// layer deals with:
//   - ValueIsRequiredError: a required value is missing or empty
//   - ValueIsInvalidError: a value is present but rejected
//   - ValueIsOutOfRangeError: a numeric value violates its inclusive bounds
//   - ValueTooLongError: a string value exceeds its maximum length
//   - ValueDoesNotMatchPatternError: a string value fails a full-pattern match
//   - ObjectNotFoundError: a referenced object does not exist
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - An Error() method for formatting
//   - An Unwrap() method returning the sentinel, so errors.Is works
//
// Validation failures produced by the domain layer always name the offending
// field, the violated rule, and (for pattern rules) the raw value and the
// pattern, which keeps failure messages actionable without exposing stack
// traces or internals.
package errs
