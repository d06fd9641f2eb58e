package order

import "fmt"

// The workflow-level failure taxonomy. Every failed PlaceOrder invocation
// surfaces exactly one of these: a ValidationError for malformed or rejected
// input, a PricingError for a price or total outside its bounds, or a
// RemoteServiceError when a collaborator itself failed (transport or
// availability trouble, as opposed to a domain rejection).

// ValidationError reports the first input violation found by the validation
// stage: a malformed field, an unknown product code, or a rejected address.
type ValidationError struct {
	Message string
}

// NewValidationError wraps a validation-stage failure.
func NewValidationError(cause error) *ValidationError {
	return &ValidationError{Message: cause.Error()}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order validation failed: %s", e.Message)
}

// PricingError reports a computed line price or order total outside its
// allowed bounds.
type PricingError struct {
	Message string
}

// NewPricingError wraps a pricing-stage failure.
func NewPricingError(cause error) *PricingError {
	return &PricingError{Message: cause.Error()}
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("order pricing failed: %s", e.Message)
}

// ServiceInfo identifies the collaborator a RemoteServiceError came from.
type ServiceInfo struct {
	Name     string
	Endpoint string
}

// RemoteServiceError reports a collaborator-level failure, distinct from a
// domain rejection: the service could not be reached or answered outside its
// contract.
type RemoteServiceError struct {
	Service ServiceInfo
	Cause   error
}

// NewRemoteServiceError wraps a collaborator failure with its service descriptor.
func NewRemoteServiceError(service ServiceInfo, cause error) *RemoteServiceError {
	return &RemoteServiceError{Service: service, Cause: cause}
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service %s (%s) failed: %s", e.Service.Name, e.Service.Endpoint, e.Cause)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Cause
}
