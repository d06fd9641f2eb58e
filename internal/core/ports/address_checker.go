package ports

import (
	"context"
	"errors"

	"ordertaking/internal/core/domain/model/order"
)

// The two recognized domain rejections of the address-verification
// collaborator. The validation stage maps each to a fixed failure message;
// any other error from Check is treated as a remote-service failure.
var (
	// ErrAddressInvalidFormat means the service rejected the address shape.
	ErrAddressInvalidFormat = errors.New("address has bad format")
	// ErrAddressNotFound means the service found no such address.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressChecker is the address-verification collaborator. Check performs one
// round trip per call; the workflow issues two independent calls per order
// (shipping first, then billing).
type AddressChecker interface {
	Check(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error)
}
