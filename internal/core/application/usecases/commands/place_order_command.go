package commands

import (
	"errors"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/guard"
)

// ErrPlaceOrderCommandIsNotConstructed is returned when using a
// PlaceOrderCommand that was not created via NewPlaceOrderCommand.
var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to run the order workflow over one
// raw order. The command deliberately carries unvalidated input: turning it
// into trusted domain values is the workflow's first stage, not the
// command's job. Any string content is acceptable here, including an empty
// order id; the validation stage reports such problems as workflow failures
// with the offending field named.
//
// Example:
//
//	cmd := NewPlaceOrderCommand(rawOrder)
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, validator, pricer, acknowledger, idempotency)
//	events, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("order placed, %d events emitted", len(events))
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	rawOrder order.UnvalidatedOrder

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command from raw order input. The input is
// accepted as-is; validation happens inside the workflow.
func NewPlaceOrderCommand(rawOrder order.UnvalidatedOrder) PlaceOrderCommand {
	return PlaceOrderCommand{
		rawOrder: rawOrder,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// RawOrder returns the untrusted order input the workflow will process.
func (c PlaceOrderCommand) RawOrder() order.UnvalidatedOrder {
	return c.rawOrder
}
