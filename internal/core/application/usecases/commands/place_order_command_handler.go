package commands

import (
	"context"
	"errors"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"
)

// ErrOrderAlreadyPlaced is returned when an order id is submitted while a
// previous submission of the same id is still held or already succeeded.
var ErrOrderAlreadyPlaced = errors.New("order has already been placed")

// idempotencyScope namespaces the order-id locks in the idempotency store.
const idempotencyScope = "place-order"

// PlaceOrderCommandHandler orchestrates the full order workflow: claim the
// order id, validate, price, acknowledge, then persist the order and its
// events in one transaction.
//
// Failure classification is the handler's responsibility. Validation-stage
// errors become ValidationError and pricing-stage errors become PricingError;
// a collaborator transport failure surfaces as RemoteServiceError untouched.
// On any failure the id claim is released so the caller can fix the input and
// resubmit.
type PlaceOrderCommandHandler struct {
	uowFactory   PlaceOrderUoWFactory
	validator    services.OrderValidator
	pricer       services.OrderPricer
	acknowledger services.OrderAcknowledger
	idempotency  ports.IdempotencyStore
}

// NewPlaceOrderCommandHandler creates a handler over the workflow stages and
// the transactional persistence factory.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	validator services.OrderValidator,
	pricer services.OrderPricer,
	acknowledger services.OrderAcknowledger,
	idempotency ports.IdempotencyStore,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		validator:    validator,
		pricer:       pricer,
		acknowledger: acknowledger,
		idempotency:  idempotency,
	}
}

// Handle processes the command and returns the emitted events in their
// contractual order: the acknowledgement event if one was sent, then exactly
// one OrderPlaced, then the billing event if the order has a positive total.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) ([]order.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	raw := cmd.RawOrder()

	locked, err := h.idempotency.TryLock(ctx, idempotencyScope, raw.OrderID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrOrderAlreadyPlaced
	}

	events, err := h.runWorkflow(ctx, raw)
	if err != nil {
		// Free the id so a corrected resubmission is possible.
		_ = h.idempotency.Release(ctx, idempotencyScope, raw.OrderID)
		return nil, err
	}

	return events, nil
}

func (h *PlaceOrderCommandHandler) runWorkflow(ctx context.Context, raw order.UnvalidatedOrder) ([]order.Event, error) {
	validated, err := h.validator.Validate(ctx, raw)
	if err != nil {
		return nil, classifyValidationFailure(err)
	}

	priced, err := h.pricer.Price(validated)
	if err != nil {
		return nil, order.NewPricingError(err)
	}

	ack := h.acknowledger.Acknowledge(ctx, priced)
	events := services.CreateEvents(priced, ack)

	if err := h.persist(ctx, priced, events); err != nil {
		return nil, err
	}

	return events, nil
}

func (h *PlaceOrderCommandHandler) persist(ctx context.Context, priced order.PricedOrder, events []order.Event) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PlacedOrderRepository().Add(ctx, priced); err != nil {
		return err
	}

	outboxRepo := uow.OutboxRepository()
	for _, event := range events {
		if err := outboxRepo.AddEvent(ctx, event); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// classifyValidationFailure separates collaborator-level failures from input
// rejections. A RemoteServiceError from the address check is not the
// customer's fault and passes through unchanged; everything else the
// validation stage reports is a problem with the submitted order.
func classifyValidationFailure(err error) error {
	var remoteErr *order.RemoteServiceError
	if errors.As(err, &remoteErr) {
		return remoteErr
	}

	return order.NewValidationError(err)
}
