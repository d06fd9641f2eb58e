package services

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// OrderAcknowledger renders and attempts delivery of the order confirmation.
// Delivery cannot fail the workflow: a NotSent verdict only suppresses the
// acknowledgement event.
type OrderAcknowledger struct {
	renderer ports.LetterRenderer
	sender   ports.AcknowledgementSender
}

// NewOrderAcknowledger creates an acknowledger over the given collaborators.
func NewOrderAcknowledger(renderer ports.LetterRenderer, sender ports.AcknowledgementSender) OrderAcknowledger {
	return OrderAcknowledger{
		renderer: renderer,
		sender:   sender,
	}
}

// Acknowledge always renders the letter and always attempts delivery.
// It returns the acknowledgement fact only when the sender reports Sent;
// otherwise nil, which is a legitimate outcome, not an error.
func (a OrderAcknowledger) Acknowledge(ctx context.Context, priced order.PricedOrder) *order.AcknowledgementSent {
	letter := a.renderer.Render(priced)

	ack := ports.OrderAcknowledgement{
		EmailAddress: priced.CustomerInfo().Email(),
		Letter:       letter,
	}

	if a.sender.Deliver(ctx, ack) != ports.Sent {
		return nil
	}

	event := order.NewAcknowledgementSent(priced.OrderID(), priced.CustomerInfo().Email())
	return &event
}

// CreateBillingEvent derives the billing fact for a priced order. Orders with
// nothing to bill produce no billing event.
func CreateBillingEvent(priced order.PricedOrder) *order.BillableOrderPlaced {
	if priced.AmountToBill().Value() <= 0 {
		return nil
	}

	event := order.NewBillableOrderPlaced(priced.OrderID(), priced.BillingAddress(), priced.AmountToBill())
	return &event
}

// CreateEvents assembles the ordered event list for a successfully priced
// order. The order of emission is a contract consumers rely on: the
// acknowledgement event if present, then exactly one OrderPlaced, then the
// billing event if present.
func CreateEvents(priced order.PricedOrder, ack *order.AcknowledgementSent) []order.Event {
	events := make([]order.Event, 0, 3)

	if ack != nil {
		events = append(events, *ack)
	}

	events = append(events, order.NewOrderPlaced(priced))

	if billing := CreateBillingEvent(priced); billing != nil {
		events = append(events, *billing)
	}

	return events
}
