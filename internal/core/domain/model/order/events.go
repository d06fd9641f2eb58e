package order

import (
	"time"

	"ordertaking/internal/core/domain/model/kernel"
)

// Event type names used for serialization and routing. These travel on the
// wire (outbox rows, broker messages), so they are part of the contract.
const (
	EventTypeAcknowledgementSent = "order.acknowledgement_sent"
	EventTypeOrderPlaced         = "order.placed"
	EventTypeBillableOrderPlaced = "order.billable_order_placed"
)

// Event is a domain event emitted by a successfully processed order. The set
// of implementations is closed: the unexported marker method keeps outside
// packages from adding variants.
type Event interface {
	// EventType returns the wire name of the event.
	EventType() string
	// OrderID returns the id of the order the event belongs to.
	OrderID() kernel.OrderID
	// OccurredAt returns when the event was derived.
	OccurredAt() time.Time

	isPlaceOrderEvent()
}

// AcknowledgementSent records that an order confirmation was delivered to the
// customer. Emitted only when the delivery collaborator reports Sent.
type AcknowledgementSent struct {
	orderID      kernel.OrderID
	emailAddress kernel.EmailAddress
	occurredAt   time.Time
}

// NewAcknowledgementSent creates the acknowledgement fact for an order.
func NewAcknowledgementSent(orderID kernel.OrderID, emailAddress kernel.EmailAddress) AcknowledgementSent {
	return AcknowledgementSent{
		orderID:      orderID,
		emailAddress: emailAddress,
		occurredAt:   time.Now().UTC(),
	}
}

// EventType implements Event.
func (e AcknowledgementSent) EventType() string { return EventTypeAcknowledgementSent }

// OrderID implements Event.
func (e AcknowledgementSent) OrderID() kernel.OrderID { return e.orderID }

// OccurredAt implements Event.
func (e AcknowledgementSent) OccurredAt() time.Time { return e.occurredAt }

// EmailAddress returns the address the acknowledgement was sent to.
func (e AcknowledgementSent) EmailAddress() kernel.EmailAddress { return e.emailAddress }

func (AcknowledgementSent) isPlaceOrderEvent() {}

// OrderPlaced records a fully validated and priced order. Exactly one is
// emitted for every successful workflow run; shipping consumes it.
type OrderPlaced struct {
	priced     PricedOrder
	occurredAt time.Time
}

// NewOrderPlaced creates the order-placed fact for a priced order.
func NewOrderPlaced(priced PricedOrder) OrderPlaced {
	return OrderPlaced{
		priced:     priced,
		occurredAt: time.Now().UTC(),
	}
}

// EventType implements Event.
func (e OrderPlaced) EventType() string { return EventTypeOrderPlaced }

// OrderID implements Event.
func (e OrderPlaced) OrderID() kernel.OrderID { return e.priced.OrderID() }

// OccurredAt implements Event.
func (e OrderPlaced) OccurredAt() time.Time { return e.occurredAt }

// PricedOrder returns the full priced order the event describes.
func (e OrderPlaced) PricedOrder() PricedOrder { return e.priced }

func (OrderPlaced) isPlaceOrderEvent() {}

// BillableOrderPlaced records that an order has a positive amount to bill;
// billing consumes it. Zero-amount orders produce no billing event.
type BillableOrderPlaced struct {
	orderID        kernel.OrderID
	billingAddress Address
	amountToBill   kernel.BillingAmount
	occurredAt     time.Time
}

// NewBillableOrderPlaced creates the billing fact for an order.
func NewBillableOrderPlaced(
	orderID kernel.OrderID,
	billingAddress Address,
	amountToBill kernel.BillingAmount,
) BillableOrderPlaced {
	return BillableOrderPlaced{
		orderID:        orderID,
		billingAddress: billingAddress,
		amountToBill:   amountToBill,
		occurredAt:     time.Now().UTC(),
	}
}

// EventType implements Event.
func (e BillableOrderPlaced) EventType() string { return EventTypeBillableOrderPlaced }

// OrderID implements Event.
func (e BillableOrderPlaced) OrderID() kernel.OrderID { return e.orderID }

// OccurredAt implements Event.
func (e BillableOrderPlaced) OccurredAt() time.Time { return e.occurredAt }

// BillingAddress returns the address to bill.
func (e BillableOrderPlaced) BillingAddress() Address { return e.billingAddress }

// AmountToBill returns the amount to bill.
func (e BillableOrderPlaced) AmountToBill() kernel.BillingAmount { return e.amountToBill }

func (BillableOrderPlaced) isPlaceOrderEvent() {}
