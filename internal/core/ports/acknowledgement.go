package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// Letter is the rendered order confirmation. The core treats it as an opaque
// payload: it is produced by the renderer and consumed by the sender, nothing
// in the pipeline inspects it.
type Letter struct {
	Body string
}

// OrderAcknowledgement pairs the rendered letter with the address to deliver
// it to.
type OrderAcknowledgement struct {
	EmailAddress kernel.EmailAddress
	Letter       Letter
}

// SendResult is the delivery collaborator's verdict. NotSent is a legitimate
// outcome (e.g. a suppressed notification preference), not an error: it only
// suppresses the acknowledgement event.
type SendResult int

const (
	// NotSent means the acknowledgement was not delivered.
	NotSent SendResult = iota
	// Sent means the acknowledgement was delivered.
	Sent
)

// String returns a human-readable name for the send result.
func (r SendResult) String() string {
	if r == Sent {
		return "Sent"
	}
	return "NotSent"
}

// LetterRenderer renders the confirmation letter for a priced order.
// Synchronous and pure.
type LetterRenderer interface {
	Render(priced order.PricedOrder) Letter
}

// AcknowledgementSender attempts delivery of an acknowledgement. Synchronous
// from the core's point of view; any internal asynchrony or transport failure
// is the collaborator's concern and surfaces only as NotSent.
type AcknowledgementSender interface {
	Deliver(ctx context.Context, ack OrderAcknowledgement) SendResult
}
