// Package notifications renders and delivers order acknowledgements.
package notifications

import (
	"fmt"
	"strings"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// PlainTextRenderer renders the acknowledgement letter as plain text.
type PlainTextRenderer struct{}

// NewPlainTextRenderer creates a renderer.
func NewPlainTextRenderer() PlainTextRenderer {
	return PlainTextRenderer{}
}

// Render builds the confirmation letter for a priced order.
func (PlainTextRenderer) Render(priced order.PricedOrder) ports.Letter {
	var b strings.Builder

	name := priced.CustomerInfo().Name()
	fmt.Fprintf(&b, "Dear %s %s,\n\n", name.FirstName().Value(), name.LastName().Value())
	fmt.Fprintf(&b, "Thank you for your order %s.\n\n", priced.OrderID().Value())

	for _, line := range priced.Lines() {
		fmt.Fprintf(&b, "  %s x %.2f = %.2f\n",
			line.ProductCode().Value(), line.Quantity().Value(), line.LinePrice().Value())
	}

	fmt.Fprintf(&b, "\nAmount to bill: %.2f\n", priced.AmountToBill().Value())
	b.WriteString("\nYour order is on its way.\n")

	return ports.Letter{Body: b.String()}
}
