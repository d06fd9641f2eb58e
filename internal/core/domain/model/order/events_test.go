package order_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents(t *testing.T) {
	line := buildValidatedLine(t, "line-1", "W1234", 5)
	validated := buildValidatedOrder(t, line)

	price, err := kernel.NewPrice("Price", 50.0)
	require.NoError(t, err)
	pricedLine, err := order.NewPricedOrderLine(line, price)
	require.NoError(t, err)
	total, err := kernel.SumPrices("AmountToBill", []kernel.Price{price})
	require.NoError(t, err)
	priced, err := order.NewPricedOrder(validated, []order.PricedOrderLine{pricedLine}, total)
	require.NoError(t, err)

	t.Run("order placed", func(t *testing.T) {
		event := order.NewOrderPlaced(priced)

		assert.Equal(t, order.EventTypeOrderPlaced, event.EventType())
		assert.True(t, event.OrderID().IsEqual(priced.OrderID()))
		assert.False(t, event.OccurredAt().IsZero())
		assert.InDelta(t, 50.0, event.PricedOrder().AmountToBill().Value(), 1e-9)
	})

	t.Run("billable order placed", func(t *testing.T) {
		event := order.NewBillableOrderPlaced(priced.OrderID(), priced.BillingAddress(), priced.AmountToBill())

		assert.Equal(t, order.EventTypeBillableOrderPlaced, event.EventType())
		assert.True(t, event.OrderID().IsEqual(priced.OrderID()))
		assert.InDelta(t, 50.0, event.AmountToBill().Value(), 1e-9)
		assert.Equal(t, "London", event.BillingAddress().City().Value())
	})

	t.Run("acknowledgement sent", func(t *testing.T) {
		event := order.NewAcknowledgementSent(priced.OrderID(), priced.CustomerInfo().Email())

		assert.Equal(t, order.EventTypeAcknowledgementSent, event.EventType())
		assert.Equal(t, "ada@example.com", event.EmailAddress().Value())
	})

	t.Run("all variants satisfy the event interface", func(t *testing.T) {
		events := []order.Event{
			order.NewAcknowledgementSent(priced.OrderID(), priced.CustomerInfo().Email()),
			order.NewOrderPlaced(priced),
			order.NewBillableOrderPlaced(priced.OrderID(), priced.BillingAddress(), priced.AmountToBill()),
		}
		for _, e := range events {
			assert.NotEmpty(t, e.EventType())
			assert.True(t, e.OrderID().IsEqual(priced.OrderID()))
		}
	})
}
