package order_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildValidatedLine(t *testing.T, lineID, code string, qty float64) order.ValidatedOrderLine {
	t.Helper()

	id, err := kernel.NewOrderLineID("OrderLineId", lineID)
	require.NoError(t, err)
	productCode, err := kernel.NewProductCode("ProductCode", code)
	require.NoError(t, err)
	quantity, err := kernel.NewOrderQuantity("Quantity", productCode, qty)
	require.NoError(t, err)

	line, err := order.NewValidatedOrderLine(id, productCode, quantity)
	require.NoError(t, err)
	return line
}

func buildValidatedOrder(t *testing.T, lines ...order.ValidatedOrderLine) order.ValidatedOrder {
	t.Helper()

	orderID, err := kernel.NewOrderID("OrderId", "ORD-0001")
	require.NoError(t, err)

	name, err := order.NewPersonName(
		mustString50(t, "FirstName", "Ada"),
		mustString50(t, "LastName", "Lovelace"),
	)
	require.NoError(t, err)
	info, err := order.NewCustomerInfo(name, mustEmail(t, "ada@example.com"))
	require.NoError(t, err)

	addr, err := order.NewAddress(
		mustString50(t, "AddressLine1", "1 Analytical Row"),
		mustOptional(t, "AddressLine2", ""),
		mustOptional(t, "AddressLine3", ""),
		mustOptional(t, "AddressLine4", ""),
		mustString50(t, "City", "London"),
		mustZip(t, "12345"),
	)
	require.NoError(t, err)

	validated, err := order.NewValidatedOrder(orderID, info, addr, addr, lines)
	require.NoError(t, err)
	return validated
}

func TestNewValidatedOrderLine(t *testing.T) {
	t.Run("valid parts construct", func(t *testing.T) {
		line := buildValidatedLine(t, "line-1", "W1234", 5)
		assert.Equal(t, "line-1", line.OrderLineID().Value())
		assert.Equal(t, "W1234", line.ProductCode().Value())
		assert.InDelta(t, 5.0, line.Quantity().Value(), 1e-9)
		assert.NoError(t, line.Validate())
	})

	t.Run("unconstructed quantity is rejected", func(t *testing.T) {
		id, err := kernel.NewOrderLineID("OrderLineId", "line-1")
		require.NoError(t, err)
		code, err := kernel.NewProductCode("ProductCode", "W1234")
		require.NoError(t, err)

		var quantity kernel.OrderQuantity
		_, err = order.NewValidatedOrderLine(id, code, quantity)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var line order.ValidatedOrderLine
		assert.Equal(t, order.ErrValidatedOrderLineIsNotConstructed, line.Validate())
	})
}

func TestNewValidatedOrder(t *testing.T) {
	t.Run("valid parts construct", func(t *testing.T) {
		line := buildValidatedLine(t, "line-1", "W1234", 5)
		validated := buildValidatedOrder(t, line)

		assert.Equal(t, "ORD-0001", validated.OrderID().Value())
		assert.Len(t, validated.Lines(), 1)
		assert.NoError(t, validated.Validate())
	})

	t.Run("lines accessor returns a copy", func(t *testing.T) {
		line := buildValidatedLine(t, "line-1", "W1234", 5)
		validated := buildValidatedOrder(t, line)

		lines := validated.Lines()
		lines[0] = order.ValidatedOrderLine{}

		assert.NoError(t, validated.Lines()[0].Validate())
	})

	t.Run("unconstructed line is rejected", func(t *testing.T) {
		orderID, err := kernel.NewOrderID("OrderId", "ORD-0001")
		require.NoError(t, err)
		validated := buildValidatedOrder(t)

		var badLine order.ValidatedOrderLine
		_, err = order.NewValidatedOrder(
			orderID,
			validated.CustomerInfo(),
			validated.ShippingAddress(),
			validated.BillingAddress(),
			[]order.ValidatedOrderLine{badLine},
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.ValidatedOrder
		assert.Equal(t, order.ErrValidatedOrderIsNotConstructed, o.Validate())
	})
}

func TestNewPricedOrder(t *testing.T) {
	mustPrice := func(v float64) kernel.Price {
		p, err := kernel.NewPrice("Price", v)
		require.NoError(t, err)
		return p
	}

	t.Run("valid parts construct", func(t *testing.T) {
		line := buildValidatedLine(t, "line-1", "W1234", 5)
		validated := buildValidatedOrder(t, line)

		pricedLine, err := order.NewPricedOrderLine(line, mustPrice(50.0))
		require.NoError(t, err)

		total, err := kernel.SumPrices("AmountToBill", []kernel.Price{pricedLine.LinePrice()})
		require.NoError(t, err)

		priced, err := order.NewPricedOrder(validated, []order.PricedOrderLine{pricedLine}, total)
		require.NoError(t, err)

		assert.Equal(t, validated.OrderID(), priced.OrderID())
		assert.InDelta(t, 50.0, priced.AmountToBill().Value(), 1e-9)
		require.Len(t, priced.Lines(), 1)
		assert.InDelta(t, 50.0, priced.Lines()[0].LinePrice().Value(), 1e-9)
		assert.NoError(t, priced.Validate())
	})

	t.Run("unvalidated order is rejected", func(t *testing.T) {
		var validated order.ValidatedOrder
		total, err := kernel.NewBillingAmount("AmountToBill", 0)
		require.NoError(t, err)

		_, err = order.NewPricedOrder(validated, nil, total)
		assert.Equal(t, order.ErrValidatedOrderIsNotConstructed, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var priced order.PricedOrder
		assert.Equal(t, order.ErrPricedOrderIsNotConstructed, priced.Validate())
	})
}
