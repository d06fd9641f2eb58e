package services

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// OrderPricer turns a ValidatedOrder into a PricedOrder using the catalog's
// price lookup. Pricing is all-or-nothing: a single line price or the grand
// total exceeding its bounds aborts the stage and discards every prior line.
type OrderPricer struct {
	catalog ports.ProductCatalog
}

// NewOrderPricer creates a pricer over the given catalog.
func NewOrderPricer(catalog ports.ProductCatalog) OrderPricer {
	return OrderPricer{
		catalog: catalog,
	}
}

// Price runs the pricing stage. Each line's price is the quantity magnitude
// times the unit price, re-validated through the Price bounds; the order
// total is the sum of all line prices, re-validated through the
// BillingAmount bounds. Price lookup is synchronous and assumed total;
// validation already confirmed every code exists.
func (p OrderPricer) Price(validated order.ValidatedOrder) (order.PricedOrder, error) {
	if err := validated.Validate(); err != nil {
		return order.PricedOrder{}, err
	}

	validatedLines := validated.Lines()
	pricedLines := make([]order.PricedOrderLine, 0, len(validatedLines))
	linePrices := make([]kernel.Price, 0, len(validatedLines))

	for _, line := range validatedLines {
		unitPrice, err := p.catalog.Price(line.ProductCode())
		if err != nil {
			return order.PricedOrder{}, err
		}

		linePrice, err := unitPrice.Multiply("LinePrice", line.Quantity().Value())
		if err != nil {
			return order.PricedOrder{}, err
		}

		pricedLine, err := order.NewPricedOrderLine(line, linePrice)
		if err != nil {
			return order.PricedOrder{}, err
		}

		pricedLines = append(pricedLines, pricedLine)
		linePrices = append(linePrices, linePrice)
	}

	amountToBill, err := kernel.SumPrices("AmountToBill", linePrices)
	if err != nil {
		return order.PricedOrder{}, err
	}

	return order.NewPricedOrder(validated, pricedLines, amountToBill)
}
