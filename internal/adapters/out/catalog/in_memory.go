// Package catalog provides the product catalog backing the order workflow.
// The in-memory implementation covers local runs and tests; a real deployment
// would swap in a catalog service client behind the same port.
package catalog

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
)

// InMemoryCatalog implements ProductCatalog over a fixed price list.
// Read-only after construction, safe for concurrent use.
type InMemoryCatalog struct {
	prices map[string]kernel.Price
}

// NewInMemoryCatalog creates a catalog from raw code-to-price entries. Every
// price is validated through the kernel bounds; one bad entry fails the whole
// catalog.
func NewInMemoryCatalog(entries map[string]float64) (*InMemoryCatalog, error) {
	prices := make(map[string]kernel.Price, len(entries))
	for code, value := range entries {
		price, err := kernel.NewPrice(code, value)
		if err != nil {
			return nil, err
		}
		prices[code] = price
	}

	return &InMemoryCatalog{prices: prices}, nil
}

// Exists reports whether the product code is in the catalog.
func (c *InMemoryCatalog) Exists(code kernel.ProductCode) bool {
	_, ok := c.prices[code.Value()]
	return ok
}

// Price returns the unit price for the product code.
func (c *InMemoryCatalog) Price(code kernel.ProductCode) (kernel.Price, error) {
	price, ok := c.prices[code.Value()]
	if !ok {
		return kernel.Price{}, errs.NewObjectNotFoundError("ProductCode", code.Value())
	}
	return price, nil
}
