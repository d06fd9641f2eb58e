package ports

import (
	"ordertaking/internal/core/domain/model/kernel"
)

// ProductCatalog is the catalog collaborator the workflow consults. Both
// lookups are synchronous and pure from the core's point of view.
type ProductCatalog interface {
	// Exists reports whether the product code is present in the catalog.
	// The validation stage rejects lines whose code is absent.
	Exists(code kernel.ProductCode) bool

	// Price returns the unit price for a product code. Price lookup is
	// assumed total at the pricing layer: every code that passed the
	// existence check has a price. An error therefore signals a wiring
	// bug (a code that was never checked), not a domain outcome.
	Price(code kernel.ProductCode) (kernel.Price, error)
}
