// Package queries contains read operations that bypass the domain model.
// Implements the query side of the CQRS architecture: handlers read the
// persistence schema directly and return plain response structures shaped for
// the caller, not domain values.
package queries

import (
	"errors"

	"ordertaking/internal/pkg/guard"
)

var (
	ErrGetPlacedOrderQueryIsNotConstructed = errors.New(
		"GetPlacedOrderQuery must be created via NewGetPlacedOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// GetPlacedOrderQuery retrieves one placed order by its id.
//
// Example:
//
//	query, err := NewGetPlacedOrderQuery("ORD-0001")
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetPlacedOrderQueryHandler(db)
//	placed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get placed order: %w", err)
//	}
//	fmt.Printf("order %s bills %.2f\n", placed.OrderID, placed.AmountToBill)
type GetPlacedOrderQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetPlacedOrderQuery creates a query for the given order id.
// Returns ErrOrderIDIsRequired when the id is empty.
func NewGetPlacedOrderQuery(orderID string) (GetPlacedOrderQuery, error) {
	query := GetPlacedOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetPlacedOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPlacedOrderQueryIsNotConstructed if validation fails.
func (q GetPlacedOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPlacedOrderQueryIsNotConstructed)
}

// OrderID returns the id of the order to look up.
func (q GetPlacedOrderQuery) OrderID() string {
	return q.orderID
}

func (q *GetPlacedOrderQuery) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	q.orderID = orderID
	return nil
}

// AddressResponse is the read-side shape of a verified address.
type AddressResponse struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

// PlacedOrderLineResponse is the read-side shape of one priced order line.
type PlacedOrderLineResponse struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
	LinePrice   float64
}

// GetPlacedOrderQueryResponse represents a placed order as stored, with its
// lines in submission order.
type GetPlacedOrderQueryResponse struct {
	OrderID         string
	FirstName       string
	LastName        string
	EmailAddress    string
	ShippingAddress AddressResponse
	BillingAddress  AddressResponse
	AmountToBill    float64
	Lines           []PlacedOrderLineResponse
}
