package http

import (
	"time"

	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/order"
)

// Wire shapes of the HTTP API. The request deliberately mirrors
// UnvalidatedOrder: the API accepts anything and lets the workflow decide.

// AddressRequest is an address as submitted by the caller.
type AddressRequest struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// OrderLineRequest is one order line as submitted by the caller.
type OrderLineRequest struct {
	OrderLineID string  `json:"orderLineId"`
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	OrderID         string             `json:"orderId"`
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	EmailAddress    string             `json:"emailAddress"`
	ShippingAddress AddressRequest     `json:"shippingAddress"`
	BillingAddress  AddressRequest     `json:"billingAddress"`
	Lines           []OrderLineRequest `json:"lines"`
}

// EventResponse describes one emitted domain event.
type EventResponse struct {
	EventType  string    `json:"eventType"`
	OrderID    string    `json:"orderId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// PlaceOrderResponse is the success body of POST /api/v1/orders. Events
// appear in emission order.
type PlaceOrderResponse struct {
	OrderID string          `json:"orderId"`
	Events  []EventResponse `json:"events"`
}

// AddressResponse is a stored address returned by the read API.
type AddressResponse struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// OrderLineResponse is one stored priced line.
type OrderLineResponse struct {
	OrderLineID string  `json:"orderLineId"`
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
	LinePrice   float64 `json:"linePrice"`
}

// GetOrderResponse is the body of GET /api/v1/orders/:id.
type GetOrderResponse struct {
	OrderID         string              `json:"orderId"`
	FirstName       string              `json:"firstName"`
	LastName        string              `json:"lastName"`
	EmailAddress    string              `json:"emailAddress"`
	ShippingAddress AddressResponse     `json:"shippingAddress"`
	BillingAddress  AddressResponse     `json:"billingAddress"`
	AmountToBill    float64             `json:"amountToBill"`
	Lines           []OrderLineResponse `json:"lines"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toUnvalidatedAddress(req AddressRequest) order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		AddressLine3: req.AddressLine3,
		AddressLine4: req.AddressLine4,
		City:         req.City,
		ZipCode:      req.ZipCode,
	}
}

func toUnvalidatedOrder(req PlaceOrderRequest) order.UnvalidatedOrder {
	lines := make([]order.UnvalidatedOrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, order.UnvalidatedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		})
	}

	return order.UnvalidatedOrder{
		OrderID: req.OrderID,
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			EmailAddress: req.EmailAddress,
		},
		ShippingAddress: toUnvalidatedAddress(req.ShippingAddress),
		BillingAddress:  toUnvalidatedAddress(req.BillingAddress),
		Lines:           lines,
	}
}

func toEventResponses(events []order.Event) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, EventResponse{
			EventType:  event.EventType(),
			OrderID:    event.OrderID().Value(),
			OccurredAt: event.OccurredAt(),
		})
	}
	return responses
}

func toGetOrderResponse(result queries.GetPlacedOrderQueryResponse) GetOrderResponse {
	lines := make([]OrderLineResponse, 0, len(result.Lines))
	for _, line := range result.Lines {
		lines = append(lines, OrderLineResponse{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
			LinePrice:   line.LinePrice,
		})
	}

	return GetOrderResponse{
		OrderID:         result.OrderID,
		FirstName:       result.FirstName,
		LastName:        result.LastName,
		EmailAddress:    result.EmailAddress,
		ShippingAddress: AddressResponse(result.ShippingAddress),
		BillingAddress:  AddressResponse(result.BillingAddress),
		AmountToBill:    result.AmountToBill,
		Lines:           lines,
	}
}
