package outboxrepo

import (
	"encoding/json"
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// Wire shapes of the event payloads. Consumers on the other side of the
// broker parse these, so field names are part of the contract.

type addressPayload struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

type orderLinePayload struct {
	OrderLineID string  `json:"orderLineId"`
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
	LinePrice   float64 `json:"linePrice"`
}

type acknowledgementSentPayload struct {
	OrderID      string `json:"orderId"`
	EmailAddress string `json:"emailAddress"`
}

type orderPlacedPayload struct {
	OrderID         string             `json:"orderId"`
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	EmailAddress    string             `json:"emailAddress"`
	ShippingAddress addressPayload     `json:"shippingAddress"`
	BillingAddress  addressPayload     `json:"billingAddress"`
	AmountToBill    float64            `json:"amountToBill"`
	Lines           []orderLinePayload `json:"lines"`
}

type billableOrderPlacedPayload struct {
	OrderID        string         `json:"orderId"`
	BillingAddress addressPayload `json:"billingAddress"`
	AmountToBill   float64        `json:"amountToBill"`
}

func addressToPayload(address order.Address) addressPayload {
	return addressPayload{
		AddressLine1: address.AddressLine1().Value(),
		AddressLine2: optionalValue(address.AddressLine2()),
		AddressLine3: optionalValue(address.AddressLine3()),
		AddressLine4: optionalValue(address.AddressLine4()),
		City:         address.City().Value(),
		ZipCode:      address.ZipCode().Value(),
	}
}

func optionalValue(s kernel.OptionalString50) string {
	if !s.HasValue() {
		return ""
	}
	return s.Value()
}

// encodeEvent serializes a domain event into its JSON wire payload. The event
// set is closed, so an unknown concrete type is a programming error.
func encodeEvent(evt order.Event) ([]byte, error) {
	switch e := evt.(type) {
	case order.AcknowledgementSent:
		return json.Marshal(acknowledgementSentPayload{
			OrderID:      e.OrderID().Value(),
			EmailAddress: e.EmailAddress().Value(),
		})

	case order.OrderPlaced:
		priced := e.PricedOrder()
		lines := priced.Lines()
		linePayloads := make([]orderLinePayload, 0, len(lines))
		for _, line := range lines {
			linePayloads = append(linePayloads, orderLinePayload{
				OrderLineID: line.OrderLineID().Value(),
				ProductCode: line.ProductCode().Value(),
				Quantity:    line.Quantity().Value(),
				LinePrice:   line.LinePrice().Value(),
			})
		}

		return json.Marshal(orderPlacedPayload{
			OrderID:         priced.OrderID().Value(),
			FirstName:       priced.CustomerInfo().Name().FirstName().Value(),
			LastName:        priced.CustomerInfo().Name().LastName().Value(),
			EmailAddress:    priced.CustomerInfo().Email().Value(),
			ShippingAddress: addressToPayload(priced.ShippingAddress()),
			BillingAddress:  addressToPayload(priced.BillingAddress()),
			AmountToBill:    priced.AmountToBill().Value(),
			Lines:           linePayloads,
		})

	case order.BillableOrderPlaced:
		return json.Marshal(billableOrderPlacedPayload{
			OrderID:        e.OrderID().Value(),
			BillingAddress: addressToPayload(e.BillingAddress()),
			AmountToBill:   e.AmountToBill().Value(),
		})

	default:
		return nil, fmt.Errorf("unknown event type %q", evt.EventType())
	}
}
