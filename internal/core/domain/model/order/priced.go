package order

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrPricedOrderLineIsNotConstructed is returned when using a PricedOrderLine
// that was not created via NewPricedOrderLine.
var ErrPricedOrderLineIsNotConstructed = errs.NewValueIsRequiredError(
	"PricedOrderLine must be created via NewPricedOrderLine constructor")

// ErrPricedOrderIsNotConstructed is returned when using a PricedOrder that was
// not created via NewPricedOrder.
var ErrPricedOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"PricedOrder must be created via NewPricedOrder constructor")

// PricedOrderLine is a validated order line with its computed line price.
type PricedOrderLine struct { //nolint:recvcheck //using for validation
	line      ValidatedOrderLine
	linePrice kernel.Price
	guard     guard.ConstructorGuard
}

// NewPricedOrderLine creates a PricedOrderLine from a validated line and its
// computed price.
func NewPricedOrderLine(line ValidatedOrderLine, linePrice kernel.Price) (PricedOrderLine, error) {
	l := PricedOrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setLine(line),
		l.setLinePrice(linePrice),
	); err != nil {
		return PricedOrderLine{}, err
	}

	return l, nil
}

// Validate checks that the PricedOrderLine was created via its constructor.
func (l PricedOrderLine) Validate() error {
	return l.guard.Validate(ErrPricedOrderLineIsNotConstructed)
}

// OrderLineID returns the line identifier.
func (l PricedOrderLine) OrderLineID() kernel.OrderLineID {
	return l.line.OrderLineID()
}

// ProductCode returns the product code.
func (l PricedOrderLine) ProductCode() kernel.ProductCode {
	return l.line.ProductCode()
}

// Quantity returns the order quantity.
func (l PricedOrderLine) Quantity() kernel.OrderQuantity {
	return l.line.Quantity()
}

// LinePrice returns the computed price for the line.
func (l PricedOrderLine) LinePrice() kernel.Price {
	return l.linePrice
}

func (l *PricedOrderLine) setLine(line ValidatedOrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	l.line = line
	return nil
}

func (l *PricedOrderLine) setLinePrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.linePrice = price
	return nil
}

// PricedOrder is a validated order extended with per-line prices and the
// bounded order total. The only way to obtain one is the pricing stage.
type PricedOrder struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	amountToBill    kernel.BillingAmount
	lines           []PricedOrderLine
	guard           guard.ConstructorGuard
}

// NewPricedOrder creates a PricedOrder from a validated order's parts, the
// priced lines, and the computed total.
func NewPricedOrder(
	validated ValidatedOrder,
	lines []PricedOrderLine,
	amountToBill kernel.BillingAmount,
) (PricedOrder, error) {
	if err := validated.Validate(); err != nil {
		return PricedOrder{}, err
	}

	o := PricedOrder{
		orderID:         validated.OrderID(),
		customerInfo:    validated.CustomerInfo(),
		shippingAddress: validated.ShippingAddress(),
		billingAddress:  validated.BillingAddress(),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setAmountToBill(amountToBill),
		o.setLines(lines),
	); err != nil {
		return PricedOrder{}, err
	}

	return o, nil
}

// Validate checks that the PricedOrder was created via its constructor.
func (o PricedOrder) Validate() error {
	return o.guard.Validate(ErrPricedOrderIsNotConstructed)
}

// OrderID returns the order identifier.
func (o PricedOrder) OrderID() kernel.OrderID {
	return o.orderID
}

// CustomerInfo returns the customer details.
func (o PricedOrder) CustomerInfo() CustomerInfo {
	return o.customerInfo
}

// ShippingAddress returns the verified shipping address.
func (o PricedOrder) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the verified billing address.
func (o PricedOrder) BillingAddress() Address {
	return o.billingAddress
}

// AmountToBill returns the bounded order total.
func (o PricedOrder) AmountToBill() kernel.BillingAmount {
	return o.amountToBill
}

// Lines returns a copy of the priced order lines.
func (o PricedOrder) Lines() []PricedOrderLine {
	lines := make([]PricedOrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *PricedOrder) setAmountToBill(amount kernel.BillingAmount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.amountToBill = amount
	return nil
}

func (o *PricedOrder) setLines(lines []PricedOrderLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]PricedOrderLine, len(lines))
	copy(o.lines, lines)
	return nil
}
