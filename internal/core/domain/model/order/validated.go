package order

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrValidatedOrderLineIsNotConstructed is returned when using a
// ValidatedOrderLine that was not created via NewValidatedOrderLine.
var ErrValidatedOrderLineIsNotConstructed = errs.NewValueIsRequiredError(
	"ValidatedOrderLine must be created via NewValidatedOrderLine constructor")

// ErrValidatedOrderIsNotConstructed is returned when using a ValidatedOrder
// that was not created via NewValidatedOrder.
var ErrValidatedOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"ValidatedOrder must be created via NewValidatedOrder constructor")

// ValidatedOrderLine is one line of a validated order. Its product code has
// passed the catalog existence check and its quantity is variant-locked to
// that code.
type ValidatedOrderLine struct { //nolint:recvcheck //using for validation
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
	guard       guard.ConstructorGuard
}

// NewValidatedOrderLine creates a ValidatedOrderLine from already-constructed
// parts.
func NewValidatedOrderLine(
	orderLineID kernel.OrderLineID,
	productCode kernel.ProductCode,
	quantity kernel.OrderQuantity,
) (ValidatedOrderLine, error) {
	l := ValidatedOrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setOrderLineID(orderLineID),
		l.setProductCode(productCode),
		l.setQuantity(quantity),
	); err != nil {
		return ValidatedOrderLine{}, err
	}

	return l, nil
}

// Validate checks that the ValidatedOrderLine was created via its constructor.
func (l ValidatedOrderLine) Validate() error {
	return l.guard.Validate(ErrValidatedOrderLineIsNotConstructed)
}

// OrderLineID returns the line identifier.
func (l ValidatedOrderLine) OrderLineID() kernel.OrderLineID {
	return l.orderLineID
}

// ProductCode returns the product code.
func (l ValidatedOrderLine) ProductCode() kernel.ProductCode {
	return l.productCode
}

// Quantity returns the order quantity.
func (l ValidatedOrderLine) Quantity() kernel.OrderQuantity {
	return l.quantity
}

func (l *ValidatedOrderLine) setOrderLineID(id kernel.OrderLineID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.orderLineID = id
	return nil
}

func (l *ValidatedOrderLine) setProductCode(code kernel.ProductCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	l.productCode = code
	return nil
}

func (l *ValidatedOrderLine) setQuantity(quantity kernel.OrderQuantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	l.quantity = quantity
	return nil
}

// ValidatedOrder is an order whose every field has been constructed through
// the kernel constrained types, whose addresses have passed the external
// existence check, and whose product codes exist in the catalog. The only way
// to obtain one is the validation stage.
type ValidatedOrder struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	lines           []ValidatedOrderLine
	guard           guard.ConstructorGuard
}

// NewValidatedOrder creates a ValidatedOrder from already-constructed parts.
// Every part must itself have been properly constructed.
func NewValidatedOrder(
	orderID kernel.OrderID,
	customerInfo CustomerInfo,
	shippingAddress Address,
	billingAddress Address,
	lines []ValidatedOrderLine,
) (ValidatedOrder, error) {
	o := ValidatedOrder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setOrderID(orderID),
		o.setCustomerInfo(customerInfo),
		o.setAddresses(shippingAddress, billingAddress),
		o.setLines(lines),
	); err != nil {
		return ValidatedOrder{}, err
	}

	return o, nil
}

// Validate checks that the ValidatedOrder was created via its constructor.
func (o ValidatedOrder) Validate() error {
	return o.guard.Validate(ErrValidatedOrderIsNotConstructed)
}

// OrderID returns the order identifier.
func (o ValidatedOrder) OrderID() kernel.OrderID {
	return o.orderID
}

// CustomerInfo returns the customer details.
func (o ValidatedOrder) CustomerInfo() CustomerInfo {
	return o.customerInfo
}

// ShippingAddress returns the verified shipping address.
func (o ValidatedOrder) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the verified billing address.
func (o ValidatedOrder) BillingAddress() Address {
	return o.billingAddress
}

// Lines returns a copy of the validated order lines.
func (o ValidatedOrder) Lines() []ValidatedOrderLine {
	lines := make([]ValidatedOrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *ValidatedOrder) setOrderID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.orderID = id
	return nil
}

func (o *ValidatedOrder) setCustomerInfo(info CustomerInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}
	o.customerInfo = info
	return nil
}

func (o *ValidatedOrder) setAddresses(shipping, billing Address) error {
	if err := errors.Join(shipping.Validate(), billing.Validate()); err != nil {
		return err
	}
	o.shippingAddress = shipping
	o.billingAddress = billing
	return nil
}

func (o *ValidatedOrder) setLines(lines []ValidatedOrderLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]ValidatedOrderLine, len(lines))
	copy(o.lines, lines)
	return nil
}
