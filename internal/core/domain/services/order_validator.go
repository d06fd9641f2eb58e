package services

import (
	"context"
	"errors"
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"
)

// OrderValidator turns raw, untrusted order input into a ValidatedOrder. It
// consults two collaborators: the product catalog for code existence and the
// address-verification service for address existence.
//
// Validation is fail-fast and ordered: order id, customer first name, last
// name, email, shipping address, billing address, then the order lines left
// to right. The first violation aborts the stage; later fields and lines are
// not evaluated.
type OrderValidator struct {
	catalog ports.ProductCatalog
	checker ports.AddressChecker
}

// NewOrderValidator creates a validator over the given collaborators.
func NewOrderValidator(catalog ports.ProductCatalog, checker ports.AddressChecker) OrderValidator {
	return OrderValidator{
		catalog: catalog,
		checker: checker,
	}
}

// Validate runs the validation stage. The two address checks suspend on the
// collaborator and are issued sequentially, shipping before billing. On
// success every field of the result is a constructed domain value; on failure
// the error describes the first problem found.
func (v OrderValidator) Validate(ctx context.Context, raw order.UnvalidatedOrder) (order.ValidatedOrder, error) {
	orderID, err := kernel.NewOrderID("OrderId", raw.OrderID)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	customerInfo, err := v.validateCustomerInfo(raw.CustomerInfo)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	shippingAddress, err := v.validateAddress(ctx, "ShippingAddress", raw.ShippingAddress)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	billingAddress, err := v.validateAddress(ctx, "BillingAddress", raw.BillingAddress)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	lines := make([]order.ValidatedOrderLine, 0, len(raw.Lines))
	for _, rawLine := range raw.Lines {
		line, lineErr := v.validateLine(rawLine)
		if lineErr != nil {
			return order.ValidatedOrder{}, lineErr
		}
		lines = append(lines, line)
	}

	return order.NewValidatedOrder(orderID, customerInfo, shippingAddress, billingAddress, lines)
}

func (v OrderValidator) validateCustomerInfo(raw order.UnvalidatedCustomerInfo) (order.CustomerInfo, error) {
	firstName, err := kernel.NewString50("FirstName", raw.FirstName)
	if err != nil {
		return order.CustomerInfo{}, err
	}

	lastName, err := kernel.NewString50("LastName", raw.LastName)
	if err != nil {
		return order.CustomerInfo{}, err
	}

	email, err := kernel.NewEmailAddress("EmailAddress", raw.EmailAddress)
	if err != nil {
		return order.CustomerInfo{}, err
	}

	name, err := order.NewPersonName(firstName, lastName)
	if err != nil {
		return order.CustomerInfo{}, err
	}

	return order.NewCustomerInfo(name, email)
}

// validateAddress asks the verification collaborator whether the address
// exists, then re-validates every field of the confirmed address through the
// kernel types. The collaborator's two domain rejections map to fixed
// messages; any other collaborator error passes through untouched so the
// orchestrator can classify it as a remote-service failure.
func (v OrderValidator) validateAddress(
	ctx context.Context,
	paramPrefix string,
	raw order.UnvalidatedAddress,
) (order.Address, error) {
	checked, err := v.checker.Check(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrAddressInvalidFormat):
			return order.Address{}, errs.NewValueIsInvalidErrorWithCause(paramPrefix, ports.ErrAddressInvalidFormat)
		case errors.Is(err, ports.ErrAddressNotFound):
			return order.Address{}, errs.NewValueIsInvalidErrorWithCause(paramPrefix, ports.ErrAddressNotFound)
		default:
			return order.Address{}, err
		}
	}

	confirmed := checked.Address()

	line1, err := kernel.NewString50(paramPrefix+".AddressLine1", confirmed.AddressLine1)
	if err != nil {
		return order.Address{}, err
	}
	line2, err := kernel.NewOptionalString50(paramPrefix+".AddressLine2", confirmed.AddressLine2)
	if err != nil {
		return order.Address{}, err
	}
	line3, err := kernel.NewOptionalString50(paramPrefix+".AddressLine3", confirmed.AddressLine3)
	if err != nil {
		return order.Address{}, err
	}
	line4, err := kernel.NewOptionalString50(paramPrefix+".AddressLine4", confirmed.AddressLine4)
	if err != nil {
		return order.Address{}, err
	}
	city, err := kernel.NewString50(paramPrefix+".City", confirmed.City)
	if err != nil {
		return order.Address{}, err
	}
	zip, err := kernel.NewZipCode(paramPrefix+".ZipCode", confirmed.ZipCode)
	if err != nil {
		return order.Address{}, err
	}

	return order.NewAddress(line1, line2, line3, line4, city, zip)
}

func (v OrderValidator) validateLine(raw order.UnvalidatedOrderLine) (order.ValidatedOrderLine, error) {
	lineID, err := kernel.NewOrderLineID("OrderLineId", raw.OrderLineID)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}

	code, err := kernel.NewProductCode("ProductCode", raw.ProductCode)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}

	if !v.catalog.Exists(code) {
		return order.ValidatedOrderLine{}, errs.NewObjectNotFoundErrorWithCause(
			"ProductCode", code.Value(),
			fmt.Errorf("product code %q does not exist in the catalog", code.Value()))
	}

	quantity, err := kernel.NewOrderQuantity("Quantity", code, raw.Quantity)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}

	return order.NewValidatedOrderLine(lineID, code, quantity)
}
