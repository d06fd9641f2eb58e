// Package placedorderrepo provides data transfer objects and mapping functions
// for placed-order persistence. This package implements the repository pattern
// for the priced order, handling the conversion between domain values and
// database representations.
package placedorderrepo

import (
	"time"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// PlacedOrderDTO represents the database structure for persisting placed
// orders. One row per order; the lines live in their own table.
type PlacedOrderDTO struct {
	OrderID         string     `gorm:"primaryKey;type:varchar(50)"`
	FirstName       string     `gorm:"type:varchar(50)"`
	LastName        string     `gorm:"type:varchar(50)"`
	EmailAddress    string     `gorm:"type:varchar(255)"`
	ShippingAddress AddressDTO `gorm:"embedded;embeddedPrefix:ship_"`
	BillingAddress  AddressDTO `gorm:"embedded;embeddedPrefix:bill_"`
	AmountToBill    float64    `gorm:"type:numeric(10,2)"`
	PlacedAt        time.Time
}

// TableName specifies the database table name for placed orders.
func (PlacedOrderDTO) TableName() string {
	return "placed_orders"
}

// AddressDTO represents a verified address embedded in the order row.
// Optional lines are stored as empty strings.
type AddressDTO struct {
	AddressLine1 string `gorm:"type:varchar(50)"`
	AddressLine2 string `gorm:"type:varchar(50)"`
	AddressLine3 string `gorm:"type:varchar(50)"`
	AddressLine4 string `gorm:"type:varchar(50)"`
	City         string `gorm:"type:varchar(50)"`
	ZipCode      string `gorm:"type:varchar(10)"`
}

// PlacedOrderLineDTO represents one priced order line. LineNo preserves the
// submission order of the lines.
type PlacedOrderLineDTO struct {
	OrderID     string  `gorm:"primaryKey;type:varchar(50);index"`
	OrderLineID string  `gorm:"primaryKey;type:varchar(50)"`
	LineNo      int     `gorm:"type:int"`
	ProductCode string  `gorm:"type:varchar(10)"`
	Quantity    float64 `gorm:"type:numeric(10,2)"`
	LinePrice   float64 `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for placed order lines.
func (PlacedOrderLineDTO) TableName() string {
	return "placed_order_lines"
}

func addressFromDomain(address order.Address) AddressDTO {
	return AddressDTO{
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

// fromDomain converts a priced order to its database representation.
func fromDomain(priced order.PricedOrder) (PlacedOrderDTO, []PlacedOrderLineDTO) {
	dto := PlacedOrderDTO{
		OrderID:         priced.OrderID().Value(),
		FirstName:       priced.CustomerInfo().Name().FirstName().Value(),
		LastName:        priced.CustomerInfo().Name().LastName().Value(),
		EmailAddress:    priced.CustomerInfo().Email().Value(),
		ShippingAddress: addressFromDomain(priced.ShippingAddress()),
		BillingAddress:  addressFromDomain(priced.BillingAddress()),
		AmountToBill:    priced.AmountToBill().Value(),
		PlacedAt:        time.Now().UTC(),
	}

	lines := priced.Lines()
	lineDTOs := make([]PlacedOrderLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, PlacedOrderLineDTO{
			OrderID:     dto.OrderID,
			OrderLineID: line.OrderLineID().Value(),
			LineNo:      i,
			ProductCode: line.ProductCode().Value(),
			Quantity:    line.Quantity().Value(),
			LinePrice:   line.LinePrice().Value(),
		})
	}

	return dto, lineDTOs
}

func addressToDomain(paramPrefix string, dto AddressDTO) (order.Address, error) {
	line1, err := kernel.NewString50(paramPrefix+".AddressLine1", dto.AddressLine1)
	if err != nil {
		return order.Address{}, err
	}
	line2, err := kernel.NewOptionalString50(paramPrefix+".AddressLine2", dto.AddressLine2)
	if err != nil {
		return order.Address{}, err
	}
	line3, err := kernel.NewOptionalString50(paramPrefix+".AddressLine3", dto.AddressLine3)
	if err != nil {
		return order.Address{}, err
	}
	line4, err := kernel.NewOptionalString50(paramPrefix+".AddressLine4", dto.AddressLine4)
	if err != nil {
		return order.Address{}, err
	}
	city, err := kernel.NewString50(paramPrefix+".City", dto.City)
	if err != nil {
		return order.Address{}, err
	}
	zip, err := kernel.NewZipCode(paramPrefix+".ZipCode", dto.ZipCode)
	if err != nil {
		return order.Address{}, err
	}

	return order.NewAddress(line1, line2, line3, line4, city, zip)
}

// toDomain converts database rows back to a priced order, rebuilding every
// value through the kernel constructors so a corrupted row cannot produce an
// invalid domain value.
func toDomain(dto PlacedOrderDTO, lineDTOs []PlacedOrderLineDTO) (order.PricedOrder, error) {
	orderID, err := kernel.NewOrderID("OrderId", dto.OrderID)
	if err != nil {
		return order.PricedOrder{}, err
	}

	firstName, err := kernel.NewString50("FirstName", dto.FirstName)
	if err != nil {
		return order.PricedOrder{}, err
	}
	lastName, err := kernel.NewString50("LastName", dto.LastName)
	if err != nil {
		return order.PricedOrder{}, err
	}
	email, err := kernel.NewEmailAddress("EmailAddress", dto.EmailAddress)
	if err != nil {
		return order.PricedOrder{}, err
	}
	name, err := order.NewPersonName(firstName, lastName)
	if err != nil {
		return order.PricedOrder{}, err
	}
	customerInfo, err := order.NewCustomerInfo(name, email)
	if err != nil {
		return order.PricedOrder{}, err
	}

	shippingAddress, err := addressToDomain("ShippingAddress", dto.ShippingAddress)
	if err != nil {
		return order.PricedOrder{}, err
	}
	billingAddress, err := addressToDomain("BillingAddress", dto.BillingAddress)
	if err != nil {
		return order.PricedOrder{}, err
	}

	validatedLines := make([]order.ValidatedOrderLine, 0, len(lineDTOs))
	linePrices := make([]kernel.Price, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		lineID, lineErr := kernel.NewOrderLineID("OrderLineId", lineDTO.OrderLineID)
		if lineErr != nil {
			return order.PricedOrder{}, lineErr
		}
		code, lineErr := kernel.NewProductCode("ProductCode", lineDTO.ProductCode)
		if lineErr != nil {
			return order.PricedOrder{}, lineErr
		}
		quantity, lineErr := kernel.NewOrderQuantity("Quantity", code, lineDTO.Quantity)
		if lineErr != nil {
			return order.PricedOrder{}, lineErr
		}
		line, lineErr := order.NewValidatedOrderLine(lineID, code, quantity)
		if lineErr != nil {
			return order.PricedOrder{}, lineErr
		}
		price, lineErr := kernel.NewPrice("LinePrice", lineDTO.LinePrice)
		if lineErr != nil {
			return order.PricedOrder{}, lineErr
		}

		validatedLines = append(validatedLines, line)
		linePrices = append(linePrices, price)
	}

	validated, err := order.NewValidatedOrder(orderID, customerInfo, shippingAddress, billingAddress, validatedLines)
	if err != nil {
		return order.PricedOrder{}, err
	}

	pricedLines := make([]order.PricedOrderLine, 0, len(validatedLines))
	for i, line := range validatedLines {
		pricedLine, lineErr := order.NewPricedOrderLine(line, linePrices[i])
		if lineErr != nil {
			return order.PricedOrder{}, lineErr
		}
		pricedLines = append(pricedLines, pricedLine)
	}

	amountToBill, err := kernel.NewBillingAmount("AmountToBill", dto.AmountToBill)
	if err != nil {
		return order.PricedOrder{}, err
	}

	return order.NewPricedOrder(validated, pricedLines, amountToBill)
}
