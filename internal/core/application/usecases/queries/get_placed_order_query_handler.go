package queries

import (
	"context"

	"ordertaking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPlacedOrderQueryHandler reads a placed order straight from the database.
//
// Example:
//
//	handler := NewGetPlacedOrderQueryHandler(db)
//	query, _ := NewGetPlacedOrderQuery("ORD-0001")
//
//	placed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("failed to get placed order: %v", err)
//	    return err
//	}
//	fmt.Printf("order %s has %d lines\n", placed.OrderID, len(placed.Lines))
type GetPlacedOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPlacedOrderQueryHandler creates a handler for placed-order lookups.
// Requires a GORM database connection for query execution.
func NewGetPlacedOrderQueryHandler(db *gorm.DB) GetPlacedOrderQueryHandler {
	return GetPlacedOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// with the requested id has been placed.
func (h GetPlacedOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPlacedOrderQuery,
) (GetPlacedOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlacedOrderQueryResponse{}, err
	}

	response, err := h.readHeader(ctx, query.OrderID())
	if err != nil {
		return GetPlacedOrderQueryResponse{}, err
	}

	lines, err := h.readLines(ctx, query.OrderID())
	if err != nil {
		return GetPlacedOrderQueryResponse{}, err
	}
	response.Lines = lines

	return response, nil
}

func (h GetPlacedOrderQueryHandler) readHeader(ctx context.Context, orderID string) (GetPlacedOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			first_name,
			last_name,
			email_address,
			ship_address_line1, ship_address_line2, ship_address_line3, ship_address_line4,
			ship_city, ship_zip_code,
			bill_address_line1, bill_address_line2, bill_address_line3, bill_address_line4,
			bill_city, bill_zip_code,
			amount_to_bill
		FROM placed_orders
		WHERE order_id = ?
	`, orderID).Rows()
	if err != nil {
		return GetPlacedOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetPlacedOrderQueryResponse{}, err
		}
		return GetPlacedOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", orderID)
	}

	var response GetPlacedOrderQueryResponse
	err = rows.Scan(
		&response.OrderID,
		&response.FirstName,
		&response.LastName,
		&response.EmailAddress,
		&response.ShippingAddress.AddressLine1,
		&response.ShippingAddress.AddressLine2,
		&response.ShippingAddress.AddressLine3,
		&response.ShippingAddress.AddressLine4,
		&response.ShippingAddress.City,
		&response.ShippingAddress.ZipCode,
		&response.BillingAddress.AddressLine1,
		&response.BillingAddress.AddressLine2,
		&response.BillingAddress.AddressLine3,
		&response.BillingAddress.AddressLine4,
		&response.BillingAddress.City,
		&response.BillingAddress.ZipCode,
		&response.AmountToBill,
	)
	if err != nil {
		return GetPlacedOrderQueryResponse{}, err
	}

	return response, rows.Err()
}

func (h GetPlacedOrderQueryHandler) readLines(ctx context.Context, orderID string) ([]PlacedOrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_line_id,
			product_code,
			quantity,
			line_price
		FROM placed_order_lines
		WHERE order_id = ?
		ORDER BY line_no
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]PlacedOrderLineResponse, 0)
	for rows.Next() {
		var line PlacedOrderLineResponse
		err = rows.Scan(
			&line.OrderLineID,
			&line.ProductCode,
			&line.Quantity,
			&line.LinePrice,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
