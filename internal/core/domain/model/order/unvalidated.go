package order

// The Unvalidated* types carry raw, untrusted input into the workflow. They
// are plain data with exported fields: nothing about them is guaranteed, and
// the only thing the pipeline does with them is attempt to turn them into
// their validated counterparts.

// UnvalidatedCustomerInfo is raw customer input.
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

// UnvalidatedAddress is raw address input.
type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

// UnvalidatedOrderLine is raw order-line input.
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
}

// UnvalidatedOrder is the raw order as submitted by the caller.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
}
