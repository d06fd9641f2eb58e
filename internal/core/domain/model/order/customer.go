package order

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrPersonNameIsNotConstructed is returned when using a PersonName that was
// not created via NewPersonName.
var ErrPersonNameIsNotConstructed = errs.NewValueIsRequiredError(
	"PersonName must be created via NewPersonName constructor")

// ErrCustomerInfoIsNotConstructed is returned when using a CustomerInfo that
// was not created via NewCustomerInfo.
var ErrCustomerInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"CustomerInfo must be created via NewCustomerInfo constructor")

// PersonName is a customer's first and last name, both bounded strings.
type PersonName struct { //nolint:recvcheck //using for validation
	firstName kernel.String50
	lastName  kernel.String50
	guard     guard.ConstructorGuard
}

// NewPersonName creates a PersonName from already-constructed bounded strings.
func NewPersonName(firstName, lastName kernel.String50) (PersonName, error) {
	n := PersonName{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setFirstName(firstName),
		n.setLastName(lastName),
	); err != nil {
		return PersonName{}, err
	}

	return n, nil
}

// Validate checks that the PersonName was created via its constructor.
func (n PersonName) Validate() error {
	return n.guard.Validate(ErrPersonNameIsNotConstructed)
}

// FirstName returns the first name.
func (n PersonName) FirstName() kernel.String50 {
	return n.firstName
}

// LastName returns the last name.
func (n PersonName) LastName() kernel.String50 {
	return n.lastName
}

func (n *PersonName) setFirstName(firstName kernel.String50) error {
	if err := firstName.Validate(); err != nil {
		return err
	}
	n.firstName = firstName
	return nil
}

func (n *PersonName) setLastName(lastName kernel.String50) error {
	if err := lastName.Validate(); err != nil {
		return err
	}
	n.lastName = lastName
	return nil
}

// CustomerInfo is the customer's name and contact email.
type CustomerInfo struct { //nolint:recvcheck //using for validation
	name  PersonName
	email kernel.EmailAddress
	guard guard.ConstructorGuard
}

// NewCustomerInfo creates a CustomerInfo from already-constructed parts.
func NewCustomerInfo(name PersonName, email kernel.EmailAddress) (CustomerInfo, error) {
	c := CustomerInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return CustomerInfo{}, err
	}

	return c, nil
}

// Validate checks that the CustomerInfo was created via its constructor.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}

// Name returns the customer's name.
func (c CustomerInfo) Name() PersonName {
	return c.name
}

// Email returns the customer's email address.
func (c CustomerInfo) Email() kernel.EmailAddress {
	return c.email
}

func (c *CustomerInfo) setName(name PersonName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *CustomerInfo) setEmail(email kernel.EmailAddress) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}
