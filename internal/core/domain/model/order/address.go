package order

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an Address that was not
// created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress constructor")

// ErrCheckedAddressIsNotConstructed is returned when using a CheckedAddress
// that was not created via NewCheckedAddress.
var ErrCheckedAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"CheckedAddress must be created via NewCheckedAddress constructor")

// Address is a postal address whose existence has been confirmed by the
// address-verification collaborator and whose fields have been re-validated
// through the kernel constrained types. Line 1 and city are required; lines
// 2 through 4 are optional.
type Address struct { //nolint:recvcheck //using for validation
	addressLine1 kernel.String50
	addressLine2 kernel.OptionalString50
	addressLine3 kernel.OptionalString50
	addressLine4 kernel.OptionalString50
	city         kernel.String50
	zipCode      kernel.ZipCode
	guard        guard.ConstructorGuard
}

// NewAddress creates an Address from already-constructed field values.
func NewAddress(
	addressLine1 kernel.String50,
	addressLine2 kernel.OptionalString50,
	addressLine3 kernel.OptionalString50,
	addressLine4 kernel.OptionalString50,
	city kernel.String50,
	zipCode kernel.ZipCode,
) (Address, error) {
	a := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setAddressLine1(addressLine1),
		a.setOptionalLines(addressLine2, addressLine3, addressLine4),
		a.setCity(city),
		a.setZipCode(zipCode),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate checks that the Address was created via its constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// AddressLine1 returns the required first address line.
func (a Address) AddressLine1() kernel.String50 {
	return a.addressLine1
}

// AddressLine2 returns the optional second address line.
func (a Address) AddressLine2() kernel.OptionalString50 {
	return a.addressLine2
}

// AddressLine3 returns the optional third address line.
func (a Address) AddressLine3() kernel.OptionalString50 {
	return a.addressLine3
}

// AddressLine4 returns the optional fourth address line.
func (a Address) AddressLine4() kernel.OptionalString50 {
	return a.addressLine4
}

// City returns the city.
func (a Address) City() kernel.String50 {
	return a.city
}

// ZipCode returns the zip code.
func (a Address) ZipCode() kernel.ZipCode {
	return a.zipCode
}

func (a *Address) setAddressLine1(line kernel.String50) error {
	if err := line.Validate(); err != nil {
		return err
	}
	a.addressLine1 = line
	return nil
}

func (a *Address) setOptionalLines(line2, line3, line4 kernel.OptionalString50) error {
	if err := errors.Join(line2.Validate(), line3.Validate(), line4.Validate()); err != nil {
		return err
	}
	a.addressLine2 = line2
	a.addressLine3 = line3
	a.addressLine4 = line4
	return nil
}

func (a *Address) setCity(city kernel.String50) error {
	if err := city.Validate(); err != nil {
		return err
	}
	a.city = city
	return nil
}

func (a *Address) setZipCode(zipCode kernel.ZipCode) error {
	if err := zipCode.Validate(); err != nil {
		return err
	}
	a.zipCode = zipCode
	return nil
}

// CheckedAddress is a raw address whose existence the verification
// collaborator has confirmed. Its fields still carry raw strings; the
// validation stage re-validates them through the kernel types before an
// Address exists.
type CheckedAddress struct {
	address UnvalidatedAddress
	guard   guard.ConstructorGuard
}

// NewCheckedAddress wraps a raw address that passed the existence check.
func NewCheckedAddress(address UnvalidatedAddress) CheckedAddress {
	return CheckedAddress{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate checks that the CheckedAddress was created via its constructor.
func (c CheckedAddress) Validate() error {
	return c.guard.Validate(ErrCheckedAddressIsNotConstructed)
}

// Address returns the verified raw address.
func (c CheckedAddress) Address() UnvalidatedAddress {
	return c.address
}
