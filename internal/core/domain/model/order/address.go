package order

import (
	"errors"
	"fmt"

	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an improperly initialized Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination of an order: house number, optional
// building and landmark hints, and the contact phone the courier calls on
// arrival. It is an immutable value object required for delivery orders and
// absent from pickup orders.
type Address struct {
	houseNumber string
	building    string
	landmark    string
	phone       string
	guard       guard.ConstructorGuard
}

// NewAddress creates a delivery address. House number and phone are required;
// building and landmark are optional courier hints.
func NewAddress(houseNumber, building, landmark, phone string) (Address, error) {
	addr := Address{
		building: building,
		landmark: landmark,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setHouseNumber(houseNumber),
		addr.setPhone(phone),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// HouseNumber returns the house number.
func (a Address) HouseNumber() string {
	return a.houseNumber
}

// Building returns the optional building hint.
func (a Address) Building() string {
	return a.building
}

// Landmark returns the optional landmark hint.
func (a Address) Landmark() string {
	return a.landmark
}

// Phone returns the contact phone number.
func (a Address) Phone() string {
	return a.phone
}

// String returns a single-line representation for logs and dashboards.
func (a Address) String() string {
	return fmt.Sprintf("Address(%s, %s)", a.houseNumber, a.phone)
}

func (a *Address) setHouseNumber(houseNumber string) error {
	if houseNumber == "" {
		return errs.NewValueIsRequiredError("house number")
	}
	a.houseNumber = houseNumber
	return nil
}

func (a *Address) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}
