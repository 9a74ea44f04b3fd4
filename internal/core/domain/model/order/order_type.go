package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Type distinguishes orders brought to the customer from orders collected at
// the restaurant. Delivery orders require an address, a destination
// coordinate, and eventually a courier; pickup orders need none of these.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeDelivery is an order couriered to the customer's address.
	TypeDelivery

	// TypePickup is an order collected by the customer at the restaurant.
	TypePickup
)

// getValidTypeStrings returns the mapping of only valid Type values.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeDelivery: "Delivery",
		TypePickup:   "Pickup",
	}
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if str, ok := getValidTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString parses an order type name ("Delivery" or "Pickup") as
// carried in API requests. The comparison is exact.
func TypeFromString(s string) (Type, error) {
	for orderType, name := range getValidTypeStrings() {
		if name == s {
			return orderType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("order type is invalid", fmt.Errorf("%q is not a valid order type name", s))
}
