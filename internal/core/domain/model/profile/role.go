package profile

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Role represents the function a profile performs in the ordering system.
// It is a value object validated on construction and on restore from
// persistence.
//
// Roles:
//   - Customer browses the menu, places orders, and rates delivered orders
//   - Owner manages the menu and advances orders through the kitchen states
//   - Delivery picks up ready orders and completes deliveries
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer is assigned to ordering users.
	RoleCustomer

	// RoleOwner is assigned to restaurant staff managing menu and orders.
	RoleOwner

	// RoleDelivery is assigned to couriers handling delivery orders.
	RoleDelivery
)

// getRoleStrings returns the mapping of all Role values to their names.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "Customer",
		RoleOwner:    "Owner",
		RoleDelivery: "Delivery",
	}
}

// getValidRoleStrings returns the mapping of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "Customer",
		RoleOwner:    "Owner",
		RoleDelivery: "Delivery",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are Customer, Owner, and Delivery; RoleUnknown and any other
// values are invalid. Used to vet values arriving from persistence or tokens.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a role name ("Customer", "Owner", "Delivery") as
// carried in identity tokens. The comparison is exact.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role name", s))
}
