package services

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/profile"
)

// AccessPolicy is a domain service answering read and write authorization
// questions about aggregates. It is a pure predicate over the actor and the
// target state; enforcement happens in the application layer.
//
// Read access to an order is granted to:
//   - the order's customer
//   - the order's assigned courier
//   - any Owner-role profile
//   - any Delivery-role profile, for unassigned ready delivery orders
//     (the available pool)
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanReadOrder reports whether the actor may see the order.
func (p AccessPolicy) CanReadOrder(actorID kernel.UUID, actorRole profile.Role, o *order.Order) bool {
	if o == nil || actorID.Validate() != nil {
		return false
	}

	if actorRole == profile.RoleOwner {
		return true
	}

	if o.CustomerID().IsEqual(actorID) {
		return true
	}

	if actorRole == profile.RoleDelivery {
		if o.CourierID() != nil && o.CourierID().IsEqual(actorID) {
			return true
		}
		return o.NeedsCourier()
	}

	return false
}

// CanWriteMenu reports whether the actor may create, edit, or delete menu
// items. Menu writes are owner only.
func (p AccessPolicy) CanWriteMenu(actorRole profile.Role) bool {
	return actorRole == profile.RoleOwner
}

// CanClaimOrder reports whether the actor may claim orders from the
// available pool. Claims are for the Delivery role only.
func (p AccessPolicy) CanClaimOrder(actorRole profile.Role) bool {
	return actorRole == profile.RoleDelivery
}

// CanEditProfile reports whether the actor may change a profile's
// self-fields (name, location, online flag). Only the holder may.
func (p AccessPolicy) CanEditProfile(actorID kernel.UUID, target *profile.Profile) bool {
	return target != nil && actorID.Validate() == nil && target.ID().IsEqual(actorID)
}
