package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its lines and the remaining
// time estimates. Visibility follows the access policy: customers see their
// own orders, couriers see assigned orders plus the unclaimed Ready pool,
// the owner sees everything.
type GetOrderQuery struct {
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole profile.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order detail query.
func NewGetOrderQuery(orderID, actorID kernel.UUID, actorRole profile.Role) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:   orderID,
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the identifier of the requesting profile.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role of the requesting profile.
func (q GetOrderQuery) ActorRole() profile.Role {
	return q.actorRole
}
