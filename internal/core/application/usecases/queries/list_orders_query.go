package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves the orders visible to a profile. Customers get
// their own order history, the owner gets every order, and couriers get
// their assigned orders together with the unclaimed Ready delivery pool.
type ListOrdersQuery struct {
	actorID   kernel.UUID
	actorRole profile.Role

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query for the given actor.
func NewListOrdersQuery(actorID kernel.UUID, actorRole profile.Role) (ListOrdersQuery, error) {
	if err := errors.Join(
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ActorID returns the identifier of the requesting profile.
func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role of the requesting profile.
func (q ListOrdersQuery) ActorRole() profile.Role {
	return q.actorRole
}
