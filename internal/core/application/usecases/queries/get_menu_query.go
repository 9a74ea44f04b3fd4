// Package queries contains read-only operations for the query side of the
// CQRS split. Query handlers bypass the domain repositories and read the
// database directly, shaping rows into response structs.
package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the menu as seen by the requesting role. The owner
// sees every item that is not deleted, including ones currently marked
// unavailable; everyone else sees only items that can be ordered right now.
type GetMenuQuery struct {
	actorRole profile.Role

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a menu query for the given role.
func NewGetMenuQuery(actorRole profile.Role) (GetMenuQuery, error) {
	if err := actorRole.Validate(); err != nil {
		return GetMenuQuery{}, err
	}

	return GetMenuQuery{
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// ActorRole returns the role the menu is being shown to.
func (q GetMenuQuery) ActorRole() profile.Role {
	return q.actorRole
}
