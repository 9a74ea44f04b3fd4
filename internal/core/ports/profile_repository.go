// Package ports defines the contracts between the application core and the
// outside world: repositories, the unit of work, the routing collaborator,
// and push notifications. Adapters implement these interfaces; use cases
// depend only on them.
package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"
)

// ProfileRepository defines the persistence contract for profile aggregates.
type ProfileRepository interface {
	// Ensure persists the profile unless one with the same identifier
	// already exists, in which case it is a no-op. Used by the identity
	// hook so repeated sign-ins never duplicate or overwrite a profile.
	Ensure(ctx context.Context, aggregate *profile.Profile) error

	// Update persists changes to an existing profile aggregate.
	Update(ctx context.Context, aggregate *profile.Profile) error

	// Get retrieves a profile aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such profile exists.
	Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error)

	// GetCouriers retrieves all Delivery-role profiles, oldest account
	// first. Auto-assignment candidates come from here.
	GetCouriers(ctx context.Context) ([]*profile.Profile, error)
}
