package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
)

// RoutePlanner resolves the travel distance between two coordinates through
// an external routing service. Implementations fall back to the great-circle
// distance when routing is unavailable, so a call fails only on invalid
// coordinates.
type RoutePlanner interface {
	// RouteDistanceMeters returns the route distance from the restaurant
	// to the destination.
	RouteDistanceMeters(ctx context.Context, from kernel.GeoPoint, to kernel.GeoPoint) (float64, error)
}
