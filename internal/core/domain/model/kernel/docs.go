// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: validated identity value object wrapping github.com/google/uuid
//   - GeoPoint: geographic coordinate with Haversine distance calculation
//
// Value objects in this package are immutable, created through validating
// constructors, and guard against zero-value use. They carry no behavior
// specific to any single aggregate so they can be shared by the profile,
// menu, and order models.
package kernel
