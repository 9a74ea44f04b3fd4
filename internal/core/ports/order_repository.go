package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by the customer,
	// newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByCourier retrieves all orders assigned to the courier,
	// newest first.
	GetByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order, newest first. Owner dashboards use it.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetUnassignedReady retrieves the available pool: delivery orders in
	// Ready status with no courier, oldest first.
	GetUnassignedReady(ctx context.Context) ([]*order.Order, error)

	// ClaimForCourier atomically assigns the courier and moves the order
	// from Ready to PickedUp in a single conditional write. The claim
	// succeeds only while the order is still Ready and either unassigned
	// or already assigned to this courier; a lost race returns
	// order.ErrAlreadyClaimed.
	ClaimForCourier(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) error
}
