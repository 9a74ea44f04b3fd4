package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// RatingRepository defines the persistence contract for order ratings.
type RatingRepository interface {
	// Add persists a new rating. At most one rating exists per order;
	// storage enforces the uniqueness and a duplicate returns
	// order.ErrAlreadyRated.
	Add(ctx context.Context, aggregate *order.Rating) error

	// Update persists changes to an existing rating.
	Update(ctx context.Context, aggregate *order.Rating) error

	// GetByOrder retrieves the rating for an order.
	// Returns errs.ObjectNotFoundError when the order has no rating.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*order.Rating, error)
}
