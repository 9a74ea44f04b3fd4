package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/order"
)

// OrderNotifier pushes order change events to connected clients so their
// views re-fetch. Delivery is best effort: a notification failure never
// fails the mutation that triggered it.
type OrderNotifier interface {
	// NotifyOrderChanged fans the updated order out to every subscriber
	// authorized to read it.
	NotifyOrderChanged(ctx context.Context, aggregate *order.Order)
}
