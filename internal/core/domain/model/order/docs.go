// Package order implements the order aggregate for the food-court domain.
//
// The aggregate models the purchase lifecycle:
//
//	Pending -> Confirmed -> Preparing -> Ready -> PickedUp -> Delivered
//
// with Cancelled reachable from every non-terminal state. Every transition
// is an edge in a role-gated table: the owner drives the kitchen states,
// couriers drive pickup and completion, and cancellation is available to the
// owner and to the order's own customer. A transition outside the table
// fails with ErrInvalidTransition and leaves the status unchanged; a
// transition that exists in the table but belongs to a different role fails
// with an unauthorized error.
//
// Core types:
//   - Order: aggregate root holding status, the immutable item lines, the
//     courier reference, and the time estimates derived at creation
//   - Item: a value object snapshotting a menu item's name, price, and
//     preparation time at ordering time, so later menu edits never change
//     an existing order
//   - Address: the delivery destination value object
//   - Status, Type: lifecycle and order-kind enumerations
//   - Rating: a customer's one-time feedback on a delivered order
//
// Estimates are computed once in NewOrder and stored: the preparation
// estimate is the maximum preparation time across the lines, and the
// delivery estimate is 2 minutes per 100 meters of route distance, rounded
// up. Remaining-time helpers count down from the creation time and never go
// below zero.
//
// Courier assignment is part of the aggregate's consistency boundary:
// AssignCourier is idempotent and accepts a courier only for an unassigned
// delivery order in Ready status, and AdvanceTo lets an acting courier
// self-assign on Ready -> PickedUp when no courier holds the order.
// Resolution of concurrent claims on the same order is delegated to the
// storage layer's conditional update.
package order
