// Package services contains domain services: operations that span multiple
// aggregates and therefore belong to neither.
//
// OrderDispatcher implements best-effort courier auto-assignment for
// delivery orders entering the ready state. AccessPolicy is the pure
// authorization predicate shared by queries, push notifications, and the
// HTTP layer.
//
// Services are stateless; they receive all aggregates as arguments and
// never touch storage themselves.
package services
