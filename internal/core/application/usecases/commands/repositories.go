// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// ProfileRepoFactory provides access to the profile repository within a transaction.
	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// RatingRepoFactory provides access to the rating repository within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MenuUoW manages transactions for menu-only operations.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// ProfileUoW manages transactions for profile-only operations.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// OrderMenuUoW coordinates order creation with menu snapshots.
	OrderMenuUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	// OrderMenuUoWFactory creates new order+menu unit of work instances.
	OrderMenuUoWFactory interface {
		Create() OrderMenuUoW
	}

	// OrderProfileUoW coordinates status changes with courier lookups.
	OrderProfileUoW interface {
		TxManager
		OrderRepoFactory
		ProfileRepoFactory
	}

	// OrderProfileUoWFactory creates new order+profile unit of work instances.
	OrderProfileUoWFactory interface {
		Create() OrderProfileUoW
	}

	// OrderRatingUoW coordinates rating writes with order state checks.
	OrderRatingUoW interface {
		TxManager
		OrderRepoFactory
		RatingRepoFactory
	}

	// OrderRatingUoWFactory creates new order+rating unit of work instances.
	OrderRatingUoWFactory interface {
		Create() OrderRatingUoW
	}
)
