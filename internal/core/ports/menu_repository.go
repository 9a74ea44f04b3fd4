package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
type MenuRepository interface {
	// Add persists a new menu item to storage.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier, including
	// soft-deleted ones. Returns errs.ObjectNotFoundError when no such
	// item exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAll retrieves every menu item that is not soft-deleted.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)

	// HasOrderReferences reports whether any order line snapshots the
	// menu item. Referenced items may only be soft-deleted.
	HasOrderReferences(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes the menu item row. Callers must check
	// HasOrderReferences first and fall back to soft deletion.
	Delete(ctx context.Context, id kernel.UUID) error
}
