package commands

import (
	"context"

	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"
)

// RemoveMenuItemCommandHandler deletes menu items. An item referenced by any
// order line cannot be hard-deleted; the handler falls back to a soft delete
// so the order history keeps resolving, without surfacing a failure.
type RemoveMenuItemCommandHandler struct {
	uowFactory   MenuUoWFactory
	accessPolicy services.AccessPolicy
}

// NewRemoveMenuItemCommandHandler creates a handler for menu removals.
func NewRemoveMenuItemCommandHandler(uowFactory MenuUoWFactory, accessPolicy services.AccessPolicy) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the menu removal.
func (h RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.accessPolicy.CanWriteMenu(cmd.ActorRole()) {
		return errs.NewUnauthorizedError("only the owner may edit the menu")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	referenced, err := menuRepo.HasOrderReferences(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if referenced {
		item, getErr := menuRepo.Get(ctx, cmd.ItemID())
		if getErr != nil {
			return getErr
		}
		item.SoftDelete()
		if err = menuRepo.Update(ctx, item); err != nil {
			return err
		}
	} else {
		if err = menuRepo.Delete(ctx, cmd.ItemID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
