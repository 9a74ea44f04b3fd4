package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"
)

// SaveMenuItemCommandHandler creates or edits menu items. Menu writes are
// owner only; the access policy rejects everyone else before storage is
// touched.
type SaveMenuItemCommandHandler struct {
	uowFactory   MenuUoWFactory
	accessPolicy services.AccessPolicy
}

// NewSaveMenuItemCommandHandler creates a handler for menu upserts.
func NewSaveMenuItemCommandHandler(uowFactory MenuUoWFactory, accessPolicy services.AccessPolicy) SaveMenuItemCommandHandler {
	return SaveMenuItemCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the menu upsert.
// An unknown identifier creates the item; a known one applies the edits to
// the stored aggregate. Soft-deleted items stay deleted and cannot be
// edited back into the menu.
func (h SaveMenuItemCommandHandler) Handle(ctx context.Context, cmd SaveMenuItemCommand) error {
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
	existing, err := menuRepo.Get(ctx, cmd.ItemID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		item, newErr := menu.NewMenuItem(cmd.ItemID(), cmd.Name(), cmd.Price())
		if newErr != nil {
			return newErr
		}
		if newErr = applyMenuEdits(item, cmd); newErr != nil {
			return newErr
		}
		if newErr = menuRepo.Add(ctx, item); newErr != nil {
			return newErr
		}
	case err != nil:
		return err
	default:
		if existing.IsDeleted() {
			return errs.NewValueIsInvalidError("menu item is deleted")
		}
		if err = applyMenuEdits(existing, cmd); err != nil {
			return err
		}
		if err = menuRepo.Update(ctx, existing); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func applyMenuEdits(item *menu.MenuItem, cmd SaveMenuItemCommand) error {
	if err := item.Rename(cmd.Name()); err != nil {
		return err
	}
	if err := item.SetPrice(cmd.Price()); err != nil {
		return err
	}
	if err := item.SetPrepTime(cmd.PrepTimeMinutes()); err != nil {
		return err
	}
	item.Describe(cmd.Description())
	item.SetImage(cmd.ImageRef())
	item.SetCategory(cmd.Category())
	item.SetAvailable(cmd.IsAvailable())
	return nil
}
