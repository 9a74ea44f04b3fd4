package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand represents an owner removing a dish from the menu.
type RemoveMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	actorRole profile.Role

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command to remove a menu item.
func NewRemoveMenuItemCommand(itemID kernel.UUID, actorRole profile.Role) (RemoveMenuItemCommand, error) {
	cmd := RemoveMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// ItemID returns the menu item's identifier.
func (c RemoveMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ActorRole returns the acting profile's role.
func (c RemoveMenuItemCommand) ActorRole() profile.Role {
	return c.actorRole
}

func (c *RemoveMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *RemoveMenuItemCommand) setActorRole(actorRole profile.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	c.actorRole = actorRole
	return nil
}
