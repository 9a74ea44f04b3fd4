package commands

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSaveMenuItemCommandIsNotConstructed = errors.New(
	"SaveMenuItemCommand must be created via NewSaveMenuItemCommand constructor",
)

// SaveMenuItemCommand represents an owner creating a menu item or editing an
// existing one. The handler upserts by identifier.
type SaveMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID          kernel.UUID
	actorRole       profile.Role
	name            string
	description     string
	price           decimal.Decimal
	imageRef        string
	category        string
	prepTimeMinutes int
	isAvailable     bool

	guard guard.ConstructorGuard
}

// NewSaveMenuItemCommand creates a command to create or edit a menu item.
func NewSaveMenuItemCommand(
	itemID kernel.UUID,
	actorRole profile.Role,
	name string,
	description string,
	price decimal.Decimal,
	imageRef string,
	category string,
	prepTimeMinutes int,
	isAvailable bool,
) (SaveMenuItemCommand, error) {
	cmd := SaveMenuItemCommand{
		description: description,
		imageRef:    imageRef,
		category:    category,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setActorRole(actorRole),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setPrepTime(prepTimeMinutes),
	); err != nil {
		return SaveMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrSaveMenuItemCommandIsNotConstructed)
}

// ItemID returns the menu item's identifier.
func (c SaveMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ActorRole returns the acting profile's role.
func (c SaveMenuItemCommand) ActorRole() profile.Role {
	return c.actorRole
}

// Name returns the dish name.
func (c SaveMenuItemCommand) Name() string {
	return c.name
}

// Description returns the dish description.
func (c SaveMenuItemCommand) Description() string {
	return c.description
}

// Price returns the dish price.
func (c SaveMenuItemCommand) Price() decimal.Decimal {
	return c.price
}

// ImageRef returns the dish image reference.
func (c SaveMenuItemCommand) ImageRef() string {
	return c.imageRef
}

// Category returns the menu category.
func (c SaveMenuItemCommand) Category() string {
	return c.category
}

// PrepTimeMinutes returns the preparation time.
func (c SaveMenuItemCommand) PrepTimeMinutes() int {
	return c.prepTimeMinutes
}

// IsAvailable returns whether the dish can be ordered.
func (c SaveMenuItemCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *SaveMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *SaveMenuItemCommand) setActorRole(actorRole profile.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	c.actorRole = actorRole
	return nil
}

func (c *SaveMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	c.name = name
	return nil
}

func (c *SaveMenuItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%s is negative", price))
	}
	c.price = price
	return nil
}

func (c *SaveMenuItemCommand) setPrepTime(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("preparation time is invalid",
			fmt.Errorf("%d is not greater than 0", minutes))
	}
	c.prepTimeMinutes = minutes
	return nil
}
