package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a courier's attempt to take an order from the
// available pool. Two couriers may race for the same order; the storage
// layer resolves the race so exactly one claim wins.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole profile.Role

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for an actor to claim an order.
func NewClaimOrderCommand(orderID kernel.UUID, actorID kernel.UUID, actorRole profile.Role) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the claiming profile's identifier.
func (c ClaimOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the claiming profile's role.
func (c ClaimOrderCommand) ActorRole() profile.Role {
	return c.actorRole
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setActor(actorID kernel.UUID, actorRole profile.Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}
	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
