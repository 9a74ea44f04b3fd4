package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a profile holder changing their own
// self-fields. Location and online flag are optional; a nil field is left
// untouched.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	profileID kernel.UUID
	actorID   kernel.UUID
	location  *kernel.GeoPoint
	online    *bool

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update profile self-fields.
func NewUpdateProfileCommand(
	profileID kernel.UUID,
	actorID kernel.UUID,
	location *kernel.GeoPoint,
	online *bool,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		location: location,
		online:   online,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProfileID(profileID),
		cmd.setActorID(actorID),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return UpdateProfileCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// ProfileID returns the target profile's identifier.
func (c UpdateProfileCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// ActorID returns the acting profile's identifier.
func (c UpdateProfileCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Location returns the new coordinate, or nil to leave it unchanged.
func (c UpdateProfileCommand) Location() *kernel.GeoPoint {
	return c.location
}

// Online returns the new online flag, or nil to leave it unchanged.
func (c UpdateProfileCommand) Online() *bool {
	return c.online
}

func (c *UpdateProfileCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("profile id", err)
	}
	c.profileID = profileID
	return nil
}

func (c *UpdateProfileCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor id", err)
	}
	c.actorID = actorID
	return nil
}
