package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrEnsureProfileCommandIsNotConstructed = errors.New(
	"EnsureProfileCommand must be created via NewEnsureProfileCommand constructor",
)

// EnsureProfileCommand represents the identity provider's "new identity
// created" hook. Repeated invocations for the same identity are harmless.
type EnsureProfileCommand struct { //nolint:recvcheck //using for validation
	profileID kernel.UUID
	name      string
	role      profile.Role

	guard guard.ConstructorGuard
}

// NewEnsureProfileCommand creates a command to auto-create a profile.
func NewEnsureProfileCommand(profileID kernel.UUID, name string, role profile.Role) (EnsureProfileCommand, error) {
	cmd := EnsureProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProfileID(profileID),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return EnsureProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EnsureProfileCommand) Validate() error {
	return c.guard.Validate(ErrEnsureProfileCommandIsNotConstructed)
}

// ProfileID returns the identity's profile identifier.
func (c EnsureProfileCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// Name returns the display name.
func (c EnsureProfileCommand) Name() string {
	return c.name
}

// Role returns the profile role.
func (c EnsureProfileCommand) Role() profile.Role {
	return c.role
}

func (c *EnsureProfileCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}
	c.profileID = profileID
	return nil
}

func (c *EnsureProfileCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("profile name")
	}
	c.name = name
	return nil
}

func (c *EnsureProfileCommand) setRole(role profile.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
