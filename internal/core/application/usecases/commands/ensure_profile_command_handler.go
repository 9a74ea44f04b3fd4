package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/profile"
)

// EnsureProfileCommandHandler auto-creates a profile when the identity
// provider reports a new sign-in. The repository's Ensure makes the
// operation idempotent, so a repeated hook never duplicates or overwrites
// an existing profile.
type EnsureProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewEnsureProfileCommandHandler creates a handler for profile provisioning.
func NewEnsureProfileCommandHandler(uowFactory ProfileUoWFactory) EnsureProfileCommandHandler {
	return EnsureProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile provisioning command.
func (h EnsureProfileCommandHandler) Handle(ctx context.Context, cmd EnsureProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := profile.NewProfile(cmd.ProfileID(), cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProfileRepository().Ensure(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
