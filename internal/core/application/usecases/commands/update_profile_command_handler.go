package commands

import (
	"context"

	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"
)

// UpdateProfileCommandHandler applies self-field changes to a profile.
// Only the profile's holder may change its location or online flag; the
// aggregate additionally rejects the online flag for customers.
type UpdateProfileCommandHandler struct {
	uowFactory   ProfileUoWFactory
	accessPolicy services.AccessPolicy
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory ProfileUoWFactory, accessPolicy services.AccessPolicy) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the profile update.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.ProfileRepository()
	aggregate, err := profileRepo.Get(ctx, cmd.ProfileID())
	if err != nil {
		return err
	}

	if !h.accessPolicy.CanEditProfile(cmd.ActorID(), aggregate) {
		return errs.NewUnauthorizedError("only the profile's holder may edit it")
	}

	if cmd.Location() != nil {
		if err = aggregate.MoveTo(*cmd.Location()); err != nil {
			return err
		}
	}

	if cmd.Online() != nil {
		if err = aggregate.SetOnline(*cmd.Online()); err != nil {
			return err
		}
	}

	if err = profileRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
