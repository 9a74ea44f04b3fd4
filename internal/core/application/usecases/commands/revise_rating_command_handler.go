package commands

import (
	"context"

	"foodcourt/internal/pkg/errs"
)

// ReviseRatingCommandHandler updates the stars and texts of a rating the
// customer already submitted. Only the rating's author may revise it.
type ReviseRatingCommandHandler struct {
	uowFactory OrderRatingUoWFactory
}

// NewReviseRatingCommandHandler creates a handler for rating revisions.
func NewReviseRatingCommandHandler(uowFactory OrderRatingUoWFactory) ReviseRatingCommandHandler {
	return ReviseRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating revision.
func (h ReviseRatingCommandHandler) Handle(ctx context.Context, cmd ReviseRatingCommand) error {
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

	ratingRepo := uow.RatingRepository()
	rating, err := ratingRepo.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !rating.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("only the rating's author may revise it")
	}

	if err = rating.Revise(cmd.Stars(), cmd.Review(), cmd.Suggestion()); err != nil {
		return err
	}

	if err = ratingRepo.Update(ctx, rating); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
