package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// SubmitRatingCommandHandler records a customer's one-time feedback on a
// delivered order. Only the order's customer may rate it, only after
// delivery, and only once; a duplicate submission surfaces
// order.ErrAlreadyRated from the rating repository's uniqueness guarantee.
type SubmitRatingCommandHandler struct {
	uowFactory OrderRatingUoWFactory
}

// NewSubmitRatingCommandHandler creates a handler for rating submissions.
func NewSubmitRatingCommandHandler(uowFactory OrderRatingUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating submission.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("only the order's customer may rate it")
	}

	if aggregate.Status() != order.Delivered {
		return order.ErrNotDelivered
	}

	rating, err := order.NewRating(cmd.RatingID(), cmd.OrderID(), cmd.CustomerID(),
		cmd.Stars(), cmd.Review(), cmd.Suggestion())
	if err != nil {
		return err
	}

	if err = uow.RatingRepository().Add(ctx, rating); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
