package commands

import (
	"context"

	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// ClaimOrderCommandHandler lets a courier take an order from the available
// pool. The claim is a single conditional write in the repository, never a
// read-then-write pair, so two racing couriers resolve to exactly one
// assignee; the loser receives order.ErrAlreadyClaimed. Only Delivery-role
// actors may claim, and only delivery orders are claimable.
type ClaimOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	accessPolicy services.AccessPolicy
	notifier     ports.OrderNotifier
}

// NewClaimOrderCommandHandler creates a handler for order claims.
func NewClaimOrderCommandHandler(
	uowFactory OrderUoWFactory,
	accessPolicy services.AccessPolicy,
	notifier ports.OrderNotifier,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
		notifier:     notifier,
	}
}

// Handle processes the claim command.
// On success the order is assigned to the courier and moved to PickedUp;
// the updated aggregate is re-read for the change notification.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.accessPolicy.CanClaimOrder(cmd.ActorRole()) {
		return errs.NewUnauthorizedError("only couriers may claim orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err := orderRepo.ClaimForCourier(ctx, cmd.OrderID(), cmd.ActorID()); err != nil {
		return err
	}

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.notifier != nil {
		h.notifier.NotifyOrderChanged(ctx, aggregate)
	}
	return nil
}
