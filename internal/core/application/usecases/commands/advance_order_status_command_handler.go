package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler moves orders along the lifecycle.
// When a delivery order enters Ready without a courier, it triggers the
// best-effort auto-assignment inside the same transaction, then notifies
// subscribers about the change.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderProfileUoWFactory
	dispatcher services.OrderDispatcher
	notifier   ports.OrderNotifier
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advances.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderProfileUoWFactory,
	dispatcher services.OrderDispatcher,
	notifier ports.OrderNotifier,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   notifier,
	}
}

// Handle processes the status advance command.
// The aggregate enforces the transition table and ownership rules; a failed
// transition rolls the transaction back and leaves the stored status
// unchanged. A missing courier pool is not an error: the order simply stays
// unassigned and claimable.
//
// A Ready -> PickedUp advance on a delivery order is a claim, so it is
// written through the repository's conditional claim rather than a plain
// update; a racing courier who loses receives order.ErrAlreadyClaimed.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	claims := aggregate.Status() == order.Ready && cmd.Target() == order.PickedUp &&
		aggregate.OrderType() == order.TypeDelivery

	if err = aggregate.AdvanceTo(cmd.Target(), cmd.ActorID(), cmd.ActorRole()); err != nil {
		return err
	}

	if aggregate.NeedsCourier() {
		couriers, courierErr := uow.ProfileRepository().GetCouriers(ctx)
		if courierErr != nil {
			return courierErr
		}

		if _, dispatchErr := h.dispatcher.Dispatch(aggregate, couriers); dispatchErr != nil &&
			!errors.Is(dispatchErr, services.ErrCourierNotFound) {
			return dispatchErr
		}
	}

	if claims {
		err = orderRepo.ClaimForCourier(ctx, cmd.OrderID(), cmd.ActorID())
	} else {
		err = orderRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, aggregate)
	return nil
}

func (h AdvanceOrderStatusCommandHandler) notify(ctx context.Context, aggregate *order.Order) {
	if h.notifier != nil {
		h.notifier.NotifyOrderChanged(ctx, aggregate)
	}
}
