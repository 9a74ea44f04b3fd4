package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// ReconcileAssignmentsCommandHandler retries courier auto-assignment for the
// whole unassigned ready pool. An empty courier pool ends the sweep early;
// every successful assignment is pushed to subscribers.
type ReconcileAssignmentsCommandHandler struct {
	uowFactory OrderProfileUoWFactory
	dispatcher services.OrderDispatcher
	notifier   ports.OrderNotifier
}

// NewReconcileAssignmentsCommandHandler creates a handler for assignment sweeps.
func NewReconcileAssignmentsCommandHandler(
	uowFactory OrderProfileUoWFactory,
	dispatcher services.OrderDispatcher,
	notifier ports.OrderNotifier,
) ReconcileAssignmentsCommandHandler {
	return ReconcileAssignmentsCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   notifier,
	}
}

// Handle processes the sweep command.
func (h ReconcileAssignmentsCommandHandler) Handle(ctx context.Context, cmd ReconcileAssignmentsCommand) error {
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
	pool, err := orderRepo.GetUnassignedReady(ctx)
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		return uow.Commit(ctx)
	}

	couriers, err := uow.ProfileRepository().GetCouriers(ctx)
	if err != nil {
		return err
	}

	assigned := make([]*order.Order, 0, len(pool))
	for _, aggregate := range pool {
		_, dispatchErr := h.dispatcher.Dispatch(aggregate, couriers)
		if errors.Is(dispatchErr, services.ErrCourierNotFound) {
			break
		}
		if dispatchErr != nil {
			return dispatchErr
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		assigned = append(assigned, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.notifier != nil {
		for _, aggregate := range assigned {
			h.notifier.NotifyOrderChanged(ctx, aggregate)
		}
	}
	return nil
}
