package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Snapshots prices and preparation times from the menu, derives the time
// estimates, and persists the order in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, planner, restaurantLocation, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory         OrderMenuUoWFactory
	routePlanner       ports.RoutePlanner
	restaurantLocation kernel.GeoPoint
	notifier           ports.OrderNotifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The route planner resolves the travel distance from the restaurant to the
// delivery destination; subscribers are notified about the new order after
// it is committed.
func NewCreateOrderCommandHandler(
	uowFactory OrderMenuUoWFactory,
	routePlanner ports.RoutePlanner,
	restaurantLocation kernel.GeoPoint,
	notifier ports.OrderNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:         uowFactory,
		routePlanner:       routePlanner,
		restaurantLocation: restaurantLocation,
		notifier:           notifier,
	}
}

// Handle processes the order placement command.
// Loads each requested menu item, rejects unavailable or deleted ones, and
// builds the order from menu snapshots so later menu edits never change the
// order. For delivery orders the route distance is resolved before the
// transaction starts.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var (
		address       *order.Address
		location      *kernel.GeoPoint
		routeDistance float64
	)
	if cmd.OrderType() == order.TypeDelivery {
		details := cmd.Delivery()

		addr, err := order.NewAddress(details.HouseNumber, details.Building, details.Landmark, details.Phone)
		if err != nil {
			return err
		}
		address = &addr

		point, err := kernel.NewGeoPoint(details.Latitude, details.Longitude)
		if err != nil {
			return err
		}
		location = &point

		routeDistance, err = h.routePlanner.RouteDistanceMeters(ctx, h.restaurantLocation, point)
		if err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		menuItem, err := menuRepo.Get(ctx, line.MenuItemID)
		if err != nil {
			return err
		}
		if !menuItem.IsOrderable() {
			return errs.NewValueIsInvalidError("menu item is not orderable: " + menuItem.Name())
		}

		item, err := order.NewItem(menuItem.ID(), menuItem.Name(), menuItem.Price(),
			line.Quantity, menuItem.PrepTimeMinutes())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.OrderType(),
		items, address, location, routeDistance)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
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
