package cmd

import (
	"log/slog"

	"foodcourt/internal/adapters/in/ws"
	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/routing"
	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure adapters into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	routePlanner       ports.RoutePlanner
	restaurantLocation kernel.GeoPoint
	dispatcher         services.OrderDispatcher
	accessPolicy       services.AccessPolicy
	hub                *ws.Hub
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	restaurantLocation, err := kernel.NewGeoPoint(cfg.RestaurantLatitude, cfg.RestaurantLongitude)
	if err != nil {
		return CompositionRoot{}, err
	}

	accessPolicy := services.NewAccessPolicy()

	return CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         *postgres.NewGormUnitOfWorkFactory(gormDB),
		routePlanner:       routing.NewClient(cfg.RoutingBaseURL, logger),
		restaurantLocation: restaurantLocation,
		dispatcher:         services.NewOrderDispatcher(),
		accessPolicy:       accessPolicy,
		hub:                ws.NewHub(accessPolicy, logger),
	}, nil
}

// Hub exposes the websocket hub so the HTTP layer can serve subscriptions.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderMenuUoWFactory = FuncOrderMenuUoWFactory(func() commands.OrderMenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.routePlanner, c.restaurantLocation, c.hub)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderProfileUoWFactory = FuncOrderProfileUoWFactory(func() commands.OrderProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.dispatcher, c.hub)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f, c.accessPolicy, c.hub)
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.OrderRatingUoWFactory = FuncOrderRatingUoWFactory(func() commands.OrderRatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateReviseRatingCommandHandler() commands.ReviseRatingCommandHandler {
	var f commands.OrderRatingUoWFactory = FuncOrderRatingUoWFactory(func() commands.OrderRatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviseRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveMenuItemCommandHandler() commands.SaveMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveMenuItemCommandHandler(f, c.accessPolicy)
}

func (c *CompositionRoot) CreateRemoveMenuItemCommandHandler() commands.RemoveMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveMenuItemCommandHandler(f, c.accessPolicy)
}

func (c *CompositionRoot) CreateEnsureProfileCommandHandler() commands.EnsureProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEnsureProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f, c.accessPolicy)
}

func (c *CompositionRoot) CreateReconcileAssignmentsCommandHandler() commands.ReconcileAssignmentsCommandHandler {
	var f commands.OrderProfileUoWFactory = FuncOrderProfileUoWFactory(func() commands.OrderProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileAssignmentsCommandHandler(f, c.dispatcher, c.hub)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.accessPolicy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncOrderMenuUoWFactory func() commands.OrderMenuUoW

func (f FuncOrderMenuUoWFactory) Create() commands.OrderMenuUoW {
	return f()
}

type FuncOrderProfileUoWFactory func() commands.OrderProfileUoW

func (f FuncOrderProfileUoWFactory) Create() commands.OrderProfileUoW {
	return f()
}

type FuncOrderRatingUoWFactory func() commands.OrderRatingUoW

func (f FuncOrderRatingUoWFactory) Create() commands.OrderRatingUoW {
	return f()
}
