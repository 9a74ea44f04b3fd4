package postgres_test

import (
	"context"
	"errors"
	"sync"

	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/ratingrepo"
	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// Narrow unit of work factories over the real gorm factory, wired the same
// way the composition root does it.

type menuUoWFactoryFunc func() commands.MenuUoW

func (f menuUoWFactoryFunc) Create() commands.MenuUoW { return f() }

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW { return f() }

type orderMenuUoWFactoryFunc func() commands.OrderMenuUoW

func (f orderMenuUoWFactoryFunc) Create() commands.OrderMenuUoW { return f() }

type orderProfileUoWFactoryFunc func() commands.OrderProfileUoW

func (f orderProfileUoWFactoryFunc) Create() commands.OrderProfileUoW { return f() }

type orderRatingUoWFactoryFunc func() commands.OrderRatingUoW

func (f orderRatingUoWFactoryFunc) Create() commands.OrderRatingUoW { return f() }

// fixedDistancePlanner resolves every route to the same distance.
type fixedDistancePlanner struct {
	meters float64
}

func (p fixedDistancePlanner) RouteDistanceMeters(_ context.Context, _, _ kernel.GeoPoint) (float64, error) {
	return p.meters, nil
}

// TestOrderLifecycle_EndToEnd drives a delivery order through the full
// lifecycle with the command handlers over the real database: the owner
// builds the menu, a customer orders at 1200m, the kitchen advances the
// order, a courier claims and delivers it, and the customer rates it
// exactly once.
func (suite *PostgresAdaptersTestSuite) TestOrderLifecycle_EndToEnd() {
	ctx := context.Background()

	ownerID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	restaurant, err := kernel.NewGeoPoint(52.5100, 13.3900)
	suite.Require().NoError(err)

	saveMenu := commands.NewSaveMenuItemCommandHandler(
		menuUoWFactoryFunc(func() commands.MenuUoW { return suite.factory.Create() }),
		services.NewAccessPolicy(),
	)
	createOrder := commands.NewCreateOrderCommandHandler(
		orderMenuUoWFactoryFunc(func() commands.OrderMenuUoW { return suite.factory.Create() }),
		fixedDistancePlanner{meters: 1200},
		restaurant,
		nil,
	)
	advanceStatus := commands.NewAdvanceOrderStatusCommandHandler(
		orderProfileUoWFactoryFunc(func() commands.OrderProfileUoW { return suite.factory.Create() }),
		services.NewOrderDispatcher(),
		nil,
	)
	claimOrder := commands.NewClaimOrderCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return suite.factory.Create() }),
		services.NewAccessPolicy(),
		nil,
	)
	submitRating := commands.NewSubmitRatingCommandHandler(
		orderRatingUoWFactoryFunc(func() commands.OrderRatingUoW { return suite.factory.Create() }),
	)

	// Owner builds the menu.
	pizzaID := kernel.NewUUID()
	lasagnaID := kernel.NewUUID()
	for _, entry := range []struct {
		id    kernel.UUID
		name  string
		price float64
		prep  int
	}{
		{pizzaID, "Margherita", 8.50, 15},
		{lasagnaID, "Lasagna", 11.00, 20},
	} {
		cmd, err := commands.NewSaveMenuItemCommand(entry.id, profile.RoleOwner, entry.name, "",
			decimal.NewFromFloat(entry.price), "", "mains", entry.prep, true)
		suite.Require().NoError(err)
		suite.Require().NoError(saveMenu.Handle(ctx, cmd))
	}

	// Customer places a delivery order.
	orderID := kernel.NewUUID()
	createCmd, err := commands.NewCreateOrderCommand(orderID, customerID, order.TypeDelivery,
		[]commands.CartLine{
			{MenuItemID: pizzaID, Quantity: 2},
			{MenuItemID: lasagnaID, Quantity: 1},
		},
		&commands.DeliveryDetails{
			HouseNumber: "12",
			Phone:       "+49 30 1234567",
			Latitude:    52.5200,
			Longitude:   13.4050,
		})
	suite.Require().NoError(err)
	suite.Require().NoError(createOrder.Handle(ctx, createCmd))

	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	placed, err := repo.Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Pending, placed.Status())
	suite.Equal(20, placed.PrepEstimateMinutes())
	suite.Equal(24, placed.DeliveryEstimateMinutes())
	suite.True(decimal.NewFromFloat(28.00).Equal(placed.Total()))

	// The kitchen advances the order; with no couriers registered it
	// reaches Ready unassigned and sits in the available pool.
	for _, target := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		cmd, advErr := commands.NewAdvanceOrderStatusCommand(orderID, ownerID, profile.RoleOwner, target)
		suite.Require().NoError(advErr)
		suite.Require().NoError(advanceStatus.Handle(ctx, cmd))
	}

	ready, err := repo.Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Ready, ready.Status())
	suite.Nil(ready.CourierID())

	// The courier claims it; a second courier loses the race.
	claimCmd, err := commands.NewClaimOrderCommand(orderID, courierID, profile.RoleDelivery)
	suite.Require().NoError(err)
	suite.Require().NoError(claimOrder.Handle(ctx, claimCmd))

	lateCmd, err := commands.NewClaimOrderCommand(orderID, kernel.NewUUID(), profile.RoleDelivery)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(claimOrder.Handle(ctx, lateCmd), order.ErrAlreadyClaimed)

	claimed, err := repo.Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, claimed.Status())
	suite.Require().NotNil(claimed.CourierID())
	suite.True(claimed.CourierID().IsEqual(courierID))

	// The courier completes the delivery.
	deliverCmd, err := commands.NewAdvanceOrderStatusCommand(orderID, courierID, profile.RoleDelivery, order.Delivered)
	suite.Require().NoError(err)
	suite.Require().NoError(advanceStatus.Handle(ctx, deliverCmd))

	delivered, err := repo.Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, delivered.Status())

	// The customer rates the order once; a second rating is rejected.
	rateCmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), orderID, customerID, 5, "great", "")
	suite.Require().NoError(err)
	suite.Require().NoError(submitRating.Handle(ctx, rateCmd))

	retryCmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), orderID, customerID, 1, "changed my mind", "")
	suite.Require().NoError(err)
	suite.Require().ErrorIs(submitRating.Handle(ctx, retryCmd), order.ErrAlreadyRated)

	ratings := ratingrepo.NewGormRatingRepository(suite.db, &noopTracker{})
	rating, err := ratings.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(5, rating.Stars())
}

// TestAdvanceStatus_ConcurrentCourierPickupsHaveOneWinner races couriers
// through the status-advance path for the same Ready order. The write goes
// through the conditional claim, so exactly one courier wins and the rest
// see the order as already claimed.
func (suite *PostgresAdaptersTestSuite) TestAdvanceStatus_ConcurrentCourierPickupsHaveOneWinner() {
	ctx := context.Background()
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	aggregate := suite.newReadyOrder(kernel.NewUUID())
	suite.Require().NoError(repo.Add(ctx, aggregate))

	advanceStatus := commands.NewAdvanceOrderStatusCommandHandler(
		orderProfileUoWFactoryFunc(func() commands.OrderProfileUoW { return suite.factory.Create() }),
		services.NewOrderDispatcher(),
		nil,
	)

	const couriers = 4
	courierIDs := make([]kernel.UUID, couriers)
	results := make([]error, couriers)

	var wg sync.WaitGroup
	for i := 0; i < couriers; i++ {
		courierIDs[i] = kernel.NewUUID()
		cmd, err := commands.NewAdvanceOrderStatusCommand(
			aggregate.ID(), courierIDs[i], profile.RoleDelivery, order.PickedUp)
		suite.Require().NoError(err)

		wg.Add(1)
		go func(slot int, cmd commands.AdvanceOrderStatusCommand) {
			defer wg.Done()
			results[slot] = advanceStatus.Handle(ctx, cmd)
		}(i, cmd)
	}
	wg.Wait()

	winners := 0
	var winnerID kernel.UUID
	for i, err := range results {
		if err == nil {
			winners++
			winnerID = courierIDs[i]
			continue
		}
		// A loser either loses the conditional write or already reads the
		// winner's committed PickedUp status.
		if !errors.Is(err, order.ErrAlreadyClaimed) {
			suite.Require().ErrorIs(err, order.ErrInvalidTransition)
		}
	}
	suite.Require().Equal(1, winners)

	loaded, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, loaded.Status())
	suite.Require().NotNil(loaded.CourierID())
	suite.True(loaded.CourierID().IsEqual(winnerID))
}
