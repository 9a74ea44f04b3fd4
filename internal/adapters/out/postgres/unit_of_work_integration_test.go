package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/postgres/menurepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/profilerepo"
	"foodcourt/internal/adapters/out/postgres/ratingrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresAdaptersTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *PostgresAdaptersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&menurepo.MenuItemDTO{},
		&profilerepo.ProfileDTO{},
		&ratingrepo.RatingDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *PostgresAdaptersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *PostgresAdaptersTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, menu_items, profiles, order_ratings CASCADE").Error
	suite.Require().NoError(err)
}

// Order repository

func (suite *PostgresAdaptersTestSuite) TestOrderRoundTrip() {
	aggregate := suite.newDeliveryOrder(kernel.NewUUID())
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})

	err := repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	loaded, err := repo.Get(context.Background(), aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), loaded.ID())
	suite.Equal(aggregate.CustomerID(), loaded.CustomerID())
	suite.Equal(order.TypeDelivery, loaded.OrderType())
	suite.Equal(order.Pending, loaded.Status())
	suite.Require().Len(loaded.Items(), 2)
	suite.True(aggregate.Total().Equal(loaded.Total()))
	suite.Equal(aggregate.PrepEstimateMinutes(), loaded.PrepEstimateMinutes())
	suite.Equal(aggregate.DeliveryEstimateMinutes(), loaded.DeliveryEstimateMinutes())
	suite.Require().NotNil(loaded.Address())
	suite.Equal("12", loaded.Address().HouseNumber())
	suite.Require().NotNil(loaded.Location())
}

func (suite *PostgresAdaptersTestSuite) TestOrderGet_NotFound() {
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})

	_, err := repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostgresAdaptersTestSuite) TestOrderUpdate_PersistsStatusAndCourier() {
	ownerID := kernel.NewUUID()
	aggregate := suite.newDeliveryOrder(kernel.NewUUID())
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))

	suite.Require().NoError(aggregate.AdvanceTo(order.Confirmed, ownerID, profile.RoleOwner))
	suite.Require().NoError(repo.Update(context.Background(), aggregate))

	loaded, err := repo.Get(context.Background(), aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())
	suite.Nil(loaded.CourierID())
}

func (suite *PostgresAdaptersTestSuite) TestOrderGetUnassignedReady_OldestFirst() {
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	first := suite.newReadyOrder(kernel.NewUUID())
	second := suite.newReadyOrder(kernel.NewUUID())
	pending := suite.newDeliveryOrder(kernel.NewUUID())
	suite.Require().NoError(repo.Add(context.Background(), first))
	suite.Require().NoError(repo.Add(context.Background(), second))
	suite.Require().NoError(repo.Add(context.Background(), pending))

	pool, err := repo.GetUnassignedReady(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(pool, 2)
	suite.Equal(first.ID(), pool[0].ID())
	suite.Equal(second.ID(), pool[1].ID())
}

func (suite *PostgresAdaptersTestSuite) TestOrderGetByCustomer_FiltersAndOrders() {
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	customerID := kernel.NewUUID()
	mine := suite.newDeliveryOrder(customerID)
	foreign := suite.newDeliveryOrder(kernel.NewUUID())
	suite.Require().NoError(repo.Add(context.Background(), mine))
	suite.Require().NoError(repo.Add(context.Background(), foreign))

	result, err := repo.GetByCustomer(context.Background(), customerID)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(mine.ID(), result[0].ID())
}

func (suite *PostgresAdaptersTestSuite) TestClaimForCourier_MovesOrderToPickedUp() {
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	aggregate := suite.newReadyOrder(kernel.NewUUID())
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	courierID := kernel.NewUUID()

	err := repo.ClaimForCourier(context.Background(), aggregate.ID(), courierID)

	suite.Require().NoError(err)
	loaded, err := repo.Get(context.Background(), aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, loaded.Status())
	suite.Require().NotNil(loaded.CourierID())
	suite.Equal(courierID, *loaded.CourierID())
}

func (suite *PostgresAdaptersTestSuite) TestClaimForCourier_LostRace() {
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	aggregate := suite.newReadyOrder(kernel.NewUUID())
	suite.Require().NoError(repo.Add(context.Background(), aggregate))

	winner := kernel.NewUUID()
	suite.Require().NoError(repo.ClaimForCourier(context.Background(), aggregate.ID(), winner))

	err := repo.ClaimForCourier(context.Background(), aggregate.ID(), kernel.NewUUID())

	suite.Require().ErrorIs(err, order.ErrAlreadyClaimed)
}

func (suite *PostgresAdaptersTestSuite) TestClaimForCourier_PickupOrderNotClaimable() {
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	aggregate := suite.newReadyPickupOrder(kernel.NewUUID())
	suite.Require().NoError(repo.Add(context.Background(), aggregate))

	err := repo.ClaimForCourier(context.Background(), aggregate.ID(), kernel.NewUUID())

	suite.Require().ErrorIs(err, order.ErrAlreadyClaimed)

	loaded, err := repo.Get(context.Background(), aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, loaded.Status())
	suite.Nil(loaded.CourierID())
}

func (suite *PostgresAdaptersTestSuite) TestClaimForCourier_ConcurrentClaimsHaveOneWinner() {
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	aggregate := suite.newReadyOrder(kernel.NewUUID())
	suite.Require().NoError(repo.Add(context.Background(), aggregate))

	const contenders = 8
	results := make(chan error, contenders)
	var wg sync.WaitGroup
	for range contenders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.ClaimForCourier(context.Background(), aggregate.ID(), kernel.NewUUID())
		}()
	}
	wg.Wait()
	close(results)

	wins, losses := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			suite.Require().ErrorIs(err, order.ErrAlreadyClaimed)
			losses++
		}
	}
	suite.Equal(1, wins)
	suite.Equal(contenders-1, losses)
}

// Menu repository

func (suite *PostgresAdaptersTestSuite) TestMenuRoundTripAndUpdate() {
	repo := menurepo.NewGormMenuRepository(suite.db, &noopTracker{})
	item := suite.newMenuItem("Margherita", 9.50)
	suite.Require().NoError(repo.Add(context.Background(), item))

	suite.Require().NoError(item.Rename("Margherita Extra"))
	suite.Require().NoError(item.SetPrice(decimal.NewFromFloat(11.00)))
	item.SetAvailable(false)
	suite.Require().NoError(repo.Update(context.Background(), item))

	loaded, err := repo.Get(context.Background(), item.ID())
	suite.Require().NoError(err)
	suite.Equal("Margherita Extra", loaded.Name())
	suite.True(decimal.NewFromFloat(11.00).Equal(loaded.Price()))
	suite.False(loaded.IsAvailable())
}

func (suite *PostgresAdaptersTestSuite) TestMenuGetAll_ExcludesSoftDeleted() {
	repo := menurepo.NewGormMenuRepository(suite.db, &noopTracker{})
	kept := suite.newMenuItem("Carbonara", 12.00)
	removed := suite.newMenuItem("Amatriciana", 11.50)
	suite.Require().NoError(repo.Add(context.Background(), kept))
	suite.Require().NoError(repo.Add(context.Background(), removed))

	removed.SoftDelete()
	suite.Require().NoError(repo.Update(context.Background(), removed))

	all, err := repo.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.Equal(kept.ID(), all[0].ID())

	// the soft-deleted item is still reachable by ID
	loaded, err := repo.Get(context.Background(), removed.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsDeleted())
}

func (suite *PostgresAdaptersTestSuite) TestMenuDelete_RemovesRow() {
	repo := menurepo.NewGormMenuRepository(suite.db, &noopTracker{})
	item := suite.newMenuItem("Tiramisu", 6.00)
	suite.Require().NoError(repo.Add(context.Background(), item))

	suite.Require().NoError(repo.Delete(context.Background(), item.ID()))

	_, err := repo.Get(context.Background(), item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostgresAdaptersTestSuite) TestMenuHasOrderReferences() {
	menuRepo := menurepo.NewGormMenuRepository(suite.db, &noopTracker{})
	orderRepo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	item := suite.newMenuItem("Lasagna", 13.00)
	suite.Require().NoError(menuRepo.Add(context.Background(), item))

	referenced, err := menuRepo.HasOrderReferences(context.Background(), item.ID())
	suite.Require().NoError(err)
	suite.False(referenced)

	line, err := order.NewItem(item.ID(), item.Name(), item.Price(), 1, item.PrepTimeMinutes())
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.TypePickup,
		[]order.Item{line}, nil, nil, 0)
	suite.Require().NoError(err)
	suite.Require().NoError(orderRepo.Add(context.Background(), aggregate))

	referenced, err = menuRepo.HasOrderReferences(context.Background(), item.ID())
	suite.Require().NoError(err)
	suite.True(referenced)
}

// Profile repository

func (suite *PostgresAdaptersTestSuite) TestProfileEnsure_IsIdempotent() {
	repo := profilerepo.NewGormProfileRepository(suite.db, &noopTracker{})
	id := kernel.NewUUID()

	first, err := profile.NewProfile(id, "Dana", profile.RoleCustomer)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Ensure(context.Background(), first))

	again, err := profile.NewProfile(id, "Renamed", profile.RoleOwner)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Ensure(context.Background(), again))

	loaded, err := repo.Get(context.Background(), id)
	suite.Require().NoError(err)
	suite.Equal("Dana", loaded.Name())
	suite.Equal(profile.RoleCustomer, loaded.Role())
}

func (suite *PostgresAdaptersTestSuite) TestProfileUpdate_PersistsLocationAndOnline() {
	repo := profilerepo.NewGormProfileRepository(suite.db, &noopTracker{})
	courier, err := profile.NewProfile(kernel.NewUUID(), "Rider", profile.RoleDelivery)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Ensure(context.Background(), courier))

	point, err := kernel.NewGeoPoint(52.52, 13.405)
	suite.Require().NoError(err)
	suite.Require().NoError(courier.MoveTo(point))
	suite.Require().NoError(courier.SetOnline(true))
	suite.Require().NoError(repo.Update(context.Background(), courier))

	loaded, err := repo.Get(context.Background(), courier.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsOnline())
	suite.Require().NotNil(loaded.Location())
	isEqual, err := loaded.Location().IsEqual(point)
	suite.Require().NoError(err)
	suite.True(isEqual)
}

func (suite *PostgresAdaptersTestSuite) TestProfileGetCouriers_FiltersRoleOldestFirst() {
	repo := profilerepo.NewGormProfileRepository(suite.db, &noopTracker{})

	older, err := profile.NewProfile(kernel.NewUUID(), "Early Rider", profile.RoleDelivery)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Ensure(context.Background(), older))

	time.Sleep(10 * time.Millisecond)

	newer, err := profile.NewProfile(kernel.NewUUID(), "Late Rider", profile.RoleDelivery)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Ensure(context.Background(), newer))

	customer, err := profile.NewProfile(kernel.NewUUID(), "Diner", profile.RoleCustomer)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Ensure(context.Background(), customer))

	couriers, err := repo.GetCouriers(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(couriers, 2)
	suite.Equal(older.ID(), couriers[0].ID())
	suite.Equal(newer.ID(), couriers[1].ID())
}

// Rating repository

func (suite *PostgresAdaptersTestSuite) TestRatingAdd_SecondRatingForSameOrderIsRejected() {
	repo := ratingrepo.NewGormRatingRepository(suite.db, &noopTracker{})
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	first, err := order.NewRating(kernel.NewUUID(), orderID, customerID, 5, "great", "")
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(context.Background(), first))

	second, err := order.NewRating(kernel.NewUUID(), orderID, customerID, 2, "changed my mind", "")
	suite.Require().NoError(err)

	err = repo.Add(context.Background(), second)

	suite.Require().ErrorIs(err, order.ErrAlreadyRated)
}

func (suite *PostgresAdaptersTestSuite) TestRatingReviseRoundTrip() {
	repo := ratingrepo.NewGormRatingRepository(suite.db, &noopTracker{})
	rating, err := order.NewRating(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		3, "fine", "less salt")
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(context.Background(), rating))

	suite.Require().NoError(rating.Revise(4, "better than I thought", ""))
	suite.Require().NoError(repo.Update(context.Background(), rating))

	loaded, err := repo.GetByOrder(context.Background(), rating.OrderID())
	suite.Require().NoError(err)
	suite.Equal(4, loaded.Stars())
	suite.Equal("better than I thought", loaded.Review())
	suite.Equal("", loaded.Suggestion())
}

func (suite *PostgresAdaptersTestSuite) TestRatingGetByOrder_NotFound() {
	repo := ratingrepo.NewGormRatingRepository(suite.db, &noopTracker{})

	_, err := repo.GetByOrder(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// Unit of work

func (suite *PostgresAdaptersTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	item := suite.newMenuItem("Phantom Dish", 7.00)
	suite.Require().NoError(uow.MenuRepository().Add(ctx, item))
	suite.Require().NoError(uow.Rollback(ctx))

	repo := menurepo.NewGormMenuRepository(suite.db, &noopTracker{})
	_, err := repo.Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostgresAdaptersTestSuite) TestUnitOfWork_CommitSpansRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.newDeliveryOrder(kernel.NewUUID())
	courier, err := profile.NewProfile(kernel.NewUUID(), "Rider", profile.RoleDelivery)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.ProfileRepository().Ensure(ctx, courier))
	suite.Require().NoError(uow.Commit(ctx))

	orderRepo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	_, err = orderRepo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	profileRepo := profilerepo.NewGormProfileRepository(suite.db, &noopTracker{})
	_, err = profileRepo.Get(ctx, courier.ID())
	suite.Require().NoError(err)
}

func (suite *PostgresAdaptersTestSuite) TestUnitOfWork_CommitWithoutBeginFails() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

// helpers

func (suite *PostgresAdaptersTestSuite) newDeliveryOrder(customerID kernel.UUID) *order.Order {
	line1, err := order.NewItem(kernel.NewUUID(), "Margherita", decimal.NewFromFloat(9.50), 1, 15)
	suite.Require().NoError(err)
	line2, err := order.NewItem(kernel.NewUUID(), "Tiramisu", decimal.NewFromFloat(6.00), 2, 10)
	suite.Require().NoError(err)

	address, err := order.NewAddress("12", "B", "blue door", "+49 30 1234567")
	suite.Require().NoError(err)
	location, err := kernel.NewGeoPoint(52.5200, 13.4050)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID, order.TypeDelivery,
		[]order.Item{line1, line2}, &address, &location, 1200)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *PostgresAdaptersTestSuite) newReadyOrder(customerID kernel.UUID) *order.Order {
	aggregate := suite.newDeliveryOrder(customerID)
	ownerID := kernel.NewUUID()
	for _, status := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		suite.Require().NoError(aggregate.AdvanceTo(status, ownerID, profile.RoleOwner))
	}
	return aggregate
}

func (suite *PostgresAdaptersTestSuite) newReadyPickupOrder(customerID kernel.UUID) *order.Order {
	line, err := order.NewItem(kernel.NewUUID(), "Margherita", decimal.NewFromFloat(9.50), 1, 15)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID, order.TypePickup,
		[]order.Item{line}, nil, nil, 0)
	suite.Require().NoError(err)

	ownerID := kernel.NewUUID()
	for _, status := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		suite.Require().NoError(aggregate.AdvanceTo(status, ownerID, profile.RoleOwner))
	}
	return aggregate
}

func (suite *PostgresAdaptersTestSuite) newMenuItem(name string, price float64) *menu.MenuItem {
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, decimal.NewFromFloat(price))
	suite.Require().NoError(err)
	return item
}

func TestPostgresAdaptersTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresAdaptersTestSuite))
}

// noopTracker satisfies the repositories' tracker dependency when they are
// used outside a unit of work.
type noopTracker struct{}

func (t *noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
