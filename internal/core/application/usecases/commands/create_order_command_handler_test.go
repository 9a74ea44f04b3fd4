package commands_test

import (
	"errors"
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderableMenuItem(t *testing.T, name string, price float64, prepMinutes int) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, decimal.NewFromFloat(price))
	require.NoError(t, err)
	require.NoError(t, item.SetPrepTime(prepMinutes))
	return item
}

func TestCreateOrderCommandHandler_Handle_Delivery(t *testing.T) {
	ctx := t.Context()
	pizza := orderableMenuItem(t, "Margherita", 8.50, 15)
	pasta := orderableMenuItem(t, "Lasagna", 11.00, 20)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
		[]commands.CartLine{
			{MenuItemID: pizza.ID(), Quantity: 2},
			{MenuItemID: pasta.ID(), Quantity: 1},
		}, deliveryDetails())
	require.NoError(t, err)

	planner := new(MockRoutePlanner)
	planner.On("RouteDistanceMeters", ctx, mock.Anything, mock.Anything).Return(1200.0, nil).Once()

	var created *order.Order
	menuRepo := new(MockMenuRepository)
	menuRepo.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil).Once()
	menuRepo.On("Get", mock.Anything, pasta.ID()).Return(pasta, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuRepository").Return(menuRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, planner, restaurantLocation(t), notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, 20, created.PrepEstimateMinutes())
	assert.Equal(t, 24, created.DeliveryEstimateMinutes())
	assert.True(t, decimal.NewFromFloat(28.00).Equal(created.Total()))

	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	planner.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PickupSkipsRouting(t *testing.T) {
	ctx := t.Context()
	pizza := orderableMenuItem(t, "Margherita", 8.50, 15)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.TypePickup,
		[]commands.CartLine{{MenuItemID: pizza.ID(), Quantity: 1}}, nil)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuRepository").Return(menuRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	planner := new(MockRoutePlanner) // no expectations: routing must not be called

	notifier := new(MockNotifier)
	notifier.On("NotifyOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, planner, restaurantLocation(t), notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	planner.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnorderableItem(t *testing.T) {
	ctx := t.Context()
	pizza := orderableMenuItem(t, "Margherita", 8.50, 15)
	pizza.SoftDelete()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.TypePickup,
		[]commands.CartLine{{MenuItemID: pizza.ID(), Quantity: 1}}, nil)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuRepository").Return(menuRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier) // a failed placement must not notify

	h := commands.NewCreateOrderCommandHandler(factory, new(MockRoutePlanner), restaurantLocation(t), notifier)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RoutingError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
		[]commands.CartLine{{MenuItemID: kernel.NewUUID(), Quantity: 1}}, deliveryDetails())
	require.NoError(t, err)

	planner := new(MockRoutePlanner)
	planner.On("RouteDistanceMeters", ctx, mock.Anything, mock.Anything).
		Return(0.0, errors.New("routing unavailable")).Once()

	factory := new(MockOrderMenuUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, planner, restaurantLocation(t), new(MockNotifier))
	require.Error(t, h.Handle(ctx, cmd))
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockOrderMenuUoWFactory), new(MockRoutePlanner),
		restaurantLocation(t), new(MockNotifier))
	require.Error(t, h.Handle(t.Context(), commands.CreateOrderCommand{}))
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	lines := []commands.CartLine{{MenuItemID: kernel.NewUUID(), Quantity: 1}}

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery, lines, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.TypePickup, nil, nil)
	assert.ErrorIs(t, err, commands.ErrCartIsEmpty)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.TypePickup,
		[]commands.CartLine{{MenuItemID: kernel.NewUUID(), Quantity: 0}}, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, order.TypePickup, lines, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
