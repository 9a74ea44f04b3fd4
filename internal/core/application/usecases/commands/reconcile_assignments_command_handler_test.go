package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileAssignmentsCommandHandler_Handle_AssignsWholePool(t *testing.T) {
	ctx := t.Context()
	first := storedOrder(t, kernel.NewUUID(), order.Ready, nil)
	second := storedOrder(t, kernel.NewUUID(), order.Ready, nil)
	onlineCourier := courier(t, true)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetUnassignedReady", mock.Anything).Return([]*order.Order{first, second}, nil).Once()
	orderRepo.On("Update", mock.Anything, first).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, second).Return(nil).Once()

	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetCouriers", mock.Anything).Return([]*profile.Profile{onlineCourier}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProfileRepository").Return(profileRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyOrderChanged", ctx, first).Once()
	notifier.On("NotifyOrderChanged", ctx, second).Once()

	h := commands.NewReconcileAssignmentsCommandHandler(factory, services.NewOrderDispatcher(), notifier)
	cmd := commands.NewReconcileAssignmentsCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, first.CourierID())
	require.NotNil(t, second.CourierID())
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestReconcileAssignmentsCommandHandler_Handle_EmptyPool(t *testing.T) {
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetUnassignedReady", mock.Anything).Return([]*order.Order{}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileAssignmentsCommandHandler(factory, services.NewOrderDispatcher(), new(MockNotifier))
	cmd := commands.NewReconcileAssignmentsCommand()
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestReconcileAssignmentsCommandHandler_Handle_NoCouriersLeavesPoolUntouched(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, kernel.NewUUID(), order.Ready, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetUnassignedReady", mock.Anything).Return([]*order.Order{stored}, nil).Once()

	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetCouriers", mock.Anything).Return([]*profile.Profile{}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProfileRepository").Return(profileRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileAssignmentsCommandHandler(factory, services.NewOrderDispatcher(), new(MockNotifier))
	cmd := commands.NewReconcileAssignmentsCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Nil(t, stored.CourierID())
	orderRepo.AssertExpectations(t)
}
