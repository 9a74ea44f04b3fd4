package queries_test

import (
	"context"
	"testing"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMenuQuery(t *testing.T) {
	query, err := queries.NewGetMenuQuery(profile.RoleCustomer)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, profile.RoleCustomer, query.ActorRole())
}

func TestNewGetMenuQuery_InvalidRole(t *testing.T) {
	_, err := queries.NewGetMenuQuery(profile.RoleUnknown)

	require.Error(t, err)
}

func TestGetMenuQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetMenuQuery

	err := query.Validate()

	require.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}

func TestNewGetOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID, actorID, profile.RoleOwner)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, actorID, query.ActorID())
	assert.Equal(t, profile.RoleOwner, query.ActorRole())
}

func TestNewGetOrderQuery_Invalid(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID(), profile.RoleOwner)
	require.Error(t, err)

	_, err = queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID(), profile.RoleUnknown)
	require.Error(t, err)
}

func TestGetOrderQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetOrderQuery

	err := query.Validate()

	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewListOrdersQuery(t *testing.T) {
	actorID := kernel.NewUUID()

	query, err := queries.NewListOrdersQuery(actorID, profile.RoleDelivery)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, actorID, query.ActorID())
	assert.Equal(t, profile.RoleDelivery, query.ActorRole())
}

func TestNewListOrdersQuery_Invalid(t *testing.T) {
	_, err := queries.NewListOrdersQuery(kernel.UUID{}, profile.RoleCustomer)
	require.Error(t, err)
}

func TestListOrdersQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.ListOrdersQuery

	err := query.Validate()

	require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}

func TestGetMenuQueryHandler_RejectsZeroValueQuery(t *testing.T) {
	handler := queries.NewGetMenuQueryHandler(nil)

	_, err := handler.Handle(context.Background(), queries.GetMenuQuery{})

	require.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}
