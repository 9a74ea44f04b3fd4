package commands_test

import (
	"testing"
	"time"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/profile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func restaurantLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(48.8584, 2.2945)
	require.NoError(t, err)
	return point
}

func deliveryDetails() *commands.DeliveryDetails {
	return &commands.DeliveryDetails{
		HouseNumber: "12A",
		Phone:       "+15550101",
		Latitude:    48.8606,
		Longitude:   2.3376,
	}
}

func storedOrder(t *testing.T, customerID kernel.UUID, status order.Status, courierID *kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Margherita", decimal.NewFromFloat(8.50), 1, 15)
	require.NoError(t, err)
	address, err := order.NewAddress("12A", "", "", "+15550101")
	require.NoError(t, err)
	location, err := kernel.NewGeoPoint(48.8606, 2.3376)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, courierID, order.TypeDelivery, status,
		[]order.Item{item}, &address, &location, decimal.NewFromFloat(8.50), 15, 13,
		time.Now().UTC().Add(-5*time.Minute))
	require.NoError(t, err)
	return o
}

func courier(t *testing.T, online bool) *profile.Profile {
	t.Helper()
	p, err := profile.RestoreProfile(kernel.NewUUID(), "courier", profile.RoleDelivery, nil, online,
		time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	return p
}
