// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery address and destination coordinate are embedded; item lines
// live in a child table keyed by order id.
type OrderDTO struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID              uuid.UUID  `gorm:"type:uuid;index"`
	CourierID               *uuid.UUID `gorm:"type:uuid;index"`
	OrderType               int
	Status                  int        `gorm:"index"`
	Address                 AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Latitude                *float64
	Longitude               *float64
	Total                   decimal.Decimal `gorm:"type:numeric(12,2)"`
	PrepEstimateMinutes     int
	DeliveryEstimateMinutes int
	CreatedAt               time.Time
	Items                   []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
// All columns are empty for pickup orders.
type AddressDTO struct {
	HouseNumber string
	Building    string
	Landmark    string
	Phone       string
}

// OrderItemDTO represents one order line with its menu snapshot.
type OrderItemDTO struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID      uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity        int
	PrepTimeMinutes int
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var address AddressDTO
	if a := aggregate.Address(); a != nil {
		address = AddressDTO{
			HouseNumber: a.HouseNumber(),
			Building:    a.Building(),
			Landmark:    a.Landmark(),
			Phone:       a.Phone(),
		}
	}

	var latitude, longitude *float64
	if p := aggregate.Location(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		latitude, longitude = &lat, &lng
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:         aggregate.ID().Bytes(),
			MenuItemID:      item.MenuItemID().Bytes(),
			Name:            item.Name(),
			UnitPrice:       item.UnitPrice(),
			Quantity:        item.Quantity(),
			PrepTimeMinutes: item.PrepTimeMinutes(),
		})
	}

	return OrderDTO{
		ID:                      aggregate.ID().Bytes(),
		CustomerID:              aggregate.CustomerID().Bytes(),
		CourierID:               courierID,
		OrderType:               int(aggregate.OrderType()),
		Status:                  int(aggregate.Status()),
		Address:                 address,
		Latitude:                latitude,
		Longitude:               longitude,
		Total:                   aggregate.Total(),
		PrepEstimateMinutes:     aggregate.PrepEstimateMinutes(),
		DeliveryEstimateMinutes: aggregate.DeliveryEstimateMinutes(),
		CreatedAt:               aggregate.CreatedAt(),
		Items:                   items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines, address, and courier
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(menuItemID, itemDTO.Name, itemDTO.UnitPrice,
			itemDTO.Quantity, itemDTO.PrepTimeMinutes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var address *order.Address
	var location *kernel.GeoPoint
	if order.Type(dto.OrderType) == order.TypeDelivery {
		a, addrErr := order.NewAddress(dto.Address.HouseNumber, dto.Address.Building,
			dto.Address.Landmark, dto.Address.Phone)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a

		if dto.Latitude != nil && dto.Longitude != nil {
			p, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
			if pointErr != nil {
				return nil, pointErr
			}
			location = &p
		}
	}

	return order.RestoreOrder(id, customerID, courierID, order.Type(dto.OrderType),
		order.Status(dto.Status), items, address, location, dto.Total,
		dto.PrepEstimateMinutes, dto.DeliveryEstimateMinutes, dto.CreatedAt)
}
