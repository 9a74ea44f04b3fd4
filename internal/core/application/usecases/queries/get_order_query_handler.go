package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryResponse represents a complete order view: the lines, the
// delivery address when there is one, and the remaining time estimates.
type GetOrderQueryResponse struct {
	ID                       kernel.UUID
	CustomerID               kernel.UUID
	CourierID                *kernel.UUID
	OrderType                string
	Status                   string
	Items                    []GetOrderItemResponse
	Address                  *GetOrderAddressResponse
	Total                    decimal.Decimal
	RemainingPrepMinutes     int
	RemainingDeliveryMinutes int
	CreatedAt                time.Time
}

// GetOrderItemResponse represents one order line in the order view.
type GetOrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int
	LineTotal  decimal.Decimal
}

// GetOrderAddressResponse represents the delivery address in the order view.
type GetOrderAddressResponse struct {
	HouseNumber string
	Building    string
	Landmark    string
	Phone       string
}

// GetOrderQueryHandler reads a single order from the database and applies
// the read access policy before returning it.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle executes the order detail query. Returns errs.ObjectNotFoundError
// when the order does not exist and errs.UnauthorizedError when the actor
// may not see it.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanReadOrder(query.ActorID(), query.ActorRole(), aggregate) {
		return nil, errs.NewUnauthorizedError("order is not visible to this profile")
	}

	return buildOrderResponse(aggregate, time.Now().UTC()), nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			courier_id,
			order_type,
			status,
			address_house_number,
			address_building,
			address_landmark,
			address_phone,
			latitude,
			longitude,
			total,
			prep_estimate_minutes,
			delivery_estimate_minutes,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		id, customerID            uuid.UUID
		courierID                 *uuid.UUID
		orderType, status         int
		houseNumber, building     string
		landmark, phone           string
		latitude, longitude       *float64
		total                     decimal.Decimal
		prepEstimate, deliveryEst int
		createdAt                 time.Time
	)
	err := row.Scan(&id, &customerID, &courierID, &orderType, &status,
		&houseNumber, &building, &landmark, &phone, &latitude, &longitude,
		&total, &prepEstimate, &deliveryEst, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return nil, err
	}

	items, err := h.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	domainID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	domainCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}

	var domainCourierID *kernel.UUID
	if courierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*courierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		domainCourierID = &cID
	}

	var address *order.Address
	var location *kernel.GeoPoint
	if order.Type(orderType) == order.TypeDelivery {
		a, addrErr := order.NewAddress(houseNumber, building, landmark, phone)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a

		if latitude != nil && longitude != nil {
			p, pointErr := kernel.NewGeoPoint(*latitude, *longitude)
			if pointErr != nil {
				return nil, pointErr
			}
			location = &p
		}
	}

	return order.RestoreOrder(domainID, domainCustomerID, domainCourierID,
		order.Type(orderType), order.Status(status), items, address, location,
		total, prepEstimate, deliveryEst, createdAt)
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]order.Item, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			unit_price,
			quantity,
			prep_time_minutes
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]order.Item, 0)
	for rows.Next() {
		var (
			menuItemID      uuid.UUID
			name            string
			unitPrice       decimal.Decimal
			quantity        int
			prepTimeMinutes int
		)
		if err = rows.Scan(&menuItemID, &name, &unitPrice, &quantity, &prepTimeMinutes); err != nil {
			return nil, err
		}

		domainMenuItemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewItem(domainMenuItemID, name, unitPrice, quantity, prepTimeMinutes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func buildOrderResponse(aggregate *order.Order, now time.Time) *GetOrderQueryResponse {
	items := make([]GetOrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, GetOrderItemResponse{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
			LineTotal:  item.LineTotal(),
		})
	}

	var address *GetOrderAddressResponse
	if a := aggregate.Address(); a != nil {
		address = &GetOrderAddressResponse{
			HouseNumber: a.HouseNumber(),
			Building:    a.Building(),
			Landmark:    a.Landmark(),
			Phone:       a.Phone(),
		}
	}

	return &GetOrderQueryResponse{
		ID:                       aggregate.ID(),
		CustomerID:               aggregate.CustomerID(),
		CourierID:                aggregate.CourierID(),
		OrderType:                aggregate.OrderType().String(),
		Status:                   aggregate.Status().String(),
		Items:                    items,
		Address:                  address,
		Total:                    aggregate.Total(),
		RemainingPrepMinutes:     aggregate.RemainingPrepMinutes(now),
		RemainingDeliveryMinutes: aggregate.RemainingDeliveryMinutes(now),
		CreatedAt:                aggregate.CreatedAt(),
	}
}
