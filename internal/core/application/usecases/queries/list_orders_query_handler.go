package queries

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/profile"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryResponse represents one order in a listing. Unassigned is
// set for Ready delivery orders without a courier, which is what couriers
// scan the list for.
type ListOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	CourierID  *kernel.UUID
	OrderType  string
	Status     string
	Total      decimal.Decimal
	ItemCount  int
	Unassigned bool
	CreatedAt  time.Time
}

// ListOrdersQueryHandler reads order listings directly from the database,
// filtering visibility per role in SQL.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query, newest orders first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.customer_id,
			o.courier_id,
			o.order_type,
			o.status,
			o.total,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id),
			o.created_at
		FROM orders o
	`
	var args []any
	switch query.ActorRole() {
	case profile.RoleCustomer:
		sql += " WHERE o.customer_id = ?"
		args = append(args, query.ActorID().Bytes())
	case profile.RoleDelivery:
		sql += ` WHERE o.courier_id = ?
			OR (o.status = ? AND o.order_type = ? AND o.courier_id IS NULL)`
		args = append(args, query.ActorID().Bytes(), order.Ready, order.TypeDelivery)
	case profile.RoleOwner, profile.RoleUnknown:
		// owner sees everything; RoleUnknown cannot pass query validation
	}
	sql += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var resp ListOrdersQueryResponse
		var id, customerID uuid.UUID
		var courierID *uuid.UUID
		var orderType, status int

		err = rows.Scan(
			&id,
			&customerID,
			&courierID,
			&orderType,
			&status,
			&resp.Total,
			&resp.ItemCount,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}
		if courierID != nil {
			cID, idErr := kernel.UUIDFromBytes((*courierID)[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CourierID = &cID
		}

		resp.OrderType = order.Type(orderType).String()
		resp.Status = order.Status(status).String()
		resp.Unassigned = order.Status(status) == order.Ready &&
			order.Type(orderType) == order.TypeDelivery && courierID == nil
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
