package http

import (
	"time"

	"foodcourt/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// OrderResponse is the body of GET /api/v1/orders/:id.
type OrderResponse struct {
	ID                       string              `json:"id"`
	CustomerID               string              `json:"customerId"`
	CourierID                string              `json:"courierId,omitempty"`
	OrderType                string              `json:"orderType"`
	Status                   string              `json:"status"`
	Items                    []OrderItemResponse `json:"items"`
	Address                  *AddressResponse    `json:"address,omitempty"`
	Total                    decimal.Decimal     `json:"total"`
	RemainingPrepMinutes     int                 `json:"remainingPrepMinutes"`
	RemainingDeliveryMinutes int                 `json:"remainingDeliveryMinutes"`
	CreatedAt                time.Time           `json:"createdAt"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

// AddressResponse is the delivery address of an order.
type AddressResponse struct {
	HouseNumber string `json:"houseNumber"`
	Building    string `json:"building,omitempty"`
	Landmark    string `json:"landmark,omitempty"`
	Phone       string `json:"phone"`
}

// OrderSummaryResponse is one entry of GET /api/v1/orders.
type OrderSummaryResponse struct {
	ID         string          `json:"id"`
	CourierID  string          `json:"courierId,omitempty"`
	OrderType  string          `json:"orderType"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	ItemCount  int             `json:"itemCount"`
	Unassigned bool            `json:"unassigned"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func toOrderResponse(result *queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal,
		})
	}

	var address *AddressResponse
	if result.Address != nil {
		address = &AddressResponse{
			HouseNumber: result.Address.HouseNumber,
			Building:    result.Address.Building,
			Landmark:    result.Address.Landmark,
			Phone:       result.Address.Phone,
		}
	}

	response := OrderResponse{
		ID:                       result.ID.String(),
		CustomerID:               result.CustomerID.String(),
		OrderType:                result.OrderType,
		Status:                   result.Status,
		Items:                    items,
		Address:                  address,
		Total:                    result.Total,
		RemainingPrepMinutes:     result.RemainingPrepMinutes,
		RemainingDeliveryMinutes: result.RemainingDeliveryMinutes,
		CreatedAt:                result.CreatedAt,
	}
	if result.CourierID != nil {
		response.CourierID = result.CourierID.String()
	}
	return response
}
