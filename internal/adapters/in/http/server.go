// Package http exposes the ordering backend as a REST API on echo. All
// routes sit behind the bearer-token middleware; the actor's identity and
// role come from the token, never from the request body.
package http

import (
	"net/http"

	"foodcourt/internal/adapters/in/ws"
	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server wires HTTP routes to the application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	advanceStatusHandler commands.AdvanceOrderStatusCommandHandler
	claimOrderHandler    commands.ClaimOrderCommandHandler
	submitRatingHandler  commands.SubmitRatingCommandHandler
	reviseRatingHandler  commands.ReviseRatingCommandHandler
	saveMenuItemHandler  commands.SaveMenuItemCommandHandler
	removeMenuHandler    commands.RemoveMenuItemCommandHandler
	ensureProfileHandler commands.EnsureProfileCommandHandler
	updateProfileHandler commands.UpdateProfileCommandHandler

	getMenuHandler    queries.GetMenuQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	hub *ws.Hub
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceStatusHandler commands.AdvanceOrderStatusCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	reviseRatingHandler commands.ReviseRatingCommandHandler,
	saveMenuItemHandler commands.SaveMenuItemCommandHandler,
	removeMenuHandler commands.RemoveMenuItemCommandHandler,
	ensureProfileHandler commands.EnsureProfileCommandHandler,
	updateProfileHandler commands.UpdateProfileCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	hub *ws.Hub,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		advanceStatusHandler: advanceStatusHandler,
		claimOrderHandler:    claimOrderHandler,
		submitRatingHandler:  submitRatingHandler,
		reviseRatingHandler:  reviseRatingHandler,
		saveMenuItemHandler:  saveMenuItemHandler,
		removeMenuHandler:    removeMenuHandler,
		ensureProfileHandler: ensureProfileHandler,
		updateProfileHandler: updateProfileHandler,
		getMenuHandler:       getMenuHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		hub:                  hub,
	}
}

// RegisterRoutes mounts every route under /api/v1 behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	api.GET("/menu", s.GetMenu)
	api.PUT("/menu/items/:id", s.SaveMenuItem)
	api.DELETE("/menu/items/:id", s.RemoveMenuItem)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.AdvanceOrderStatus)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/rating", s.SubmitRating)
	api.PUT("/orders/:id/rating", s.ReviseRating)

	api.POST("/profiles", s.EnsureProfile)
	api.PATCH("/profiles/:id", s.UpdateProfile)

	api.GET("/ws/orders", s.SubscribeOrders)
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderType string            `json:"orderType"`
	Lines     []CartLineRequest `json:"lines"`
	Delivery  *DeliveryRequest  `json:"delivery,omitempty"`
}

// CartLineRequest is one requested menu item. Prices are never accepted
// from the client.
type CartLineRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// DeliveryRequest carries the destination for delivery orders.
type DeliveryRequest struct {
	HouseNumber string  `json:"houseNumber"`
	Building    string  `json:"building"`
	Landmark    string  `json:"landmark"`
	Phone       string  `json:"phone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// CreateOrder handles POST /api/v1/orders - places a new order for the
// authenticated customer.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return respondError(c, err)
	}

	lines := make([]commands.CartLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		menuItemID, idErr := kernel.UUIDFromString(line.MenuItemID)
		if idErr != nil {
			return respondError(c, idErr)
		}
		lines = append(lines, commands.CartLine{MenuItemID: menuItemID, Quantity: line.Quantity})
	}

	var delivery *commands.DeliveryDetails
	if req.Delivery != nil {
		delivery = &commands.DeliveryDetails{
			HouseNumber: req.Delivery.HouseNumber,
			Building:    req.Delivery.Building,
			Landmark:    req.Delivery.Landmark,
			Phone:       req.Delivery.Phone,
			Latitude:    req.Delivery.Latitude,
			Longitude:   req.Delivery.Longitude,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actorID(c), orderType, lines, delivery)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// AdvanceStatusRequest is the body of POST /api/v1/orders/:id/status.
type AdvanceStatusRequest struct {
	Target string `json:"target"`
}

// AdvanceOrderStatus handles POST /api/v1/orders/:id/status - moves the
// order along its lifecycle as the authenticated actor.
func (s *Server) AdvanceOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req AdvanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, actorID(c), actorRole(c), target)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.advanceStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - lets a courier claim a
// Ready delivery order. Exactly one of racing couriers wins; the others get
// a conflict.
func (s *Server) ClaimOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actorID(c), actorRole(c))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.claimOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RatingRequest is the body of POST and PUT /api/v1/orders/:id/rating.
type RatingRequest struct {
	Stars      int    `json:"stars"`
	Review     string `json:"review"`
	Suggestion string `json:"suggestion"`
}

// SubmitRating handles POST /api/v1/orders/:id/rating - rates a delivered
// order once.
func (s *Server) SubmitRating(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req RatingRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), orderID, actorID(c),
		req.Stars, req.Review, req.Suggestion)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.submitRatingHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// ReviseRating handles PUT /api/v1/orders/:id/rating - lets the author
// revise an existing rating.
func (s *Server) ReviseRating(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req RatingRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewReviseRatingCommand(orderID, actorID(c),
		req.Stars, req.Review, req.Suggestion)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.reviseRatingHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MenuItemRequest is the body of PUT /api/v1/menu/items/:id.
type MenuItemRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageRef        string          `json:"imageRef"`
	Category        string          `json:"category"`
	PrepTimeMinutes int             `json:"prepTimeMinutes"`
	IsAvailable     bool            `json:"isAvailable"`
}

// SaveMenuItem handles PUT /api/v1/menu/items/:id - creates or updates a
// menu item. Owner only.
func (s *Server) SaveMenuItem(c echo.Context) error {
	itemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSaveMenuItemCommand(itemID, actorRole(c), req.Name,
		req.Description, req.Price, req.ImageRef, req.Category,
		req.PrepTimeMinutes, req.IsAvailable)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.saveMenuItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveMenuItem handles DELETE /api/v1/menu/items/:id - removes a menu
// item, falling back to soft deletion when order history references it.
func (s *Server) RemoveMenuItem(c echo.Context) error {
	itemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewRemoveMenuItemCommand(itemID, actorRole(c))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.removeMenuHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// EnsureProfile handles POST /api/v1/profiles - registers the authenticated
// identity's profile if it does not exist yet. Safe to call on every
// sign-in.
func (s *Server) EnsureProfile(c echo.Context) error {
	cmd, err := commands.NewEnsureProfileCommand(actorID(c), actorName(c), actorRole(c))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.ensureProfileHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateProfileRequest is the body of PATCH /api/v1/profiles/:id. Absent
// fields are left unchanged.
type UpdateProfileRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Online    *bool    `json:"online"`
}

// UpdateProfile handles PATCH /api/v1/profiles/:id - lets a profile holder
// update their own location and availability.
func (s *Server) UpdateProfile(c echo.Context) error {
	profileID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	var location *kernel.GeoPoint
	if req.Latitude != nil && req.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
		if pointErr != nil {
			return respondError(c, pointErr)
		}
		location = &point
	}

	cmd, err := commands.NewUpdateProfileCommand(profileID, actorID(c), location, req.Online)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.updateProfileHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/v1/menu - lists the menu for the requesting role.
func (s *Server) GetMenu(c echo.Context) error {
	query, err := queries.NewGetMenuQuery(actorRole(c))
	if err != nil {
		return respondError(c, err)
	}

	items, err := s.getMenuHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, MenuItemResponse{
			ID:              item.ID.String(),
			Name:            item.Name,
			Description:     item.Description,
			Price:           item.Price,
			ImageRef:        item.ImageRef,
			Category:        item.Category,
			PrepTimeMinutes: item.PrepTimeMinutes,
			IsAvailable:     item.IsAvailable,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// MenuItemResponse is one menu entry in GET /api/v1/menu.
type MenuItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	ImageRef        string          `json:"imageRef,omitempty"`
	Category        string          `json:"category,omitempty"`
	PrepTimeMinutes int             `json:"prepTimeMinutes"`
	IsAvailable     bool            `json:"isAvailable"`
}

// GetOrder handles GET /api/v1/orders/:id - fetches one order if the actor
// may see it.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actorID(c), actorRole(c))
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(result))
}

// ListOrders handles GET /api/v1/orders - lists the orders visible to the
// actor, including the unclaimed Ready pool for couriers.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListOrdersQuery(actorID(c), actorRole(c))
	if err != nil {
		return respondError(c, err)
	}

	results, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]OrderSummaryResponse, 0, len(results))
	for _, result := range results {
		summary := OrderSummaryResponse{
			ID:         result.ID.String(),
			OrderType:  result.OrderType,
			Status:     result.Status,
			Total:      result.Total,
			ItemCount:  result.ItemCount,
			Unassigned: result.Unassigned,
			CreatedAt:  result.CreatedAt,
		}
		if result.CourierID != nil {
			summary.CourierID = result.CourierID.String()
		}
		response = append(response, summary)
	}

	return c.JSON(http.StatusOK, response)
}

// SubscribeOrders handles GET /api/v1/ws/orders - upgrades to a WebSocket
// subscription for order change events.
func (s *Server) SubscribeOrders(c echo.Context) error {
	return s.hub.Handle(c, actorID(c), actorRole(c))
}
