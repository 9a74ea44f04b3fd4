// Package ws pushes order change events to connected clients over
// WebSocket. Clients subscribe once after authenticating; every order
// mutation is fanned out to the subscribers allowed to see that order, and
// clients re-fetch through the regular read API. Delivery is best effort.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/core/domain/services"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// OrderEvent is the payload pushed on every order change. It carries enough
// for the client to decide whether to re-fetch; the full order always comes
// from the read API.
type OrderEvent struct {
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	OrderType string `json:"orderType"`
	CourierID string `json:"courierId,omitempty"`
}

type subscriber struct {
	conn    *websocket.Conn
	actorID kernel.UUID
	role    profile.Role
	writeMu sync.Mutex
}

// Hub tracks connected subscribers and implements ports.OrderNotifier.
// Fan-out is gated per subscriber by the read access policy, so a customer
// never receives events for someone else's order.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	policy      services.AccessPolicy
	logger      *slog.Logger
}

// NewHub creates an order event hub.
func NewHub(policy services.AccessPolicy, logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		policy:      policy,
		logger:      logger,
	}
}

// Handle upgrades the request to a WebSocket and keeps the connection
// subscribed until the client disconnects. Actor identity must already be
// resolved by the authentication middleware.
func (h *Hub) Handle(c echo.Context, actorID kernel.UUID, role profile.Role) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return err
	}

	sub := &subscriber{conn: conn, actorID: actorID, role: role}
	h.add(sub)
	h.logger.Info("websocket subscriber connected",
		"actorId", actorID.String(), "role", role.String())

	// Reads are only used to detect disconnect; clients never send data.
	go h.drain(sub)

	return nil
}

// NotifyOrderChanged fans the updated order out to every subscriber
// authorized to read it. Failed writes drop the subscriber.
func (h *Hub) NotifyOrderChanged(_ context.Context, aggregate *order.Order) {
	event := OrderEvent{
		OrderID:   aggregate.ID().String(),
		Status:    aggregate.Status().String(),
		OrderType: aggregate.OrderType().String(),
	}
	if courierID := aggregate.CourierID(); courierID != nil {
		event.CourierID = courierID.String()
	}

	for _, sub := range h.snapshot() {
		if !h.policy.CanReadOrder(sub.actorID, sub.role, aggregate) {
			continue
		}

		if err := h.send(sub, event); err != nil {
			h.logger.Warn("websocket write failed, dropping subscriber",
				"actorId", sub.actorID.String(), "error", err)
			h.remove(sub)
		}
	}
}

// Close disconnects every subscriber. Used on shutdown.
func (h *Hub) Close() {
	for _, sub := range h.snapshot() {
		h.remove(sub)
	}
}

func (h *Hub) send(sub *subscriber, event OrderEvent) error {
	sub.writeMu.Lock()
	defer sub.writeMu.Unlock()

	if err := sub.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return sub.conn.WriteJSON(event)
}

func (h *Hub) drain(sub *subscriber) {
	defer h.remove(sub)
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) add(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[sub] = struct{}{}
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[sub]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.subscribers, sub)
	h.mu.Unlock()

	_ = sub.conn.Close()
}

func (h *Hub) snapshot() []*subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := make([]*subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	return subs
}
