package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCartIsEmpty = errors.New("cart must contain at least one line")
)

// CartLine is one requested menu item with its quantity. Prices and
// preparation times are snapshotted from the menu by the handler, never
// accepted from the client.
type CartLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// DeliveryDetails carries the destination for delivery orders.
type DeliveryDetails struct {
	HouseNumber string
	Building    string
	Landmark    string
	Phone       string
	Latitude    float64
	Longitude   float64
}

// CreateOrderCommand represents a customer's request to place an order.
// Delivery orders carry destination details; pickup orders leave them nil.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, order.TypeDelivery,
//	    []CartLine{{MenuItemID: pizzaID, Quantity: 2}},
//	    &DeliveryDetails{HouseNumber: "12A", Phone: "+15550101", Latitude: 48.85, Longitude: 2.29})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	orderType  order.Type
	lines      []CartLine
	delivery   *DeliveryDetails

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the order type, the cart lines, and for delivery
// orders the presence of destination details.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	orderType order.Type,
	lines []CartLine,
	delivery *DeliveryDetails,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setOrderType(orderType),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if orderType == order.TypeDelivery {
		if err := cmd.setDelivery(delivery); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderType returns Delivery or Pickup.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Lines returns the requested cart lines.
func (c CreateOrderCommand) Lines() []CartLine {
	return c.lines
}

// Delivery returns the destination details, or nil for pickup orders.
func (c CreateOrderCommand) Delivery() *DeliveryDetails {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setLines(lines []CartLine) error {
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}
	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("menu item id", err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity must be greater than 0")
		}
	}
	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setDelivery(delivery *DeliveryDetails) error {
	if delivery == nil {
		return errs.NewValueIsRequiredError("delivery details")
	}
	c.delivery = delivery
	return nil
}
