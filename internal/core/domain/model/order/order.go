package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// deliveryMinutesPer100Meters converts route distance into the delivery
// estimate: 2 minutes per 100 meters, rounded up.
const deliveryMinutesPer100Meters = 2.0

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through a constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when creating an order without lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("order items")
	// ErrAlreadyClaimed is returned when a courier loses the claim race on
	// an order that another courier took first.
	ErrAlreadyClaimed = errors.New("order is no longer available to claim")
)

// Order represents a purchase transaction. It is the aggregate root managing
// the order lifecycle from creation through kitchen preparation to pickup and
// delivery.
//
// Order follows these invariants:
//   - Status transitions follow the table in Status.CanTransition and its
//     ownership constraints
//   - The courier reference is set only for delivery orders that have at
//     least reached Ready, and at most one courier holds it
//   - Total price equals the sum of the line totals at creation
//   - Delivery orders carry a validated address and destination coordinate
//   - Items, estimates, and total are fixed at creation; only status and the
//     courier reference change afterwards
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer
	customerID kernel.UUID

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// orderType is Delivery or Pickup
	orderType Type

	// status is the current state in the order lifecycle
	status Status

	// items are the immutable order lines with price/prep snapshots
	items []Item

	// address is the delivery destination (nil for pickup orders)
	address *Address

	// location is the customer's coordinate (nil for pickup orders)
	location *kernel.GeoPoint

	// total is the sum of line totals, fixed at creation
	total decimal.Decimal

	// prepEstimateMinutes is the derived kitchen estimate, fixed at creation
	prepEstimateMinutes int

	// deliveryEstimateMinutes is the derived travel estimate, fixed at
	// creation (zero for pickup orders)
	deliveryEstimateMinutes int

	// createdAt anchors the remaining-time countdown
	createdAt time.Time

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending status with derived estimates.
//
// The preparation estimate is the maximum preparation-time snapshot across
// the lines. For delivery orders the delivery estimate is derived from the
// route distance at 2 minutes per 100 meters, rounded up; the address and
// destination coordinate are required. Pickup orders ignore the address,
// location, and route distance.
//
// The total price is computed from the line snapshots, never accepted from
// the caller.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderType Type,
	items []Item,
	address *Address,
	location *kernel.GeoPoint,
	routeDistanceMeters float64,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setOrderType(orderType),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if orderType == TypeDelivery {
		if err := errors.Join(
			o.setAddress(address),
			o.setLocation(location),
		); err != nil {
			return nil, err
		}
		if routeDistanceMeters < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("route distance is invalid",
				fmt.Errorf("%f is negative", routeDistanceMeters))
		}
		o.deliveryEstimateMinutes = int(math.Ceil(routeDistanceMeters / 100.0 * deliveryMinutesPer100Meters))
	}

	o.total = sumLineTotals(o.items)
	o.prepEstimateMinutes = maxPrepTime(o.items)

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its status, courier assignment, estimates, and creation time.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	courierID *kernel.UUID,
	orderType Type,
	status Status,
	items []Item,
	address *Address,
	location *kernel.GeoPoint,
	total decimal.Decimal,
	prepEstimateMinutes int,
	deliveryEstimateMinutes int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		total:                   total,
		prepEstimateMinutes:     prepEstimateMinutes,
		deliveryEstimateMinutes: deliveryEstimateMinutes,
		createdAt:               createdAt,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setOrderType(orderType),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if orderType == TypeDelivery {
		if err := errors.Join(
			o.setAddress(address),
			o.setLocation(location),
		); err != nil {
			return nil, err
		}
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		id := *courierID
		o.courierID = &id
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CourierID returns the assigned courier's identifier, or nil if unassigned.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// OrderType returns Delivery or Pickup.
func (o *Order) OrderType() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the immutable order lines.
func (o *Order) Items() []Item {
	return o.items
}

// Address returns the delivery destination, or nil for pickup orders.
func (o *Order) Address() *Address {
	return o.address
}

// Location returns the customer's coordinate, or nil for pickup orders.
func (o *Order) Location() *kernel.GeoPoint {
	return o.location
}

// Total returns the order total fixed at creation.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// PrepEstimateMinutes returns the derived kitchen estimate.
func (o *Order) PrepEstimateMinutes() int {
	return o.prepEstimateMinutes
}

// DeliveryEstimateMinutes returns the derived travel estimate
// (zero for pickup orders).
func (o *Order) DeliveryEstimateMinutes() int {
	return o.deliveryEstimateMinutes
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// RemainingPrepMinutes returns the preparation countdown at the given time:
// the stored estimate minus elapsed minutes since creation, floored at zero.
func (o *Order) RemainingPrepMinutes(now time.Time) int {
	return remaining(o.prepEstimateMinutes, o.createdAt, now)
}

// RemainingDeliveryMinutes returns the delivery countdown at the given time.
func (o *Order) RemainingDeliveryMinutes(now time.Time) int {
	return remaining(o.deliveryEstimateMinutes, o.createdAt, now)
}

// AdvanceTo moves the order along the lifecycle on behalf of an actor.
//
// The transition must be an edge of the status table for the actor's role.
// On top of the role gate, the aggregate enforces ownership:
//   - cancellation by a customer requires the actor to be the order's customer
//   - Ready -> PickedUp on an order already assigned to a courier requires
//     the actor to be that courier; on an unassigned delivery order the
//     acting courier becomes the assignee
//   - PickedUp -> Delivered requires the assigned courier
//
// On any failure the stored status is unchanged.
func (o *Order) AdvanceTo(target Status, actorID kernel.UUID, actorRole profile.Role) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if err := o.status.CanTransition(target, actorRole); err != nil {
		return err
	}

	if target == Cancelled && actorRole == profile.RoleCustomer && !o.customerID.IsEqual(actorID) {
		return errs.NewUnauthorizedError("only the order's customer may cancel it")
	}

	if o.status == Ready && target == PickedUp {
		if o.courierID != nil && !o.courierID.IsEqual(actorID) {
			return errs.NewUnauthorizedError("order is assigned to another courier")
		}
		if o.courierID == nil && o.orderType == TypeDelivery {
			id := actorID
			o.courierID = &id
		}
	}

	if o.status == PickedUp && target == Delivered {
		if o.courierID != nil && !o.courierID.IsEqual(actorID) {
			return errs.NewUnauthorizedError("only the assigned courier may complete the delivery")
		}
	}

	o.status = target
	return nil
}

// AssignCourier records the auto-assigned courier on a delivery order that
// reached Ready. The operation is idempotent: assigning an already-assigned
// order is a no-op regardless of the candidate, so repeated auto-assignment
// never reassigns.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil {
		return nil
	}

	if o.orderType != TypeDelivery {
		return errs.NewValueIsInvalidError("courier assignment applies only to delivery orders")
	}

	if o.status != Ready {
		return errs.NewValueIsInvalidErrorWithCause("courier assignment requires a ready order",
			fmt.Errorf("order is %s", o.status))
	}

	id := courierID
	o.courierID = &id
	return nil
}

// NeedsCourier reports whether the order sits in the unassigned delivery
// pool: a delivery order in Ready status with no courier.
func (o *Order) NeedsCourier() bool {
	return o.orderType == TypeDelivery && o.status == Ready && o.courierID == nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setAddress(address *Address) error {
	if address == nil {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return errs.NewValueIsRequiredError("delivery location")
	}
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func sumLineTotals(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func maxPrepTime(items []Item) int {
	maxMinutes := 0
	for _, item := range items {
		if item.PrepTimeMinutes() > maxMinutes {
			maxMinutes = item.PrepTimeMinutes()
		}
	}
	return maxMinutes
}

func remaining(estimateMinutes int, createdAt, now time.Time) int {
	elapsed := int(now.Sub(createdAt).Minutes())
	left := estimateMinutes - elapsed
	if left < 0 {
		return 0
	}
	return left
}
