package order

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. It snapshots the dish name, unit price, and
// preparation time at ordering time, decoupling order history from later menu
// edits. Items are created atomically with their parent order and never
// mutated afterwards.
type Item struct {
	// menuItemID references the ordered dish; the dish may only be
	// soft-deleted while this reference exists
	menuItemID kernel.UUID
	// name is the dish name snapshot
	name string
	// unitPrice is the dish price snapshot
	unitPrice decimal.Decimal
	// quantity is the ordered count (positive)
	quantity int
	// prepTimeMinutes is the dish preparation estimate snapshot
	prepTimeMinutes int
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates an order line snapshotting the given dish attributes.
// Quantity and preparation time must be positive; the unit price must be
// non-negative.
func NewItem(menuItemID kernel.UUID, name string, unitPrice decimal.Decimal, quantity int, prepTimeMinutes int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
		item.setPrepTime(prepTimeMinutes),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced dish identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the dish name snapshot.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the dish price snapshot.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns the ordered count.
func (i Item) Quantity() int {
	return i.quantity
}

// PrepTimeMinutes returns the preparation estimate snapshot.
func (i Item) PrepTimeMinutes() int {
	return i.prepTimeMinutes
}

// LineTotal returns unit price multiplied by quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%s is negative", price))
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrepTime(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("preparation time is invalid",
			fmt.Errorf("%d is not greater than 0", minutes))
	}
	i.prepTimeMinutes = minutes
	return nil
}
