package menu

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultPrepTimeMinutes is used when a dish has no explicit preparation
// estimate.
const DefaultPrepTimeMinutes = 15

// Domain errors for menu item operations.
var (
	// ErrMenuItemIsNotConstructed is returned when using an improperly initialized MenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
	// ErrNameIsRequired is returned when attempting to create a dish without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// MenuItem represents a purchasable dish. It is an aggregate root owned by
// the restaurant owner; customers only ever read it.
//
// MenuItem follows these invariants:
//   - Price is a non-negative decimal
//   - Preparation time is positive, defaulting to DefaultPrepTimeMinutes
//   - A dish referenced by any existing order line is never hard-deleted;
//     it is soft-deleted instead (marked deleted and unavailable) so that
//     historical orders keep their references
//
// Order lines snapshot the price at ordering time, so later price edits never
// affect placed orders.
type MenuItem struct {
	// id is the unique identifier of the dish
	id kernel.UUID
	// name is the customer-facing dish name
	name string
	// description is the optional customer-facing description
	description string
	// price is the current selling price (non-negative)
	price decimal.Decimal
	// imageRef points at the dish photo in external storage
	imageRef string
	// category groups dishes on the menu ("Pizza", "Drinks", ...)
	category string
	// prepTimeMinutes estimates kitchen preparation time
	prepTimeMinutes int
	// isAvailable marks the dish as currently orderable
	isAvailable bool
	// isDeleted marks a soft-deleted dish retained for order history
	isDeleted bool
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewMenuItem creates a dish with the given name and price.
// The dish starts available, not deleted, with the default preparation time.
// Description, image, category, and preparation time are set through the
// mutators afterwards.
func NewMenuItem(id kernel.UUID, name string, price decimal.Decimal) (*MenuItem, error) {
	item := &MenuItem{
		prepTimeMinutes: DefaultPrepTimeMinutes,
		isAvailable:     true,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.SetPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem aggregate from persistent storage,
// including its availability and soft-delete flags.
func RestoreMenuItem(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	imageRef string,
	category string,
	prepTimeMinutes int,
	isAvailable bool,
	isDeleted bool,
) (*MenuItem, error) {
	item := &MenuItem{
		description: description,
		imageRef:    imageRef,
		category:    category,
		isAvailable: isAvailable,
		isDeleted:   isDeleted,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.SetPrice(price),
		item.SetPrepTime(prepTimeMinutes),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the MenuItem was constructed through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// IsEqual compares two menu items by identifier.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the dish identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the dish description.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current selling price.
func (m *MenuItem) Price() decimal.Decimal {
	return m.price
}

// ImageRef returns the dish photo reference.
func (m *MenuItem) ImageRef() string {
	return m.imageRef
}

// Category returns the menu category label.
func (m *MenuItem) Category() string {
	return m.category
}

// PrepTimeMinutes returns the kitchen preparation estimate.
func (m *MenuItem) PrepTimeMinutes() int {
	return m.prepTimeMinutes
}

// IsAvailable reports whether the dish is currently offered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

// IsDeleted reports whether the dish was soft-deleted.
func (m *MenuItem) IsDeleted() bool {
	return m.isDeleted
}

// IsOrderable reports whether a customer may order the dish:
// it must be available and not soft-deleted.
func (m *MenuItem) IsOrderable() bool {
	return m.isAvailable && !m.isDeleted
}

// Rename changes the dish name.
func (m *MenuItem) Rename(name string) error {
	return m.setName(name)
}

// Describe sets the customer-facing description.
func (m *MenuItem) Describe(description string) {
	m.description = description
}

// SetImage sets the dish photo reference.
func (m *MenuItem) SetImage(imageRef string) {
	m.imageRef = imageRef
}

// SetCategory sets the menu category label.
func (m *MenuItem) SetCategory(category string) {
	m.category = category
}

// SetPrice changes the selling price. The price must be non-negative.
// Existing order lines keep their snapshot price and are unaffected.
func (m *MenuItem) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%s is negative", price))
	}

	m.price = price
	return nil
}

// SetPrepTime changes the preparation estimate. It must be positive.
func (m *MenuItem) SetPrepTime(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("preparation time is invalid",
			fmt.Errorf("%d is not greater than 0", minutes))
	}

	m.prepTimeMinutes = minutes
	return nil
}

// SetAvailable toggles whether the dish is currently offered.
func (m *MenuItem) SetAvailable(available bool) {
	m.isAvailable = available
}

// SoftDelete marks the dish deleted and unavailable while keeping the row,
// preserving references from historical order lines.
func (m *MenuItem) SoftDelete() {
	m.isDeleted = true
	m.isAvailable = false
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}
