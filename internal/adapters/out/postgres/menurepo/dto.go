// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence.
package menurepo

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Description     string
	Price           decimal.Decimal `gorm:"type:numeric(12,2)"`
	ImageRef        string
	Category        string `gorm:"index"`
	PrepTimeMinutes int
	IsAvailable     bool
	IsDeleted       bool `gorm:"index"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item domain aggregate to its database representation.
func fromDomain(aggregate *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Description:     aggregate.Description(),
		Price:           aggregate.Price(),
		ImageRef:        aggregate.ImageRef(),
		Category:        aggregate.Category(),
		PrepTimeMinutes: aggregate.PrepTimeMinutes(),
		IsAvailable:     aggregate.IsAvailable(),
		IsDeleted:       aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to a menu item domain aggregate.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Name, dto.Description, dto.Price,
		dto.ImageRef, dto.Category, dto.PrepTimeMinutes, dto.IsAvailable, dto.IsDeleted)
}
