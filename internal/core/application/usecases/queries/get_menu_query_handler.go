package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuQueryResponse represents one menu entry in a menu listing.
type GetMenuQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Description     string
	Price           decimal.Decimal
	ImageRef        string
	Category        string
	PrepTimeMinutes int
	IsAvailable     bool
}

// GetMenuQueryHandler reads the menu directly from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the menu query. Results are sorted by category and name
// for stable menu rendering.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			description,
			price,
			image_ref,
			category,
			prep_time_minutes,
			is_available
		FROM menu_items
		WHERE is_deleted = FALSE
	`
	if query.ActorRole() != profile.RoleOwner {
		sql += " AND is_available = TRUE"
	}
	sql += " ORDER BY category, name"

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetMenuQueryResponse, 0)
	for rows.Next() {
		var item GetMenuQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.ImageRef,
			&item.Category,
			&item.PrepTimeMinutes,
			&item.IsAvailable,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
