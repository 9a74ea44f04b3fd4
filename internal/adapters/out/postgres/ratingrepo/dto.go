// Package ratingrepo provides data transfer objects and mapping functions
// for order rating persistence.
package ratingrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// RatingDTO represents the database structure for persisting order ratings.
// The unique index on order_id enforces at most one rating per order.
type RatingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Stars      int
	Review     string
	Suggestion string
	CreatedAt  time.Time
}

// TableName specifies the database table name for order ratings.
func (RatingDTO) TableName() string {
	return "order_ratings"
}

// fromDomain converts a rating domain entity to its database representation.
func fromDomain(aggregate *order.Rating) RatingDTO {
	return RatingDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Stars:      aggregate.Stars(),
		Review:     aggregate.Review(),
		Suggestion: aggregate.Suggestion(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a rating domain entity.
func toDomain(dto RatingDTO) (*order.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreRating(id, orderID, customerID, dto.Stars,
		dto.Review, dto.Suggestion, dto.CreatedAt)
}
