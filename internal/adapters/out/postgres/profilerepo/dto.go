// Package profilerepo provides data transfer objects and mapping functions
// for profile persistence.
package profilerepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting profiles.
// Latitude and longitude are nullable because a profile has no location
// until its holder reports one.
type ProfileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Role      int `gorm:"index"`
	Latitude  *float64
	Longitude *float64
	IsOnline  bool
	CreatedAt time.Time
}

// TableName specifies the database table name for profiles.
func (ProfileDTO) TableName() string {
	return "profiles"
}

// fromDomain converts a profile domain aggregate to its database representation.
func fromDomain(aggregate *profile.Profile) ProfileDTO {
	var latitude, longitude *float64
	if p := aggregate.Location(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		latitude, longitude = &lat, &lng
	}

	return ProfileDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Role:      int(aggregate.Role()),
		Latitude:  latitude,
		Longitude: longitude,
		IsOnline:  aggregate.IsOnline(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a profile domain aggregate.
func toDomain(dto ProfileDTO) (*profile.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &p
	}

	return profile.RestoreProfile(id, dto.Name, profile.Role(dto.Role),
		location, dto.IsOnline, dto.CreatedAt)
}
