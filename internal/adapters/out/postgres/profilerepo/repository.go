package profilerepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProfileRepository implements ProfileRepository using GORM.
type GormProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormProfileRepository {
	return &GormProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Ensure inserts the profile unless one with the same identifier already
// exists. An existing row is left untouched so repeated sign-ins never
// overwrite edits the holder made since registration.
func (r *GormProfileRepository) Ensure(ctx context.Context, aggregate *profile.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing profile to the database.
func (r *GormProfileRepository) Update(ctx context.Context, aggregate *profile.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProfileDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":      dto.Name,
			"role":      dto.Role,
			"latitude":  dto.Latitude,
			"longitude": dto.Longitude,
			"is_online": dto.IsOnline,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a profile by ID.
func (r *GormProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetCouriers retrieves all Delivery-role profiles, oldest account first.
func (r *GormProfileRepository) GetCouriers(ctx context.Context) ([]*profile.Profile, error) {
	var dtos []ProfileDTO
	err := r.db.WithContext(ctx).
		Where("role = ?", profile.RoleDelivery).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	couriers := make([]*profile.Profile, 0, len(dtos))
	for _, dto := range dtos {
		courier, courierErr := toDomain(dto)
		if courierErr != nil {
			return nil, courierErr
		}
		couriers = append(couriers, courier)
	}

	return couriers, nil
}
