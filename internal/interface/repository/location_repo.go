package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
)

// GormLocationRepository implements the LocationRepository interface
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository
func NewGormLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &GormLocationRepository{db: db}
}

// FindByCityCountry looks a location up by exact city/country match.
// Absence is not an error; it returns nil so the caller can create one.
func (r *GormLocationRepository) FindByCityCountry(ctx context.Context, city, country string) (*entity.Location, error) {
	var location entity.Location
	result := r.db.WithContext(ctx).
		Where("city = ? AND country = ?", city, country).
		First(&location)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &location, nil
}

// CreateLocations inserts new location rows
func (r *GormLocationRepository) CreateLocations(ctx context.Context, locations []*entity.Location) error {
	return r.db.WithContext(ctx).Create(locations).Error
}
