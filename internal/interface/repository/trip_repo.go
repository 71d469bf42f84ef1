package repository

import (
	"context"

	"gorm.io/gorm"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
)

// GormTripRepository implements the TripRepository interface
type GormTripRepository struct {
	db *gorm.DB
}

// NewGormTripRepository creates a new GORM trip repository
func NewGormTripRepository(db *gorm.DB) repository.TripRepository {
	return &GormTripRepository{db: db}
}

// FindTrip loads a trip with its endpoint locations
func (r *GormTripRepository) FindTrip(ctx context.Context, id int64) (*entity.Trip, error) {
	var trip entity.Trip
	result := r.db.WithContext(ctx).
		Preload("DepartureLocation").
		Preload("ArrivalLocation").
		First(&trip, id)

	if result.Error != nil {
		return nil, result.Error
	}
	return &trip, nil
}
