package repository

import (
	"context"

	"gorm.io/gorm"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
)

// GormFlightStatusRepository implements the FlightStatusRepository interface
type GormFlightStatusRepository struct {
	db *gorm.DB
}

// NewGormFlightStatusRepository creates a new GORM flight status repository
func NewGormFlightStatusRepository(db *gorm.DB) repository.FlightStatusRepository {
	return &GormFlightStatusRepository{db: db}
}

// CreateFlightStatus appends a new status snapshot row
func (r *GormFlightStatusRepository) CreateFlightStatus(ctx context.Context, status *entity.FlightStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}
