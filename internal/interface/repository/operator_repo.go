package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
)

// GormOperatorRepository implements the OperatorRepository interface
type GormOperatorRepository struct {
	db *gorm.DB
}

// NewGormOperatorRepository creates a new GORM flight operator repository
func NewGormOperatorRepository(db *gorm.DB) repository.OperatorRepository {
	return &GormOperatorRepository{db: db}
}

// FindOperatorByName looks an operator up by exact name. Absence is not an
// error; it returns nil so the resolver can create one.
func (r *GormOperatorRepository) FindOperatorByName(ctx context.Context, name string) (*entity.FlightOperator, error) {
	var operator entity.FlightOperator
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&operator)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &operator, nil
}

// FindOperatorByID reads an operator back by primary key
func (r *GormOperatorRepository) FindOperatorByID(ctx context.Context, id int64) (*entity.FlightOperator, error) {
	var operator entity.FlightOperator
	result := r.db.WithContext(ctx).First(&operator, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &operator, nil
}

// CreateOperator inserts a new flight operator row
func (r *GormOperatorRepository) CreateOperator(ctx context.Context, operator *entity.FlightOperator) error {
	return r.db.WithContext(ctx).Create(operator).Error
}
