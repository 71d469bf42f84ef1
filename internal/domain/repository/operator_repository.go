package repository

import (
	"context"

	"touristar-consumer/internal/domain/entity"
)

// OperatorRepository defines the interface for flight operator operations
type OperatorRepository interface {
	FindOperatorByName(ctx context.Context, name string) (*entity.FlightOperator, error)
	FindOperatorByID(ctx context.Context, id int64) (*entity.FlightOperator, error)
	CreateOperator(ctx context.Context, operator *entity.FlightOperator) error
}
