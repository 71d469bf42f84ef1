package repository

import (
	"context"

	"touristar-consumer/internal/domain/entity"
)

// TripRepository reads trips; trips are never written by this service
type TripRepository interface {
	FindTrip(ctx context.Context, id int64) (*entity.Trip, error)
}
