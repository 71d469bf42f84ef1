package repository

import (
	"context"

	"touristar-consumer/internal/domain/entity"
)

// LocationRepository defines the interface for location operations
type LocationRepository interface {
	FindByCityCountry(ctx context.Context, city, country string) (*entity.Location, error)
	CreateLocations(ctx context.Context, locations []*entity.Location) error
}
