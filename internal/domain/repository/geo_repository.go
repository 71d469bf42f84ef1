package repository

import (
	"context"

	"touristar-consumer/internal/domain/entity"
)

// GeoRepository resolves a free-text query to location candidates
type GeoRepository interface {
	SearchLocations(ctx context.Context, query string) ([]*entity.Location, error)
}
