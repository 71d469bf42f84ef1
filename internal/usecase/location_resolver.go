package usecase

import (
	"context"
	"fmt"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
	"touristar-consumer/pkg/logger"
)

// LocationResolver resolves a (city, country) pair to a canonical location,
// creating one from the geocoding provider when the store has none
type LocationResolver struct {
	geo    repository.GeoRepository
	logger logger.Logger
}

// NewLocationResolver creates a new location resolver
func NewLocationResolver(geo repository.GeoRepository, log logger.Logger) *LocationResolver {
	return &LocationResolver{
		geo:    geo,
		logger: log,
	}
}

// FindOrCreate looks the location up by exact city/country and falls back
// to a single free-text geocoding query on a miss. The first candidate is
// persisted and returned.
func (r *LocationResolver) FindOrCreate(ctx context.Context, mgr repository.Manager, city, country string) (*entity.Location, error) {
	location, err := mgr.Locations().FindByCityCountry(ctx, city, country)
	if err != nil {
		return nil, err
	}
	if location != nil {
		return location, nil
	}

	results, err := r.geo.SearchLocations(ctx, fmt.Sprintf("%s %s", city, country))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 || results[0] == nil {
		return nil, fmt.Errorf("could not retrieve geocoded location for %s, %s", city, country)
	}

	toCreate := []*entity.Location{results[0]}
	if err := mgr.Locations().CreateLocations(ctx, toCreate); err != nil {
		return nil, err
	}

	r.logger.Info("Created location", "city", toCreate[0].City, "country", toCreate[0].Country)
	return toCreate[0], nil
}
