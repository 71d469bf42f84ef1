package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
)

// RadarGeoRepository implements the GeoRepository interface against the
// Radar autocomplete search API
type RadarGeoRepository struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRadarGeoRepository creates a new Radar geocoding client
func NewRadarGeoRepository(baseURL, apiKey string) repository.GeoRepository {
	return &RadarGeoRepository{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type radarAddress struct {
	City             string   `json:"city"`
	Country          string   `json:"country"`
	CountryCode      string   `json:"countryCode"`
	FormattedAddress string   `json:"formattedAddress"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

type radarSearchResponse struct {
	Addresses []radarAddress `json:"addresses"`
}

// SearchLocations resolves a free-text query to location candidates,
// ordered by relevance
func (r *RadarGeoRepository) SearchLocations(ctx context.Context, query string) ([]*entity.Location, error) {
	endpoint := fmt.Sprintf("%s/v1/search/autocomplete?query=%s", r.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoding request: %w", err)
	}
	req.Header.Set("Authorization", r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call geocoding endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding endpoint returned status %d", resp.StatusCode)
	}

	var search radarSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	locations := make([]*entity.Location, 0, len(search.Addresses))
	for _, address := range search.Addresses {
		locations = append(locations, &entity.Location{
			City:             address.City,
			Country:          address.Country,
			CountryCode:      address.CountryCode,
			FormattedAddress: address.FormattedAddress,
			Latitude:         address.Latitude,
			Longitude:        address.Longitude,
		})
	}
	return locations, nil
}
