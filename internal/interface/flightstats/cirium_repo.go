package flightstats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
)

// CiriumStatusRepository implements the StatusProviderRepository interface
// against the Cirium flight status API
type CiriumStatusRepository struct {
	baseURL string
	appID   string
	appKey  string
	client  *http.Client
}

// NewCiriumStatusRepository creates a new flight status client
func NewCiriumStatusRepository(baseURL, appID, appKey string) repository.StatusProviderRepository {
	return &CiriumStatusRepository{
		baseURL: baseURL,
		appID:   appID,
		appKey:  appKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type statusResponse struct {
	FlightStatuses []entity.ProviderFlightStatus `json:"flightStatuses"`
}

// StatusesByFlightDate queries statuses for a flight designator arriving on
// the given date
func (r *CiriumStatusRepository) StatusesByFlightDate(ctx context.Context, carrierCode, flightNumber string, date time.Time) ([]entity.ProviderFlightStatus, error) {
	endpoint := fmt.Sprintf(
		"%s/flex/flightstatus/rest/v2/json/flight/status/%s/%s/arr/%d/%d/%d?appId=%s&appKey=%s",
		r.baseURL, carrierCode, flightNumber, date.Year(), int(date.Month()), date.Day(), r.appID, r.appKey)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create flight status request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call flight status endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight status endpoint returned status %d", resp.StatusCode)
	}

	var response statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode flight status response: %w", err)
	}

	return response.FlightStatuses, nil
}
