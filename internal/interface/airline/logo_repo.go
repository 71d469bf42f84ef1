package airline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"touristar-consumer/internal/domain/repository"
)

// HTTPLogoRepository implements the LogoRepository interface against a
// static airline logo host
type HTTPLogoRepository struct {
	baseURL string
	client  *http.Client
}

// NewHTTPLogoRepository creates a new logo lookup client
func NewHTTPLogoRepository(baseURL string) repository.LogoRepository {
	return &HTTPLogoRepository{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// AirlineLogoURL probes for a carrier's logo. A response body containing
// "not found" (any casing) means the host has no logo for that carrier;
// transport errors propagate to the caller.
func (r *HTTPLogoRepository) AirlineLogoURL(ctx context.Context, carrierCode string) (*string, error) {
	logoURL := fmt.Sprintf("%s/%s.svg", r.baseURL, carrierCode)

	req, err := http.NewRequestWithContext(ctx, "GET", logoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create logo request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch airline logo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read logo response: %w", err)
	}

	if strings.Contains(strings.ToLower(string(body)), "not found") {
		return nil, nil
	}
	return &logoURL, nil
}
