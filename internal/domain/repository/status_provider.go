package repository

import (
	"context"
	"time"

	"touristar-consumer/internal/domain/entity"
)

// StatusProviderRepository queries the external flight-status service by
// flight designator and date. An empty slice means no status is available
// yet; that is not an error.
type StatusProviderRepository interface {
	StatusesByFlightDate(ctx context.Context, carrierCode, flightNumber string, date time.Time) ([]entity.ProviderFlightStatus, error)
}
