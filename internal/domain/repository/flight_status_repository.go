package repository

import (
	"context"

	"touristar-consumer/internal/domain/entity"
)

// FlightStatusRepository appends flight status snapshots
type FlightStatusRepository interface {
	CreateFlightStatus(ctx context.Context, status *entity.FlightStatus) error
}
