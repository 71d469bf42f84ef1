package usecase

import (
	"context"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
	"touristar-consumer/pkg/logger"
)

// OperatorResolver resolves an airline name to a canonical operator record,
// creating one with a best-effort logo lookup when absent
type OperatorResolver struct {
	logos  repository.LogoRepository
	logger logger.Logger
}

// NewOperatorResolver creates a new operator resolver
func NewOperatorResolver(logos repository.LogoRepository, log logger.Logger) *OperatorResolver {
	return &OperatorResolver{
		logos:  logos,
		logger: log,
	}
}

// FindOrCreate looks an operator up by exact name, creating it on a miss.
// Logo lookup errors propagate so the enclosing leg fails; a missing logo
// is not an error.
func (r *OperatorResolver) FindOrCreate(ctx context.Context, mgr repository.Manager, name, code string) (*entity.FlightOperator, error) {
	operator, err := mgr.Operators().FindOperatorByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if operator != nil {
		return operator, nil
	}

	logoURL, err := r.logos.AirlineLogoURL(ctx, code)
	if err != nil {
		return nil, err
	}

	newOperator := &entity.FlightOperator{
		Name:        name,
		CarrierCode: code,
		LogoURL:     logoURL,
	}
	if err := mgr.Operators().CreateOperator(ctx, newOperator); err != nil {
		return nil, err
	}

	r.logger.Info("Created flight operator", "name", name, "carrierCode", code)

	// Read back by id so callers see any store-side normalisation.
	return mgr.Operators().FindOperatorByID(ctx, newOperator.ID)
}
