package repository

import (
	"context"

	"gorm.io/gorm"

	"touristar-consumer/internal/domain/repository"
)

// GormFactory begins gorm-backed units of work
type GormFactory struct {
	db *gorm.DB
}

// NewGormFactory creates a new unit-of-work factory
func NewGormFactory(db *gorm.DB) *GormFactory {
	return &GormFactory{db: db}
}

// Begin opens a transaction and returns a manager bound to it
func (f *GormFactory) Begin(ctx context.Context) (repository.Manager, error) {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return newGormManager(tx), nil
}

// GormManager is the store facade for one unit of work. All sub
// repositories are built eagerly and share the same transaction.
type GormManager struct {
	tx             *gorm.DB
	trips          repository.TripRepository
	tickets        repository.TicketRepository
	locations      repository.LocationRepository
	operators      repository.OperatorRepository
	flightStatuses repository.FlightStatusRepository
	users          repository.UserRepository
}

func newGormManager(tx *gorm.DB) *GormManager {
	return &GormManager{
		tx:             tx,
		trips:          NewGormTripRepository(tx),
		tickets:        NewGormTicketRepository(tx),
		locations:      NewGormLocationRepository(tx),
		operators:      NewGormOperatorRepository(tx),
		flightStatuses: NewGormFlightStatusRepository(tx),
		users:          NewGormUserRepository(tx),
	}
}

// Trips returns the trip repository
func (m *GormManager) Trips() repository.TripRepository { return m.trips }

// Tickets returns the ticket repository
func (m *GormManager) Tickets() repository.TicketRepository { return m.tickets }

// Locations returns the location repository
func (m *GormManager) Locations() repository.LocationRepository { return m.locations }

// Operators returns the flight operator repository
func (m *GormManager) Operators() repository.OperatorRepository { return m.operators }

// FlightStatuses returns the flight status repository
func (m *GormManager) FlightStatuses() repository.FlightStatusRepository { return m.flightStatuses }

// Users returns the user repository
func (m *GormManager) Users() repository.UserRepository { return m.users }

// Commit flushes the unit of work
func (m *GormManager) Commit() error {
	return m.tx.Commit().Error
}

// Rollback discards the unit of work. Safe to call after Commit; gorm
// reports an invalid transaction which callers ignore in deferred cleanup.
func (m *GormManager) Rollback() error {
	return m.tx.Rollback().Error
}
