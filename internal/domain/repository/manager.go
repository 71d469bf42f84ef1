package repository

import "context"

// Manager is the entity store facade for one unit of work. All sub
// repositories share the same transaction; nothing is visible to other
// consumers until Commit.
type Manager interface {
	Trips() TripRepository
	Tickets() TicketRepository
	Locations() LocationRepository
	Operators() OperatorRepository
	FlightStatuses() FlightStatusRepository
	Users() UserRepository
	Commit() error
	Rollback() error
}

// Factory begins a new unit of work
type Factory interface {
	Begin(ctx context.Context) (Manager, error)
}
