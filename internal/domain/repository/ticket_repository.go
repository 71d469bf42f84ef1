package repository

import (
	"context"

	"touristar-consumer/internal/domain/entity"
)

// TicketRepository defines the interface for ticket operations
type TicketRepository interface {
	FindTicket(ctx context.Context, id int64) (*entity.Ticket, error)
	FindTicketsForTrip(ctx context.Context, tripID int64) ([]entity.Ticket, error)
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error
}
