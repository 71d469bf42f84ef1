package repository

import (
	"context"

	"gorm.io/gorm"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
)

// GormTicketRepository implements the TicketRepository interface
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GORM ticket repository
func NewGormTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &GormTicketRepository{db: db}
}

// FindTicket loads a ticket with its operator
func (r *GormTicketRepository) FindTicket(ctx context.Context, id int64) (*entity.Ticket, error) {
	var ticket entity.Ticket
	result := r.db.WithContext(ctx).
		Preload("FlightOperator").
		First(&ticket, id)

	if result.Error != nil {
		return nil, result.Error
	}
	return &ticket, nil
}

// FindTicketsForTrip lists all tickets already created for a trip
func (r *GormTicketRepository) FindTicketsForTrip(ctx context.Context, tripID int64) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	result := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}
	return tickets, nil
}

// CreateTicket inserts a new ticket row
func (r *GormTicketRepository) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}
