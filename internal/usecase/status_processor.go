package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
	"touristar-consumer/pkg/logger"
	"touristar-consumer/pkg/metrics"
)

// StatusProcessor refreshes the stored flight status snapshot for a ticket.
// A refresh is best effort: any failure is logged and the message is still
// acknowledged, because the next scheduled refresh supersedes this one.
type StatusProcessor struct {
	uow      repository.Factory
	provider repository.StatusProviderRepository
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewStatusProcessor creates a new flight status refresh processor
func NewStatusProcessor(
	uow repository.Factory,
	provider repository.StatusProviderRepository,
	m *metrics.Metrics,
	log logger.Logger,
) *StatusProcessor {
	return &StatusProcessor{
		uow:      uow,
		provider: provider,
		metrics:  m,
		logger:   log,
	}
}

// HandleMessage decodes a queue message body and runs the refresh. Only a
// malformed envelope is surfaced to the consumer; everything downstream is
// swallowed.
func (p *StatusProcessor) HandleMessage(ctx context.Context, body []byte) error {
	var message entity.FlightStatusMessage
	if err := json.Unmarshal(body, &message); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidEnvelope, err)
	}
	if message.TicketID == 0 {
		return fmt.Errorf("%w: ticketId is required", entity.ErrInvalidEnvelope)
	}

	p.RefreshStatus(ctx, message.TicketID)
	return nil
}

// RefreshStatus fetches and stores the latest status for a ticket
func (p *StatusProcessor) RefreshStatus(ctx context.Context, ticketID int64) {
	if err := p.refresh(ctx, ticketID); err != nil {
		p.logger.Error("There was an error fetching the flight status",
			"ticketId", ticketID,
			"error", err)
	}
}

func (p *StatusProcessor) refresh(ctx context.Context, ticketID int64) error {
	mgr, err := p.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer mgr.Rollback()

	ticket, err := mgr.Tickets().FindTicket(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("failed to find ticket %d: %w", ticketID, err)
	}
	if ticket.FlightOperator == nil {
		p.logger.Error("Could not fetch flight status as ticket has no operator", "ticketId", ticket.ID)
		return nil
	}
	if ticket.FlightNumber == "" {
		p.logger.Error("Could not fetch flight status as ticket has no flight number", "ticketId", ticket.ID)
		return nil
	}

	// Status is keyed on the arrival date; fall back to departure when the
	// extractor produced no arrival time.
	flightDate := ticket.DepartAt
	if ticket.ArriveAt != nil {
		flightDate = *ticket.ArriveAt
	} else {
		p.logger.Warn("Ticket has no arrival time, using departure date for status lookup", "ticketId", ticket.ID)
	}

	statuses, err := p.provider.StatusesByFlightDate(ctx, ticket.FlightOperator.CarrierCode, ticket.FlightNumber, flightDate)
	if err != nil {
		return fmt.Errorf("failed to fetch statuses for ticket %d: %w", ticket.ID, err)
	}
	if len(statuses) == 0 {
		p.logger.Info("No statuses found for flight",
			"ticketId", ticket.ID,
			"carrierCode", ticket.FlightOperator.CarrierCode,
			"flightNumber", ticket.FlightNumber)
		return nil
	}

	snapshot := MapToFlightStatus(&statuses[0], ticket.ID)
	if err := mgr.FlightStatuses().CreateFlightStatus(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save flight status for ticket %d: %w", ticket.ID, err)
	}

	p.metrics.StatusesRecorded.Inc()
	p.logger.Info("Recorded flight status", "ticketId", ticket.ID, "status", snapshot.Status)

	return mgr.Commit()
}
