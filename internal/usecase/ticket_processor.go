package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
	"touristar-consumer/pkg/logger"
	"touristar-consumer/pkg/metrics"
	"touristar-consumer/pkg/utils"
)

// errTicketExists signals that a ticket for the (trip, leg) pair is already
// in the store. Under at-least-once delivery this means the message was
// already fully processed, so the whole workflow stops as a success.
var errTicketExists = errors.New("ticket already exists for trip and leg")

// TicketProcessor drives one email message through extraction, entity
// resolution, persistence and the completion notification
type TicketProcessor struct {
	uow       repository.Factory
	extractor repository.ExtractorRepository
	operators *OperatorResolver
	locations *LocationResolver
	messaging repository.MessagingRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewTicketProcessor creates a new ticket enrichment processor
func NewTicketProcessor(
	uow repository.Factory,
	extractor repository.ExtractorRepository,
	operators *OperatorResolver,
	locations *LocationResolver,
	messaging repository.MessagingRepository,
	m *metrics.Metrics,
	log logger.Logger,
) *TicketProcessor {
	return &TicketProcessor{
		uow:       uow,
		extractor: extractor,
		operators: operators,
		locations: locations,
		messaging: messaging,
		metrics:   m,
		logger:    log,
	}
}

// HandleMessage decodes a queue message body and runs the workflow. A
// malformed envelope can never succeed, so it is returned as an error and
// the consumer drops the message without requeue.
func (p *TicketProcessor) HandleMessage(ctx context.Context, body []byte) error {
	var message entity.EmailProcessingMessage
	if err := json.Unmarshal(body, &message); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidEnvelope, err)
	}
	if message.TripID == 0 || message.Base64Text == "" {
		return fmt.Errorf("%w: tripId and base64Text are required", entity.ErrInvalidEnvelope)
	}
	return p.ProcessEmail(ctx, message)
}

// ProcessEmail runs the enrichment workflow for one message
func (p *TicketProcessor) ProcessEmail(ctx context.Context, message entity.EmailProcessingMessage) error {
	text, err := base64.StdEncoding.DecodeString(message.Base64Text)
	if err != nil {
		return fmt.Errorf("failed to decode message text: %w", err)
	}

	mgr, err := p.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer mgr.Rollback()

	trip, err := mgr.Trips().FindTrip(ctx, message.TripID)
	if err != nil {
		return fmt.Errorf("failed to find trip %d: %w", message.TripID, err)
	}
	if trip.ArrivalLocation == nil {
		p.logger.Error("Could not find arrival destination for trip", "tripId", trip.ID)
		return nil
	}

	legs, err := p.extractor.TicketDataFromText(ctx, string(text), trip.ArrivalLocation)
	if err != nil {
		return fmt.Errorf("failed to extract ticket data for trip %d: %w", trip.ID, err)
	}
	if len(legs) == 0 {
		return fmt.Errorf("extractor returned no candidate legs for trip %d: %w", trip.ID, repository.ErrNoResult)
	}

	destinationCity := ""
	for position, legData := range legs {
		if legData == nil {
			p.logger.Info("Skipping leg as it is null", "tripId", trip.ID, "position", position)
			continue
		}

		leg := entity.LegFromString(legData.TripLeg)
		if leg == entity.LegOutbound {
			destinationCity = legData.ArrivalCity
		}

		if err := p.processLeg(ctx, mgr, trip, legData, leg); err != nil {
			if errors.Is(err, errTicketExists) {
				p.logger.Warn("Could not save ticket as one for this trip and leg already exists",
					"tripId", trip.ID,
					"leg", legData.TripLeg)
				// Keep whatever earlier legs wrote; a redelivered message
				// must not be treated as a failure.
				return mgr.Commit()
			}
			// A failed leg does not abort its sibling.
			p.logger.Error("There was an issue processing email leg",
				"tripId", trip.ID,
				"userId", trip.UserID,
				"position", position,
				"error", err)
		}
	}

	user, err := mgr.Users().FindUser(ctx, trip.UserID)
	if err != nil {
		return fmt.Errorf("failed to find user %d: %w", trip.UserID, err)
	}

	p.sendCompletionNotification(ctx, trip, destinationCity, user)

	user.IsSyncingTickets = false
	if err := mgr.Users().UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}

	return mgr.Commit()
}

func (p *TicketProcessor) processLeg(ctx context.Context, mgr repository.Manager, trip *entity.Trip, data *entity.TicketLegData, leg entity.TicketLeg) error {
	existing, err := mgr.Tickets().FindTicketsForTrip(ctx, trip.ID)
	if err != nil {
		return err
	}
	for _, ticket := range existing {
		if ticket.Leg == leg {
			return errTicketExists
		}
	}

	p.logger.Info("Creating ticket from extracted data", "tripId", trip.ID, "userId", trip.UserID)

	operator, err := p.operators.FindOrCreate(ctx, mgr, data.FlightOperator, data.AirlineCarrierCode)
	if err != nil {
		return fmt.Errorf("could not find or create flight operator %q (%s): %w",
			data.FlightOperator, data.AirlineCarrierCode, err)
	}

	departureLocation, err := p.locations.FindOrCreate(ctx, mgr, data.DepartureCity, data.DepartureCountry)
	if err != nil {
		return err
	}
	if departureLocation == nil {
		departureLocation = trip.DepartureLocation
	}
	arrivalLocation, err := p.locations.FindOrCreate(ctx, mgr, data.ArrivalCity, data.ArrivalCountry)
	if err != nil {
		return err
	}
	if arrivalLocation == nil {
		arrivalLocation = trip.ArrivalLocation
	}
	if departureLocation == nil || arrivalLocation == nil {
		return fmt.Errorf("no usable endpoint locations for trip %d", trip.ID)
	}

	departAt, err := utils.ParseToUTC(data.DepartAt)
	if err != nil {
		return fmt.Errorf("invalid departure time: %w", err)
	}
	arriveAt, err := utils.ParseToUTCPtr(data.ArriveAt)
	if err != nil {
		return fmt.Errorf("invalid arrival time: %w", err)
	}

	reservationNumber := ""
	if data.ReservationNumber != nil {
		reservationNumber = *data.ReservationNumber
	}

	ticket := &entity.Ticket{
		TripID:               trip.ID,
		Leg:                  leg,
		DepartAt:             departAt,
		ArriveAt:             arriveAt,
		FlightNumber:         utils.FormatFlightNumber(data.FlightNumber),
		ReservationNumber:    reservationNumber,
		DepartureAirportCode: data.DepartureAirportCode,
		ArrivalAirportCode:   data.ArrivalAirportCode,
		FlightOperatorID:     operator.ID,
		DepartureLocationID:  departureLocation.ID,
		ArrivalLocationID:    arrivalLocation.ID,
	}
	if err := mgr.Tickets().CreateTicket(ctx, ticket); err != nil {
		return err
	}

	p.metrics.TicketsCreated.Inc()
	return nil
}

func (p *TicketProcessor) sendCompletionNotification(ctx context.Context, trip *entity.Trip, destinationCity string, user *entity.User) {
	if user.DeviceToken == nil {
		p.logger.Error("Could not send ticket processing notification as device token was not found",
			"userId", trip.UserID)
		return
	}

	notification := entity.NewTicketProcessingCompletePush(destinationCity)
	data := map[string]string{
		"type":   entity.PushTicketProcessingComplete,
		"tripId": strconv.FormatInt(trip.ID, 10),
	}

	if err := p.messaging.SendPushNotification(ctx, *user.DeviceToken, notification.Title, notification.Body, data); err != nil {
		p.logger.Error("Failed to send ticket processing notification",
			"userId", trip.UserID,
			"error", err)
	}
}
