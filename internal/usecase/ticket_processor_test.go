package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touristar-consumer/internal/domain/entity"
)

func emailEnvelope(t *testing.T, tripID int64, text string) []byte {
	t.Helper()
	body, err := json.Marshal(entity.EmailProcessingMessage{
		TripID:     tripID,
		Base64Text: base64.StdEncoding.EncodeToString([]byte(text)),
	})
	require.NoError(t, err)
	return body
}

func outboundLeg() *entity.TicketLegData {
	return &entity.TicketLegData{
		DepartureCity:        "London",
		DepartureCountry:     "UK",
		ArrivalCity:          "NewYork",
		ArrivalCountry:       "USA",
		DepartAt:             "2026-09-01T10:30:00",
		ArriveAt:             strPtr("2026-09-01T18:45:00"),
		FlightNumber:         strPtr("BA0001"),
		ReservationNumber:    strPtr("ABC123"),
		FlightOperator:       "British Airways",
		AirlineCarrierCode:   "BA",
		DepartureAirportCode: "LHR",
		ArrivalAirportCode:   "JFK",
		TripLeg:              "outbound",
	}
}

func inboundLeg() *entity.TicketLegData {
	leg := outboundLeg()
	leg.DepartureCity, leg.ArrivalCity = leg.ArrivalCity, leg.DepartureCity
	leg.DepartureCountry, leg.ArrivalCountry = leg.ArrivalCountry, leg.DepartureCountry
	leg.DepartureAirportCode, leg.ArrivalAirportCode = leg.ArrivalAirportCode, leg.DepartureAirportCode
	leg.DepartAt = "2026-09-10T14:00:00"
	leg.ArriveAt = strPtr("2026-09-10T22:10:00")
	leg.FlightNumber = strPtr("BA0002")
	leg.TripLeg = "inbound"
	return leg
}

func TestHandleMessageRejectsInvalidEnvelope(t *testing.T) {
	processor, _ := newTestTicketProcessor(t, &fakeExtractor{}, &fakeMessaging{})

	err := processor.HandleMessage(context.Background(), []byte("not json"))
	assert.ErrorIs(t, err, entity.ErrInvalidEnvelope)

	err = processor.HandleMessage(context.Background(), []byte(`{"tripId":0,"base64Text":""}`))
	assert.ErrorIs(t, err, entity.ErrInvalidEnvelope)
}

func TestProcessEmailCreatesTicketFromExtractedLeg(t *testing.T) {
	extractor := &fakeExtractor{legs: []*entity.TicketLegData{outboundLeg(), nil}}
	messaging := &fakeMessaging{}
	processor, db := newTestTicketProcessor(t, extractor, messaging)

	trip := seedTrip(t, db,
		&entity.User{DeviceToken: strPtr("device-1"), IsSyncingTickets: true},
		&entity.Location{City: "London", Country: "UK"},
		&entity.Location{City: "NewYork", Country: "USA"})

	err := processor.HandleMessage(context.Background(), emailEnvelope(t, trip.ID, "one-way BA flight LHR to JFK"))
	require.NoError(t, err)

	var tickets []entity.Ticket
	require.NoError(t, db.Find(&tickets).Error)
	require.Len(t, tickets, 1)
	assert.Equal(t, trip.ID, tickets[0].TripID)
	assert.Equal(t, entity.LegOutbound, tickets[0].Leg)
	assert.Equal(t, "001", tickets[0].FlightNumber)
	assert.Equal(t, "ABC123", tickets[0].ReservationNumber)
	assert.Equal(t, "LHR", tickets[0].DepartureAirportCode)
	assert.Equal(t, "JFK", tickets[0].ArrivalAirportCode)
	require.NotNil(t, tickets[0].ArriveAt)

	var operator entity.FlightOperator
	require.NoError(t, db.First(&operator, tickets[0].FlightOperatorID).Error)
	assert.Equal(t, "British Airways", operator.Name)
	assert.Equal(t, "BA", operator.CarrierCode)
	require.NotNil(t, operator.LogoURL)
	assert.Equal(t, "https://logos.test/BA.svg", *operator.LogoURL)

	var user entity.User
	require.NoError(t, db.First(&user, trip.UserID).Error)
	assert.False(t, user.IsSyncingTickets)

	require.Len(t, messaging.sent, 1)
	assert.Equal(t, "device-1", messaging.sent[0].token)
	assert.Contains(t, messaging.sent[0].body, "NewYork")
	assert.Equal(t, entity.PushTicketProcessingComplete, messaging.sent[0].data["type"])
}

func TestProcessEmailGeocodesUnknownLocations(t *testing.T) {
	leg := outboundLeg()
	leg.ArrivalCity = "Boston"
	leg.ArrivalCountry = "USA"
	extractor := &fakeExtractor{legs: []*entity.TicketLegData{leg}}
	processor, db := newTestTicketProcessor(t, extractor, &fakeMessaging{})

	trip := seedTrip(t, db,
		&entity.User{DeviceToken: strPtr("device-1")},
		&entity.Location{City: "London", Country: "UK"},
		&entity.Location{City: "NewYork", Country: "USA"})

	require.NoError(t, processor.HandleMessage(context.Background(), emailEnvelope(t, trip.ID, "ticket text")))

	var created entity.Location
	require.NoError(t, db.Where("city = ? AND country = ?", "Boston", "USA").First(&created).Error)

	var ticket entity.Ticket
	require.NoError(t, db.First(&ticket).Error)
	assert.Equal(t, created.ID, ticket.ArrivalLocationID)
}

func TestProcessEmailMissingArrivalLocationIsSuccess(t *testing.T) {
	extractor := &fakeExtractor{legs: []*entity.TicketLegData{outboundLeg()}}
	messaging := &fakeMessaging{}
	processor, db := newTestTicketProcessor(t, extractor, messaging)

	trip := seedTrip(t, db,
		&entity.User{DeviceToken: strPtr("device-1"), IsSyncingTickets: true},
		&entity.Location{City: "London", Country: "UK"},
		nil)

	err := processor.HandleMessage(context.Background(), emailEnvelope(t, trip.ID, "ticket text"))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Ticket{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, messaging.sent)
}

func TestProcessEmailExtractorFailureIsAnError(t *testing.T) {
	extractor := &fakeExtractor{err: assert.AnError}
	processor, db := newTestTicketProcessor(t, extractor, &fakeMessaging{})

	trip := seedTrip(t, db,
		&entity.User{},
		&entity.Location{City: "London", Country: "UK"},
		&entity.Location{City: "NewYork", Country: "USA"})

	err := processor.HandleMessage(context.Background(), emailEnvelope(t, trip.ID, "ticket text"))
	assert.Error(t, err)
}

func TestProcessEmailExtractorEmptyResultIsAnError(t *testing.T) {
	extractor := &fakeExtractor{legs: nil}
	processor, db := newTestTicketProcessor(t, extractor, &fakeMessaging{})

	trip := seedTrip(t, db,
		&entity.User{},
		&entity.Location{City: "London", Country: "UK"},
		&entity.Location{City: "NewYork", Country: "USA"})

	err := processor.HandleMessage(context.Background(), emailEnvelope(t, trip.ID, "ticket text"))
	assert.Error(t, err)
}

func TestProcessEmailDuplicateLegAbortsAsSuccess(t *testing.T) {
	extractor := &fakeExtractor{legs: []*entity.TicketLegData{outboundLeg()}}
	messaging := &fakeMessaging{}
	processor, db := newTestTicketProcessor(t, extractor, messaging)

	trip := seedTrip(t, db,
		&entity.User{DeviceToken: strPtr("device-1"), IsSyncingTickets: true},
		&entity.Location{City: "London", Country: "UK"},
		&entity.Location{City: "NewYork", Country: "USA"})

	operator := &entity.FlightOperator{Name: "British Airways", CarrierCode: "BA"}
	require.NoError(t, db.Create(operator).Error)
	require.NoError(t, db.Create(&entity.Ticket{
		TripID:              trip.ID,
		Leg:                 entity.LegOutbound,
		FlightNumber:        "001",
		FlightOperatorID:    operator.ID,
		DepartureLocationID: *trip.DepartureLocationID,
		ArrivalLocationID:   *trip.ArrivalLocationID,
	}).Error)

	err := processor.HandleMessage(context.Background(), emailEnvelope(t, trip.ID, "ticket text"))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Ticket{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The workflow stops before the notification and syncing-flag steps.
	assert.Empty(t, messaging.sent)
	var user entity.User
	require.NoError(t, db.First(&user, trip.UserID).Error)
	assert.True(t, user.IsSyncingTickets)
}

func TestProcessEmailRedeliveryIsIdempotent(t *testing.T) {
	extractor := &fakeExtractor{legs: []*entity.TicketLegData{outboundLeg(), inboundLeg()}}
	processor, db := newTestTicketProcessor(t, extractor, &fakeMessaging{})

	trip := seedTrip(t, db,
		&entity.User{DeviceToken: strPtr("device-1")},
		&entity.Location{City: "London", Country: "UK"},
		&entity.Location{City: "NewYork", Country: "USA"})

	body := emailEnvelope(t, trip.ID, "return BA flights LHR and JFK")
	require.NoError(t, processor.HandleMessage(context.Background(), body))
	require.NoError(t, processor.HandleMessage(context.Background(), body))

	var count int64
	require.NoError(t, db.Model(&entity.Ticket{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestProcessEmailFailedLegDoesNotBlockSibling(t *testing.T) {
	broken := outboundLeg()
	broken.DepartAt = "next tuesday"
	extractor := &fakeExtractor{legs: []*entity.TicketLegData{broken, inboundLeg()}}
	processor, db := newTestTicketProcessor(t, extractor, &fakeMessaging{})

	trip := seedTrip(t, db,
		&entity.User{DeviceToken: strPtr("device-1")},
		&entity.Location{City: "London", Country: "UK"},
		&entity.Location{City: "NewYork", Country: "USA"})

	err := processor.HandleMessage(context.Background(), emailEnvelope(t, trip.ID, "ticket text"))
	require.NoError(t, err)

	var tickets []entity.Ticket
	require.NoError(t, db.Find(&tickets).Error)
	require.Len(t, tickets, 1)
	assert.Equal(t, entity.LegInbound, tickets[0].Leg)
}

func TestProcessEmailMissingDeviceTokenSkipsNotification(t *testing.T) {
	extractor := &fakeExtractor{legs: []*entity.TicketLegData{outboundLeg()}}
	messaging := &fakeMessaging{}
	processor, db := newTestTicketProcessor(t, extractor, messaging)

	trip := seedTrip(t, db,
		&entity.User{IsSyncingTickets: true},
		&entity.Location{City: "London", Country: "UK"},
		&entity.Location{City: "NewYork", Country: "USA"})

	require.NoError(t, processor.HandleMessage(context.Background(), emailEnvelope(t, trip.ID, "ticket text")))

	assert.Empty(t, messaging.sent)
	var user entity.User
	require.NoError(t, db.First(&user, trip.UserID).Error)
	assert.False(t, user.IsSyncingTickets)
}

func TestProcessEmailNotificationFailureDoesNotBlockWorkflow(t *testing.T) {
	extractor := &fakeExtractor{legs: []*entity.TicketLegData{outboundLeg()}}
	messaging := &fakeMessaging{err: assert.AnError}
	processor, db := newTestTicketProcessor(t, extractor, messaging)

	trip := seedTrip(t, db,
		&entity.User{DeviceToken: strPtr("device-1"), IsSyncingTickets: true},
		&entity.Location{City: "London", Country: "UK"},
		&entity.Location{City: "NewYork", Country: "USA"})

	require.NoError(t, processor.HandleMessage(context.Background(), emailEnvelope(t, trip.ID, "ticket text")))

	var user entity.User
	require.NoError(t, db.First(&user, trip.UserID).Error)
	assert.False(t, user.IsSyncingTickets)
}
