package entity

import "errors"

// Queue names this service consumes from
const (
	EmailProcessingQueue = "EmailProcessingQueue"
	FlightStatusQueue    = "FlightStatusQueue"
)

// ErrInvalidEnvelope marks a message body that can never be processed,
// regardless of how many times it is redelivered.
var ErrInvalidEnvelope = errors.New("invalid message envelope")

// EmailProcessingMessage is the envelope for ticket-enrichment messages
type EmailProcessingMessage struct {
	TripID     int64  `json:"tripId"`
	Base64Text string `json:"base64Text"`
}

// FlightStatusMessage is the envelope for status-refresh messages
type FlightStatusMessage struct {
	TicketID int64 `json:"ticketId"`
}

// TicketLegData is one candidate leg produced by the structured-data
// extractor. Field names follow the extractor's JSON contract.
type TicketLegData struct {
	DepartureCity        string  `json:"DepartureCity"`
	DepartureCountry     string  `json:"DepartureCountry"`
	ArrivalCity          string  `json:"ArrivalCity"`
	ArrivalCountry       string  `json:"ArrivalCountry"`
	DepartAt             string  `json:"DepartAt"`
	ArriveAt             *string `json:"ArriveAt"`
	FlightNumber         *string `json:"FlightNumber"`
	ReservationNumber    *string `json:"ReservationNumber"`
	FlightOperator       string  `json:"FlightOperator"`
	AirlineCarrierCode   string  `json:"AirlineCarrierCode"`
	DepartureAirportCode string  `json:"DepartureAirportCode"`
	ArrivalAirportCode   string  `json:"ArrivalAirportCode"`
	TripLeg              string  `json:"TripLeg"`
}
