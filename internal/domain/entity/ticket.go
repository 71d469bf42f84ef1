package entity

import "time"

// TicketLeg identifies which leg of a trip a ticket covers
type TicketLeg string

const (
	LegOutbound TicketLeg = "outbound"
	LegInbound  TicketLeg = "inbound"
)

// LegFromString maps an extractor leg tag to a TicketLeg. Anything that is
// not "outbound" is treated as the inbound leg.
func LegFromString(leg string) TicketLeg {
	if leg == string(LegOutbound) {
		return LegOutbound
	}
	return LegInbound
}

// Ticket is one leg of a trip. Created once by the enrichment workflow and
// never updated afterwards.
type Ticket struct {
	ID                   int64     `gorm:"primaryKey"`
	TripID               int64     `gorm:"uniqueIndex:idx_tickets_trip_leg"`
	Leg                  TicketLeg `gorm:"uniqueIndex:idx_tickets_trip_leg"`
	DepartAt             time.Time
	ArriveAt             *time.Time
	FlightNumber         string
	ReservationNumber    string
	DepartureAirportCode string
	ArrivalAirportCode   string
	FlightOperatorID     int64
	FlightOperator       *FlightOperator `gorm:"foreignKey:FlightOperatorID"`
	DepartureLocationID  int64
	ArrivalLocationID    int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName overrides the default table name
func (Ticket) TableName() string {
	return "tickets"
}
