package entity

import "time"

// LocalisedDate is a timestamp pair; both members are normalised to UTC
// when present.
type LocalisedDate struct {
	Local *time.Time `json:"local,omitempty"`
	UTC   *time.Time `json:"utc,omitempty"`
}

// FlightSchedule describes the published schedule attributes of a flight
type FlightSchedule struct {
	FlightType     string `json:"flightType,omitempty"`
	ServiceClasses string `json:"serviceClasses,omitempty"`
	Restrictions   string `json:"restrictions,omitempty"`
}

// FlightOperationalTimes is the fixed set of named operational timestamps
type FlightOperationalTimes struct {
	PublishedDeparture         *LocalisedDate `json:"publishedDeparture,omitempty"`
	PublishedArrival           *LocalisedDate `json:"publishedArrival,omitempty"`
	ScheduledGateDeparture     *LocalisedDate `json:"scheduledGateDeparture,omitempty"`
	ScheduledRunwayDeparture   *LocalisedDate `json:"scheduledRunwayDeparture,omitempty"`
	EstimatedGateDeparture     *LocalisedDate `json:"estimatedGateDeparture,omitempty"`
	ActualGateDeparture        *LocalisedDate `json:"actualGateDeparture,omitempty"`
	FlightPlanPlannedDeparture *LocalisedDate `json:"flightPlanPlannedDeparture,omitempty"`
	EstimatedRunwayDeparture   *LocalisedDate `json:"estimatedRunwayDeparture,omitempty"`
	ActualRunwayDeparture      *LocalisedDate `json:"actualRunwayDeparture,omitempty"`
	ScheduledGateArrival       *LocalisedDate `json:"scheduledGateArrival,omitempty"`
	ScheduledRunwayArrival     *LocalisedDate `json:"scheduledRunwayArrival,omitempty"`
	EstimatedGateArrival       *LocalisedDate `json:"estimatedGateArrival,omitempty"`
	ActualGateArrival          *LocalisedDate `json:"actualGateArrival,omitempty"`
	FlightPlanPlannedArrival   *LocalisedDate `json:"flightPlanPlannedArrival,omitempty"`
	EstimatedRunwayArrival     *LocalisedDate `json:"estimatedRunwayArrival,omitempty"`
	ActualRunwayArrival        *LocalisedDate `json:"actualRunwayArrival,omitempty"`
}

// FlightDelays holds gate and runway delay figures in minutes
type FlightDelays struct {
	DepartureGateDelayMinutes   *int `json:"departureGateDelayMinutes,omitempty"`
	DepartureRunwayDelayMinutes *int `json:"departureRunwayDelayMinutes,omitempty"`
	ArrivalGateDelayMinutes     *int `json:"arrivalGateDelayMinutes,omitempty"`
	ArrivalRunwayDelayMinutes   *int `json:"arrivalRunwayDelayMinutes,omitempty"`
}

// FlightDurations holds scheduled and actual durations in minutes
type FlightDurations struct {
	ScheduledBlockMinutes   *int `json:"scheduledBlockMinutes,omitempty"`
	BlockMinutes            *int `json:"blockMinutes,omitempty"`
	ScheduledAirMinutes     *int `json:"scheduledAirMinutes,omitempty"`
	AirMinutes              *int `json:"airMinutes,omitempty"`
	ScheduledTaxiOutMinutes *int `json:"scheduledTaxiOutMinutes,omitempty"`
	TaxiOutMinutes          *int `json:"taxiOutMinutes,omitempty"`
	ScheduledTaxiInMinutes  *int `json:"scheduledTaxiInMinutes,omitempty"`
	TaxiInMinutes           *int `json:"taxiInMinutes,omitempty"`
}

// AirportResources holds terminal, gate and baggage assignments
type AirportResources struct {
	DepartureTerminal string `json:"departureTerminal,omitempty"`
	DepartureGate     string `json:"departureGate,omitempty"`
	ArrivalTerminal   string `json:"arrivalTerminal,omitempty"`
	ArrivalGate       string `json:"arrivalGate,omitempty"`
	Baggage           string `json:"baggage,omitempty"`
}

// Airline is the carrier record embedded in a status snapshot
type Airline struct {
	Fs          string `json:"fs,omitempty"`
	Iata        string `json:"iata,omitempty"`
	Icao        string `json:"icao,omitempty"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Active      bool   `json:"active,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Airport is an airport record embedded in a status snapshot
type Airport struct {
	Iata               string   `json:"iata,omitempty"`
	Icao               string   `json:"icao,omitempty"`
	Faa                string   `json:"faa,omitempty"`
	Name               string   `json:"name,omitempty"`
	Street1            string   `json:"street1,omitempty"`
	Street2            string   `json:"street2,omitempty"`
	City               string   `json:"city,omitempty"`
	District           string   `json:"district,omitempty"`
	StateCode          string   `json:"stateCode,omitempty"`
	PostalCode         string   `json:"postalCode,omitempty"`
	CountryCode        string   `json:"countryCode,omitempty"`
	CountryName        string   `json:"countryName,omitempty"`
	RegionName         string   `json:"regionName,omitempty"`
	TimeZoneRegionName string   `json:"timeZoneRegionName,omitempty"`
	WeatherZone        string   `json:"weatherZone,omitempty"`
	LocalTime          string   `json:"localTime,omitempty"`
	UTCOffsetHours     float64  `json:"utcOffsetHours,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	ElevationFeet      *int     `json:"elevationFeet,omitempty"`
	Classification     *int     `json:"classification,omitempty"`
	Active             bool     `json:"active,omitempty"`
	DelayIndexURL      string   `json:"delayIndexUrl,omitempty"`
	WeatherURL         string   `json:"weatherUrl,omitempty"`
}

// FlightStatus is one point-in-time snapshot of a flight's status. Each
// refresh inserts a new row; earlier snapshots are never mutated.
type FlightStatus struct {
	ID                     int64 `gorm:"primaryKey"`
	TicketID               int64 `gorm:"index"`
	FlightID               int64
	CarrierFsCode          string
	FlightNumber           string
	DepartureAirportFsCode string
	ArrivalAirportFsCode   string
	DivertedAirportFsCode  string
	Status                 string
	Airline                *Airline                `gorm:"serializer:json"`
	DepartureAirport       *Airport                `gorm:"serializer:json"`
	ArrivalAirport         *Airport                `gorm:"serializer:json"`
	DivertedAirport        *Airport                `gorm:"serializer:json"`
	DepartureDate          *LocalisedDate          `gorm:"serializer:json"`
	ArrivalDate            *LocalisedDate          `gorm:"serializer:json"`
	Schedule               *FlightSchedule         `gorm:"serializer:json"`
	OperationalTimes       *FlightOperationalTimes `gorm:"serializer:json"`
	Delays                 *FlightDelays           `gorm:"serializer:json"`
	Durations              *FlightDurations        `gorm:"serializer:json"`
	AirportResources       *AirportResources       `gorm:"serializer:json"`
	LastDataAcquiredDate   *time.Time
	CreatedAt              time.Time
}

// TableName overrides the default table name
func (FlightStatus) TableName() string {
	return "flight_statuses"
}
