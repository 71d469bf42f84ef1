package entity

// External flight-status provider response shapes. Timestamps arrive as
// local/UTC string pairs and are normalised during mapping.

// StatusDatePair is a raw local/UTC timestamp pair from the provider
type StatusDatePair struct {
	DateLocal *string `json:"dateLocal"`
	DateUTC   *string `json:"dateUtc"`
}

// StatusCarrier is the provider's carrier record
type StatusCarrier struct {
	Fs          string `json:"fs"`
	Iata        string `json:"iata"`
	Icao        string `json:"icao"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Active      bool   `json:"active"`
	Category    string `json:"category"`
}

// StatusAirport is the provider's airport record
type StatusAirport struct {
	Iata               string   `json:"iata"`
	Icao               string   `json:"icao"`
	Faa                string   `json:"faa"`
	Name               string   `json:"name"`
	Street1            string   `json:"street1"`
	Street2            string   `json:"street2"`
	City               string   `json:"city"`
	District           string   `json:"district"`
	StateCode          string   `json:"stateCode"`
	PostalCode         string   `json:"postalCode"`
	CountryCode        string   `json:"countryCode"`
	CountryName        string   `json:"countryName"`
	RegionName         string   `json:"regionName"`
	TimeZoneRegionName string   `json:"timeZoneRegionName"`
	WeatherZone        string   `json:"weatherZone"`
	LocalTime          string   `json:"localTime"`
	UTCOffsetHours     float64  `json:"utcOffsetHours"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	ElevationFeet      *int     `json:"elevationFeet"`
	Classification     *int     `json:"classification"`
	Active             bool     `json:"active"`
	DelayIndexURL      string   `json:"delayIndexUrl"`
	WeatherURL         string   `json:"weatherUrl"`
}

// StatusSchedule is the provider's schedule record
type StatusSchedule struct {
	FlightType     string `json:"flightType"`
	ServiceClasses string `json:"serviceClasses"`
	Restrictions   string `json:"restrictions"`
}

// StatusOperationalTimes is the provider's operational timestamp set
type StatusOperationalTimes struct {
	PublishedDeparture         *StatusDatePair `json:"publishedDeparture"`
	PublishedArrival           *StatusDatePair `json:"publishedArrival"`
	ScheduledGateDeparture     *StatusDatePair `json:"scheduledGateDeparture"`
	ScheduledRunwayDeparture   *StatusDatePair `json:"scheduledRunwayDeparture"`
	EstimatedGateDeparture     *StatusDatePair `json:"estimatedGateDeparture"`
	ActualGateDeparture        *StatusDatePair `json:"actualGateDeparture"`
	FlightPlanPlannedDeparture *StatusDatePair `json:"flightPlanPlannedDeparture"`
	EstimatedRunwayDeparture   *StatusDatePair `json:"estimatedRunwayDeparture"`
	ActualRunwayDeparture      *StatusDatePair `json:"actualRunwayDeparture"`
	ScheduledGateArrival       *StatusDatePair `json:"scheduledGateArrival"`
	ScheduledRunwayArrival     *StatusDatePair `json:"scheduledRunwayArrival"`
	EstimatedGateArrival       *StatusDatePair `json:"estimatedGateArrival"`
	ActualGateArrival          *StatusDatePair `json:"actualGateArrival"`
	FlightPlanPlannedArrival   *StatusDatePair `json:"flightPlanPlannedArrival"`
	EstimatedRunwayArrival     *StatusDatePair `json:"estimatedRunwayArrival"`
	ActualRunwayArrival        *StatusDatePair `json:"actualRunwayArrival"`
}

// StatusDelays is the provider's delay record
type StatusDelays struct {
	DepartureGateDelayMinutes   *int `json:"departureGateDelayMinutes"`
	DepartureRunwayDelayMinutes *int `json:"departureRunwayDelayMinutes"`
	ArrivalGateDelayMinutes     *int `json:"arrivalGateDelayMinutes"`
	ArrivalRunwayDelayMinutes   *int `json:"arrivalRunwayDelayMinutes"`
}

// StatusDurations is the provider's duration record
type StatusDurations struct {
	ScheduledBlockMinutes   *int `json:"scheduledBlockMinutes"`
	BlockMinutes            *int `json:"blockMinutes"`
	ScheduledAirMinutes     *int `json:"scheduledAirMinutes"`
	AirMinutes              *int `json:"airMinutes"`
	ScheduledTaxiOutMinutes *int `json:"scheduledTaxiOutMinutes"`
	TaxiOutMinutes          *int `json:"taxiOutMinutes"`
	ScheduledTaxiInMinutes  *int `json:"scheduledTaxiInMinutes"`
	TaxiInMinutes           *int `json:"taxiInMinutes"`
}

// StatusAirportResources is the provider's terminal/gate/baggage record
type StatusAirportResources struct {
	DepartureTerminal string `json:"departureTerminal"`
	DepartureGate     string `json:"departureGate"`
	ArrivalTerminal   string `json:"arrivalTerminal"`
	ArrivalGate       string `json:"arrivalGate"`
	Baggage           string `json:"baggage"`
}

// ProviderFlightStatus is one status record as returned by the provider
type ProviderFlightStatus struct {
	FlightID               int64                   `json:"flightId"`
	Carrier                *StatusCarrier          `json:"carrier"`
	CarrierFsCode          string                  `json:"carrierFsCode"`
	FlightNumber           string                  `json:"flightNumber"`
	DepartureAirport       *StatusAirport          `json:"departureAirport"`
	DepartureAirportFsCode string                  `json:"departureAirportFsCode"`
	ArrivalAirport         *StatusAirport          `json:"arrivalAirport"`
	ArrivalAirportFsCode   string                  `json:"arrivalAirportFsCode"`
	DivertedAirport        *StatusAirport          `json:"divertedAirport"`
	DivertedAirportFsCode  string                  `json:"divertedAirportFsCode"`
	DepartureDate          *StatusDatePair         `json:"departureDate"`
	ArrivalDate            *StatusDatePair         `json:"arrivalDate"`
	Status                 string                  `json:"status"`
	Schedule               *StatusSchedule         `json:"schedule"`
	OperationalTimes       *StatusOperationalTimes `json:"operationalTimes"`
	Delays                 *StatusDelays           `json:"delays"`
	FlightDurations        *StatusDurations        `json:"flightDurations"`
	AirportResources       *StatusAirportResources `json:"airportResources"`
	LastDataAcquiredDate   *string                 `json:"lastDataAcquiredDate"`
}
