package usecase

import (
	"time"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/pkg/utils"
)

// MapToFlightStatus converts a provider status record into the internal
// snapshot shape. Absent provider sub-objects stay absent; every timestamp
// pair member is normalised to UTC independently when present.
func MapToFlightStatus(status *entity.ProviderFlightStatus, ticketID int64) *entity.FlightStatus {
	var airline *entity.Airline
	if status.Carrier != nil {
		airline = &entity.Airline{
			Fs:          status.Carrier.Fs,
			Iata:        status.Carrier.Iata,
			Icao:        status.Carrier.Icao,
			Name:        status.Carrier.Name,
			PhoneNumber: status.Carrier.PhoneNumber,
			Active:      status.Carrier.Active,
			Category:    status.Carrier.Category,
		}
	}

	var schedule *entity.FlightSchedule
	if status.Schedule != nil {
		schedule = &entity.FlightSchedule{
			FlightType:     status.Schedule.FlightType,
			ServiceClasses: status.Schedule.ServiceClasses,
			Restrictions:   status.Schedule.Restrictions,
		}
	}

	var delays *entity.FlightDelays
	if status.Delays != nil {
		delays = &entity.FlightDelays{
			DepartureGateDelayMinutes:   status.Delays.DepartureGateDelayMinutes,
			DepartureRunwayDelayMinutes: status.Delays.DepartureRunwayDelayMinutes,
			ArrivalGateDelayMinutes:     status.Delays.ArrivalGateDelayMinutes,
			ArrivalRunwayDelayMinutes:   status.Delays.ArrivalRunwayDelayMinutes,
		}
	}

	var durations *entity.FlightDurations
	if status.FlightDurations != nil {
		durations = &entity.FlightDurations{
			ScheduledBlockMinutes:   status.FlightDurations.ScheduledBlockMinutes,
			BlockMinutes:            status.FlightDurations.BlockMinutes,
			ScheduledAirMinutes:     status.FlightDurations.ScheduledAirMinutes,
			AirMinutes:              status.FlightDurations.AirMinutes,
			ScheduledTaxiOutMinutes: status.FlightDurations.ScheduledTaxiOutMinutes,
			TaxiOutMinutes:          status.FlightDurations.TaxiOutMinutes,
			ScheduledTaxiInMinutes:  status.FlightDurations.ScheduledTaxiInMinutes,
			TaxiInMinutes:           status.FlightDurations.TaxiInMinutes,
		}
	}

	var airportResources *entity.AirportResources
	if status.AirportResources != nil {
		airportResources = &entity.AirportResources{
			DepartureTerminal: status.AirportResources.DepartureTerminal,
			DepartureGate:     status.AirportResources.DepartureGate,
			ArrivalTerminal:   status.AirportResources.ArrivalTerminal,
			ArrivalGate:       status.AirportResources.ArrivalGate,
			Baggage:           status.AirportResources.Baggage,
		}
	}

	var operationalTimes *entity.FlightOperationalTimes
	if status.OperationalTimes != nil {
		operationalTimes = &entity.FlightOperationalTimes{
			PublishedDeparture:         mapLocalisedDate(status.OperationalTimes.PublishedDeparture),
			PublishedArrival:           mapLocalisedDate(status.OperationalTimes.PublishedArrival),
			ScheduledGateDeparture:     mapLocalisedDate(status.OperationalTimes.ScheduledGateDeparture),
			ScheduledRunwayDeparture:   mapLocalisedDate(status.OperationalTimes.ScheduledRunwayDeparture),
			EstimatedGateDeparture:     mapLocalisedDate(status.OperationalTimes.EstimatedGateDeparture),
			ActualGateDeparture:        mapLocalisedDate(status.OperationalTimes.ActualGateDeparture),
			FlightPlanPlannedDeparture: mapLocalisedDate(status.OperationalTimes.FlightPlanPlannedDeparture),
			EstimatedRunwayDeparture:   mapLocalisedDate(status.OperationalTimes.EstimatedRunwayDeparture),
			ActualRunwayDeparture:      mapLocalisedDate(status.OperationalTimes.ActualRunwayDeparture),
			ScheduledGateArrival:       mapLocalisedDate(status.OperationalTimes.ScheduledGateArrival),
			ScheduledRunwayArrival:     mapLocalisedDate(status.OperationalTimes.ScheduledRunwayArrival),
			EstimatedGateArrival:       mapLocalisedDate(status.OperationalTimes.EstimatedGateArrival),
			ActualGateArrival:          mapLocalisedDate(status.OperationalTimes.ActualGateArrival),
			FlightPlanPlannedArrival:   mapLocalisedDate(status.OperationalTimes.FlightPlanPlannedArrival),
			EstimatedRunwayArrival:     mapLocalisedDate(status.OperationalTimes.EstimatedRunwayArrival),
			ActualRunwayArrival:        mapLocalisedDate(status.OperationalTimes.ActualRunwayArrival),
		}
	}

	return &entity.FlightStatus{
		TicketID:               ticketID,
		FlightID:               status.FlightID,
		CarrierFsCode:          status.CarrierFsCode,
		FlightNumber:           status.FlightNumber,
		DepartureAirportFsCode: status.DepartureAirportFsCode,
		ArrivalAirportFsCode:   status.ArrivalAirportFsCode,
		DivertedAirportFsCode:  status.DivertedAirportFsCode,
		Status:                 status.Status,
		Airline:                airline,
		DepartureAirport:       mapAirport(status.DepartureAirport),
		ArrivalAirport:         mapAirport(status.ArrivalAirport),
		DivertedAirport:        mapAirport(status.DivertedAirport),
		DepartureDate:          mapLocalisedDate(status.DepartureDate),
		ArrivalDate:            mapLocalisedDate(status.ArrivalDate),
		Schedule:               schedule,
		OperationalTimes:       operationalTimes,
		Delays:                 delays,
		Durations:              durations,
		AirportResources:       airportResources,
		LastDataAcquiredDate:   parseProviderTime(status.LastDataAcquiredDate),
	}
}

func mapAirport(airport *entity.StatusAirport) *entity.Airport {
	if airport == nil {
		return nil
	}
	return &entity.Airport{
		Iata:               airport.Iata,
		Icao:               airport.Icao,
		Faa:                airport.Faa,
		Name:               airport.Name,
		Street1:            airport.Street1,
		Street2:            airport.Street2,
		City:               airport.City,
		District:           airport.District,
		StateCode:          airport.StateCode,
		PostalCode:         airport.PostalCode,
		CountryCode:        airport.CountryCode,
		CountryName:        airport.CountryName,
		RegionName:         airport.RegionName,
		TimeZoneRegionName: airport.TimeZoneRegionName,
		WeatherZone:        airport.WeatherZone,
		LocalTime:          airport.LocalTime,
		UTCOffsetHours:     airport.UTCOffsetHours,
		Latitude:           airport.Latitude,
		Longitude:          airport.Longitude,
		ElevationFeet:      airport.ElevationFeet,
		Classification:     airport.Classification,
		Active:             airport.Active,
		DelayIndexURL:      airport.DelayIndexURL,
		WeatherURL:         airport.WeatherURL,
	}
}

func mapLocalisedDate(pair *entity.StatusDatePair) *entity.LocalisedDate {
	if pair == nil {
		return nil
	}
	return &entity.LocalisedDate{
		Local: parseProviderTime(pair.DateLocal),
		UTC:   parseProviderTime(pair.DateUTC),
	}
}

// parseProviderTime normalises a provider timestamp to UTC. An unparsable
// value is treated as absent rather than failing the whole snapshot.
func parseProviderTime(value *string) *time.Time {
	parsed, err := utils.ParseToUTCPtr(value)
	if err != nil {
		return nil
	}
	return parsed
}
