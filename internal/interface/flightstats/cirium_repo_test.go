package flightstats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusesByFlightDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flex/flightstatus/rest/v2/json/flight/status/BA/001/arr/2024/7/14", r.URL.Path)
		assert.Equal(t, "app-id", r.URL.Query().Get("appId"))
		assert.Equal(t, "app-key", r.URL.Query().Get("appKey"))

		w.Write([]byte(`{"flightStatuses":[{
			"flightId":123456,
			"carrierFsCode":"BA",
			"flightNumber":"001",
			"status":"L",
			"departureDate":{"dateLocal":"2024-07-14T10:30:00","dateUtc":"2024-07-14T09:30:00"},
			"delays":{"arrivalGateDelayMinutes":12}
		}]}`))
	}))
	defer server.Close()

	repo := NewCiriumStatusRepository(server.URL, "app-id", "app-key")
	date := time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)

	statuses, err := repo.StatusesByFlightDate(context.Background(), "BA", "001", date)
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	status := statuses[0]
	assert.Equal(t, int64(123456), status.FlightID)
	assert.Equal(t, "L", status.Status)
	require.NotNil(t, status.DepartureDate)
	require.NotNil(t, status.DepartureDate.DateLocal)
	assert.Equal(t, "2024-07-14T10:30:00", *status.DepartureDate.DateLocal)
	require.NotNil(t, status.Delays)
	require.NotNil(t, status.Delays.ArrivalGateDelayMinutes)
	assert.Equal(t, 12, *status.Delays.ArrivalGateDelayMinutes)
}

func TestStatusesByFlightDateEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"flightStatuses":[]}`))
	}))
	defer server.Close()

	repo := NewCiriumStatusRepository(server.URL, "app-id", "app-key")
	statuses, err := repo.StatusesByFlightDate(context.Background(), "BA", "001", time.Now())
	require.NoError(t, err)
	assert.Empty(t, statuses)
}
