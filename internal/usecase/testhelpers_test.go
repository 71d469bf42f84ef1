package usecase

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"touristar-consumer/internal/domain/entity"
	gormrepo "touristar-consumer/internal/interface/repository"
	"touristar-consumer/pkg/logger"
	"touristar-consumer/pkg/metrics"
)

// Shared across the package; promauto registers on a global registry and
// a second NewMetrics call with the same namespace would panic.
var testMetrics = metrics.NewMetrics("usecase_test")

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "consumer.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Location{},
		&entity.User{},
		&entity.Trip{},
		&entity.FlightOperator{},
		&entity.Ticket{},
		&entity.FlightStatus{},
	))
	return db
}

func newTestFactory(t *testing.T) (*gormrepo.GormFactory, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return gormrepo.NewGormFactory(db), db
}

func seedTrip(t *testing.T, db *gorm.DB, user *entity.User, departure, arrival *entity.Location) *entity.Trip {
	t.Helper()

	require.NoError(t, db.Create(user).Error)
	trip := &entity.Trip{UserID: user.ID}
	if departure != nil {
		require.NoError(t, db.Create(departure).Error)
		trip.DepartureLocationID = &departure.ID
	}
	if arrival != nil {
		require.NoError(t, db.Create(arrival).Error)
		trip.ArrivalLocationID = &arrival.ID
	}
	require.NoError(t, db.Create(trip).Error)
	return trip
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// fakeExtractor returns a canned leg list for any input text
type fakeExtractor struct {
	legs []*entity.TicketLegData
	err  error
}

func (f *fakeExtractor) TicketDataFromText(_ context.Context, _ string, _ *entity.Location) ([]*entity.TicketLegData, error) {
	return f.legs, f.err
}

// echoGeo geocodes "City Country" queries by splitting on the first space,
// which is enough for the single-word cities the tests use.
type echoGeo struct {
	err error
}

func (g *echoGeo) SearchLocations(_ context.Context, query string) ([]*entity.Location, error) {
	if g.err != nil {
		return nil, g.err
	}
	parts := strings.SplitN(query, " ", 2)
	if len(parts) != 2 {
		return nil, nil
	}
	return []*entity.Location{{City: parts[0], Country: parts[1]}}, nil
}

type fakeLogo struct {
	url *string
	err error
}

func (f *fakeLogo) AirlineLogoURL(_ context.Context, _ string) (*string, error) {
	return f.url, f.err
}

type sentPush struct {
	token string
	title string
	body  string
	data  map[string]string
}

type fakeMessaging struct {
	sent []sentPush
	err  error
}

func (f *fakeMessaging) SendPushNotification(_ context.Context, deviceToken, title, body string, data map[string]string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentPush{token: deviceToken, title: title, body: body, data: data})
	return nil
}

type statusCall struct {
	carrierCode  string
	flightNumber string
	date         time.Time
}

type fakeStatusProvider struct {
	statuses []entity.ProviderFlightStatus
	err      error
	calls    []statusCall
}

func (f *fakeStatusProvider) StatusesByFlightDate(_ context.Context, carrierCode, flightNumber string, date time.Time) ([]entity.ProviderFlightStatus, error) {
	f.calls = append(f.calls, statusCall{carrierCode: carrierCode, flightNumber: flightNumber, date: date})
	if f.err != nil {
		return nil, f.err
	}
	return f.statuses, nil
}

func newTestTicketProcessor(t *testing.T, extractor *fakeExtractor, messaging *fakeMessaging) (*TicketProcessor, *gorm.DB) {
	t.Helper()

	factory, db := newTestFactory(t)
	log := logger.NewNop()
	operators := NewOperatorResolver(&fakeLogo{url: strPtr("https://logos.test/BA.svg")}, log)
	locations := NewLocationResolver(&echoGeo{}, log)
	return NewTicketProcessor(factory, extractor, operators, locations, messaging, testMetrics, log), db
}

func newTestStatusProcessor(t *testing.T, provider *fakeStatusProvider) (*StatusProcessor, *gorm.DB) {
	t.Helper()

	factory, db := newTestFactory(t)
	return NewStatusProcessor(factory, provider, testMetrics, logger.NewNop()), db
}
