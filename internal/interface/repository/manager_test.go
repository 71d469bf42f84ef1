package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"touristar-consumer/internal/domain/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
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

func TestManagerCommitMakesWritesVisible(t *testing.T) {
	db := newTestDB(t)
	factory := NewGormFactory(db)
	ctx := context.Background()

	mgr, err := factory.Begin(ctx)
	require.NoError(t, err)

	operator := &entity.FlightOperator{Name: "British Airways", CarrierCode: "BA"}
	require.NoError(t, mgr.Operators().CreateOperator(ctx, operator))

	// Visible inside the transaction before commit.
	found, err := mgr.Operators().FindOperatorByName(ctx, "British Airways")
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, mgr.Commit())

	var count int64
	require.NoError(t, db.Model(&entity.FlightOperator{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestManagerRollbackDiscardsWrites(t *testing.T) {
	db := newTestDB(t)
	factory := NewGormFactory(db)
	ctx := context.Background()

	mgr, err := factory.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, mgr.Locations().CreateLocations(ctx, []*entity.Location{
		{City: "London", Country: "UK"},
	}))
	require.NoError(t, mgr.Rollback())

	var count int64
	require.NoError(t, db.Model(&entity.Location{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestManagerFindMissesReturnNilWithoutError(t *testing.T) {
	db := newTestDB(t)
	factory := NewGormFactory(db)
	ctx := context.Background()

	mgr, err := factory.Begin(ctx)
	require.NoError(t, err)
	defer mgr.Rollback()

	operator, err := mgr.Operators().FindOperatorByName(ctx, "Nonexistent Air")
	require.NoError(t, err)
	assert.Nil(t, operator)

	location, err := mgr.Locations().FindByCityCountry(ctx, "Atlantis", "Ocean")
	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestManagerTicketPreloadsOperator(t *testing.T) {
	db := newTestDB(t)
	factory := NewGormFactory(db)
	ctx := context.Background()

	operator := &entity.FlightOperator{Name: "British Airways", CarrierCode: "BA"}
	require.NoError(t, db.Create(operator).Error)
	require.NoError(t, db.Create(&entity.Ticket{
		TripID:           1,
		Leg:              entity.LegOutbound,
		FlightNumber:     "001",
		FlightOperatorID: operator.ID,
	}).Error)

	mgr, err := factory.Begin(ctx)
	require.NoError(t, err)
	defer mgr.Rollback()

	var stored entity.Ticket
	require.NoError(t, db.First(&stored).Error)

	ticket, err := mgr.Tickets().FindTicket(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, ticket.FlightOperator)
	assert.Equal(t, "BA", ticket.FlightOperator.CarrierCode)
}
