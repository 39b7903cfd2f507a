package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/Eursukkul/vendor-dashboard/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var base = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, userID uuid.UUID, created time.Time) models.Event {
	t.Helper()
	summary := "Venue quoted $5,000"
	e := models.Event{
		ID:        uuid.New(),
		UserID:    userID,
		EventDate: created.AddDate(0, 2, 0),
		Summary:   &summary,
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func TestEventRepository_FindCurrentByUser(t *testing.T) {
	db := setupDB(t)
	repo := NewEventRepository(db)
	userID := uuid.New()

	seedEvent(t, db, userID, base)
	newest := seedEvent(t, db, userID, base.Add(48*time.Hour))
	seedEvent(t, db, userID, base.Add(24*time.Hour))
	seedEvent(t, db, uuid.New(), base.Add(72*time.Hour))

	event, err := repo.FindCurrentByUser(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, newest.ID, event.ID)
	assert.Equal(t, "Venue quoted $5,000", event.SummaryText())
}

func TestEventRepository_FindCurrentByUser_None(t *testing.T) {
	repo := NewEventRepository(setupDB(t))

	event, err := repo.FindCurrentByUser(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestGuestRepository_FindByEventID(t *testing.T) {
	db := setupDB(t)
	repo := NewGuestRepository(db)
	e := seedEvent(t, db, uuid.New(), base)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Guest{ID: uuid.New(), EventID: e.ID, Name: "guest", CreatedAt: base}).Error)
	}
	require.NoError(t, db.Create(&models.Guest{ID: uuid.New(), EventID: uuid.New(), CreatedAt: base}).Error)

	guests, err := repo.FindByEventID(context.Background(), e.ID)

	require.NoError(t, err)
	assert.Len(t, guests, 3)
	assert.Equal(t, "pending", guests[0].RSVPStatus)
}

func TestVendorQuoteRepository_FindByEventID(t *testing.T) {
	db := setupDB(t)
	repo := NewVendorQuoteRepository(db)
	eventID := uuid.New()

	quotes := []models.VendorQuote{
		{ID: uuid.New(), EventID: eventID, VendorType: models.VendorCaterer, VendorName: "Second", QuoteAmount: 900, QuoteCurrency: "USD", Priority: 2, Status: models.QuotePending, Inclusions: datatypes.JSONSlice[string]{"Vegetarian", "Kosher"}, CreatedAt: base},
		{ID: uuid.New(), EventID: eventID, VendorType: models.VendorVenue, VendorName: "First", QuoteAmount: 5000, QuoteCurrency: "USD", Priority: 1, Status: models.QuoteConfirmed, CreatedAt: base},
		{ID: uuid.New(), EventID: uuid.New(), VendorType: models.VendorVenue, VendorName: "Other event", QuoteCurrency: "USD", Status: models.QuotePending, CreatedAt: base},
	}
	require.NoError(t, db.Create(&quotes).Error)

	all, err := repo.FindByEventID(context.Background(), eventID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].VendorName)
	assert.Equal(t, "Second", all[1].VendorName)
	assert.Equal(t, datatypes.JSONSlice[string]{"Vegetarian", "Kosher"}, all[1].Inclusions)

	caterer := models.VendorCaterer
	filtered, err := repo.FindByEventID(context.Background(), eventID, &caterer)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, models.VendorCaterer, filtered[0].VendorType)
}

func TestVoiceAgentLogRepository_FindRecentByEventID(t *testing.T) {
	db := setupDB(t)
	repo := NewVoiceAgentLogRepository(db)
	eventID := uuid.New()
	quoteID := uuid.New()

	for i := 0; i < 12; i++ {
		l := models.VoiceAgentLog{
			ID:            uuid.New(),
			EventID:       eventID,
			VendorQuoteID: &quoteID,
			CallType:      models.CallOutbound,
			CallStatus:    models.CallStatusCompleted,
			CallDuration:  i,
			KeyPoints:     datatypes.JSONSlice[string]{"pricing"},
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&l).Error)
	}

	logs, err := repo.FindRecentByEventID(context.Background(), eventID, 0)

	require.NoError(t, err)
	require.Len(t, logs, DefaultCallLogLimit)
	assert.Equal(t, 11, logs[0].CallDuration)
	assert.Equal(t, 2, logs[9].CallDuration)
	require.NotNil(t, logs[0].VendorQuoteID)
	assert.Equal(t, quoteID, *logs[0].VendorQuoteID)
	assert.Equal(t, datatypes.JSONSlice[string]{"pricing"}, logs[0].KeyPoints)

	few, err := repo.FindRecentByEventID(context.Background(), eventID, 3)
	require.NoError(t, err)
	assert.Len(t, few, 3)
}
