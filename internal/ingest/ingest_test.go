package ingest

import (
	"testing"
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func validQuote() models.VendorQuote {
	return models.VendorQuote{
		ID:               uuid.New(),
		EventID:          uuid.New(),
		VendorType:       models.VendorCaterer,
		VendorName:       "Green Table Catering",
		Email:            "sales@greentable.com",
		QuoteAmount:      4200,
		QuoteCurrency:    "usd",
		Inclusions:       datatypes.JSONSlice[string]{"Vegetarian", "  ", "Serving staff"},
		CallQualityScore: 4.5,
		Status:           models.QuotePending,
	}
}

func validLog() models.VoiceAgentLog {
	return models.VoiceAgentLog{
		ID:               uuid.New(),
		EventID:          uuid.New(),
		CallType:         models.CallOutbound,
		CallStatus:       " Completed ",
		CallDuration:     210,
		CallQualityScore: 4,
	}
}

func TestNormalizeQuote(t *testing.T) {
	q := validQuote()
	q.VendorType = " Caterer "
	q.Status = "PENDING"
	q.VendorName = "  Green Table  "
	q.Exclusions = nil

	n := NormalizeQuote(q)

	assert.Equal(t, models.VendorCaterer, n.VendorType)
	assert.Equal(t, models.QuotePending, n.Status)
	assert.Equal(t, "Green Table", n.VendorName)
	assert.Equal(t, "USD", n.QuoteCurrency)
	assert.Equal(t, datatypes.JSONSlice[string]{"Vegetarian", "Serving staff"}, n.Inclusions)
	assert.NotNil(t, n.Exclusions)
	assert.Empty(t, n.Exclusions)
}

func TestNormalizeQuote_DefaultCurrency(t *testing.T) {
	q := validQuote()
	q.QuoteCurrency = ""

	assert.Equal(t, "USD", NormalizeQuote(q).QuoteCurrency)
}

func TestQuotes_RejectsInvalid(t *testing.T) {
	x := New()

	negative := validQuote()
	negative.QuoteAmount = -1

	badType := validQuote()
	badType.VendorType = "florist"

	badStatus := validQuote()
	badStatus.Status = "accepted"

	badScore := validQuote()
	badScore.CallQualityScore = 7

	noID := validQuote()
	noID.ID = uuid.Nil

	good := validQuote()

	out, rejected := x.Quotes([]models.VendorQuote{negative, badType, good, badStatus, badScore, noID})

	require.Len(t, out, 1)
	assert.Equal(t, good.ID, out[0].ID)
	assert.Len(t, rejected, 5)
	for _, err := range rejected {
		assert.ErrorIs(t, err, ErrInvalidRecord)
	}
	assert.Contains(t, rejected[0].Error(), "quote_amount")
	assert.Contains(t, rejected[1].Error(), "vendor_type")
}

func TestQuotes_Empty(t *testing.T) {
	out, rejected := New().Quotes(nil)

	assert.Empty(t, out)
	assert.Nil(t, rejected)
}

func TestLogs(t *testing.T) {
	x := New()

	bad := validLog()
	bad.CallType = "voicemail"

	out, rejected := x.Logs([]models.VoiceAgentLog{validLog(), bad})

	require.Len(t, out, 1)
	assert.Equal(t, models.CallStatusCompleted, out[0].CallStatus)
	assert.NotNil(t, out[0].KeyPoints)
	require.Len(t, rejected, 1)
	assert.Contains(t, rejected[0].Error(), "call_type")
}

func TestEvent(t *testing.T) {
	x := New()
	budget := 1000.0
	e := &models.Event{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Budget:    &budget,
		EventDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.NoError(t, x.Event(e))

	negative := -5.0
	e.Budget = &negative
	assert.ErrorIs(t, x.Event(e), ErrInvalidRecord)

	e.Budget = nil
	e.EventDate = time.Time{}
	assert.ErrorIs(t, x.Event(e), ErrInvalidRecord)

	assert.ErrorIs(t, x.Event(nil), ErrInvalidRecord)
}

func TestDecodeSummaryUpdate(t *testing.T) {
	x := New()
	eventID := uuid.New()
	userID := uuid.New()

	msg, err := x.DecodeSummaryUpdate([]byte(`{"event_id":"` + eventID.String() + `","user_id":"` + userID.String() + `","updated_at":"2026-04-01T10:00:00Z"}`))

	require.NoError(t, err)
	assert.Equal(t, eventID, msg.EventID)
	assert.Equal(t, userID, msg.UserID)
	assert.Equal(t, time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC), msg.UpdatedAt)
}

func TestDecodeSummaryUpdate_Invalid(t *testing.T) {
	x := New()

	_, err := x.DecodeSummaryUpdate([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidMessage)

	_, err = x.DecodeSummaryUpdate([]byte(`{"event_id":"` + uuid.NewString() + `"}`))
	assert.ErrorIs(t, err, ErrInvalidMessage)
	assert.Contains(t, err.Error(), "user_id")
}
