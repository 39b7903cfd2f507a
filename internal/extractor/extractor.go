// Package extractor turns the call agent's free-text event summary into a
// structured vendor quote using fixed patterns and keyword tables.
package extractor

import (
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Defaults filled into every extracted quote.
const (
	DefaultVendorName    = "Venue Contacted"
	DefaultContactPerson = "Contact Person"
	DefaultPhone         = "+1-555-0000"
	DefaultEmail         = "contact@venue.com"
	DefaultCurrency      = "USD"
	DefaultCapacity      = 160
	DefaultCallDuration  = 180
	DefaultCallQuality   = 4
	DefaultPriority      = 3
	ValidityDays         = 30
	descriptionLimit     = 100
)

// quoteNamespace scopes the name-based ids of extracted quotes.
var quoteNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("vendor-dashboard/parsed-quote"))

type Extractor struct {
	classifier *Classifier
}

func New(c *Classifier) *Extractor {
	if c == nil {
		c = NewClassifier()
	}
	return &Extractor{classifier: c}
}

var defaultExtractor = New(nil)

// Extract parses summary with the default rule table.
func Extract(summary *string, eventID uuid.UUID, now time.Time) (*models.VendorQuote, bool) {
	return defaultExtractor.Extract(summary, eventID, now)
}

// QuoteID is the id given to the quote extracted for eventID. It is stable
// across calls so repeated extraction yields the same record.
func QuoteID(eventID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(quoteNamespace, []byte("parsed-"+eventID.String()))
}

// Extract returns the quote described by summary, or false when the text is
// empty or carries no dollar amount.
func (x *Extractor) Extract(summary *string, eventID uuid.UUID, now time.Time) (*models.VendorQuote, bool) {
	if summary == nil || *summary == "" {
		return nil, false
	}
	text := *summary

	amount, ok := ParseAmount(text)
	if !ok {
		return nil, false
	}

	inclusions := DietaryTags(text)
	if len(inclusions) == 0 {
		inclusions = []string{BasicService}
	}

	return &models.VendorQuote{
		ID:                 QuoteID(eventID),
		EventID:            eventID,
		VendorType:         x.classifier.Classify(text),
		VendorName:         DefaultVendorName,
		ContactPerson:      DefaultContactPerson,
		Phone:              DefaultPhone,
		Email:              DefaultEmail,
		QuoteAmount:        amount,
		QuoteCurrency:      DefaultCurrency,
		QuoteValidUntil:    validUntil(now),
		ServiceDescription: describe(text),
		Inclusions:         datatypes.JSONSlice[string](inclusions),
		Exclusions:         datatypes.JSONSlice[string]{},
		Availability:       true,
		Capacity:           DefaultCapacity,
		AgentCallDate:      now,
		AgentNotes:         text,
		CallDuration:       DefaultCallDuration,
		CallQualityScore:   DefaultCallQuality,
		Status:             models.QuotePending,
		Priority:           DefaultPriority,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, true
}

// validUntil is the UTC calendar date ValidityDays after now.
func validUntil(now time.Time) time.Time {
	d := now.UTC().AddDate(0, 0, ValidityDays)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func describe(text string) string {
	r := []rune(text)
	if len(r) > descriptionLimit {
		r = r[:descriptionLimit]
	}
	return string(r) + "..."
}
