package ingest

import (
	"strings"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"gorm.io/datatypes"
)

const defaultCurrency = "USD"

// NormalizeQuote trims free-text fields, canonicalizes enum casing and
// currency, and replaces nil tag lists with empty ones.
func NormalizeQuote(q models.VendorQuote) models.VendorQuote {
	q.VendorType = models.VendorType(strings.ToLower(strings.TrimSpace(string(q.VendorType))))
	q.Status = models.QuoteStatus(strings.ToLower(strings.TrimSpace(string(q.Status))))
	q.VendorName = strings.TrimSpace(q.VendorName)
	q.ContactPerson = strings.TrimSpace(q.ContactPerson)
	q.Phone = strings.TrimSpace(q.Phone)
	q.Email = strings.TrimSpace(q.Email)

	q.QuoteCurrency = strings.ToUpper(strings.TrimSpace(q.QuoteCurrency))
	if q.QuoteCurrency == "" {
		q.QuoteCurrency = defaultCurrency
	}
	q.Inclusions = cleanTags(q.Inclusions)
	q.Exclusions = cleanTags(q.Exclusions)
	return q
}

func NormalizeLog(l models.VoiceAgentLog) models.VoiceAgentLog {
	l.CallType = models.CallType(strings.ToLower(strings.TrimSpace(string(l.CallType))))
	l.CallStatus = strings.ToLower(strings.TrimSpace(l.CallStatus))
	l.ContactName = strings.TrimSpace(l.ContactName)
	l.ContactPhone = strings.TrimSpace(l.ContactPhone)
	l.ContactEmail = strings.TrimSpace(l.ContactEmail)
	l.KeyPoints = cleanTags(l.KeyPoints)
	l.ActionItems = cleanTags(l.ActionItems)
	return l
}

// cleanTags drops blank entries, keeping order.
func cleanTags(tags datatypes.JSONSlice[string]) datatypes.JSONSlice[string] {
	out := datatypes.JSONSlice[string]{}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
