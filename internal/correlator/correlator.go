// Package correlator joins call logs to vendor quotes by foreign key.
package correlator

import (
	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
)

// Index answers quote/log lookups over one snapshot of records. It keeps its
// own copies, so later changes to the input slices are not observed.
type Index struct {
	quotes []models.VendorQuote
	logs   []models.VoiceAgentLog

	quoteByID  map[uuid.UUID]int
	logByQuote map[uuid.UUID]int
}

// Correlate indexes quotes by id and logs by vendor_quote_id. When several
// records share a key the first one wins.
func Correlate(quotes []models.VendorQuote, logs []models.VoiceAgentLog) *Index {
	idx := &Index{
		quotes:     append([]models.VendorQuote(nil), quotes...),
		logs:       append([]models.VoiceAgentLog(nil), logs...),
		quoteByID:  make(map[uuid.UUID]int, len(quotes)),
		logByQuote: make(map[uuid.UUID]int, len(logs)),
	}

	for i := range idx.quotes {
		if _, seen := idx.quoteByID[idx.quotes[i].ID]; !seen {
			idx.quoteByID[idx.quotes[i].ID] = i
		}
	}
	for i := range idx.logs {
		ref := idx.logs[i].VendorQuoteID
		if ref == nil {
			continue
		}
		if _, seen := idx.logByQuote[*ref]; !seen {
			idx.logByQuote[*ref] = i
		}
	}
	return idx
}

// LogForVendor returns the first call log referencing the quote.
func (x *Index) LogForVendor(vendorQuoteID uuid.UUID) (*models.VoiceAgentLog, bool) {
	i, ok := x.logByQuote[vendorQuoteID]
	if !ok {
		return nil, false
	}
	l := x.logs[i]
	return &l, true
}

// VendorByID returns the first quote with the given id.
func (x *Index) VendorByID(id uuid.UUID) (*models.VendorQuote, bool) {
	i, ok := x.quoteByID[id]
	if !ok {
		return nil, false
	}
	q := x.quotes[i]
	return &q, true
}

// VendorForCall resolves the quote a call log points at, if any.
func (x *Index) VendorForCall(log models.VoiceAgentLog) (*models.VendorQuote, bool) {
	if log.VendorQuoteID == nil {
		return nil, false
	}
	return x.VendorByID(*log.VendorQuoteID)
}

// QuoteView is a quote with the call log that produced it, when known.
type QuoteView struct {
	Quote models.VendorQuote
	Log   *models.VoiceAgentLog
}

// Views pairs every quote with its call log, in input order.
func (x *Index) Views() []QuoteView {
	return x.views(func(models.VendorQuote) bool { return true })
}

// VendorsByType returns the quotes of one vendor type in input order, each
// paired with its call log.
func (x *Index) VendorsByType(t models.VendorType) []QuoteView {
	return x.views(func(q models.VendorQuote) bool { return q.VendorType == t })
}

func (x *Index) views(keep func(models.VendorQuote) bool) []QuoteView {
	views := []QuoteView{}
	for _, q := range x.quotes {
		if !keep(q) {
			continue
		}
		v := QuoteView{Quote: q}
		if l, ok := x.LogForVendor(q.ID); ok {
			v.Log = l
		}
		views = append(views, v)
	}
	return views
}

func (x *Index) Quotes() []models.VendorQuote {
	return append([]models.VendorQuote(nil), x.quotes...)
}

func (x *Index) Logs() []models.VoiceAgentLog {
	return append([]models.VoiceAgentLog(nil), x.logs...)
}
