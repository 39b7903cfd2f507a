// Package aggregator folds an event, its guests and its vendor quotes into
// dashboard metrics.
package aggregator

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
)

// QuoteSource selects how TotalQuotes and AverageCallQuality are derived.
type QuoteSource string

const (
	// FromSummary counts "$" characters in the event summary and reports a
	// fixed call quality whenever a summary exists.
	FromSummary QuoteSource = "summary"
	// FromQuotes counts the quote records and averages their call quality.
	FromQuotes QuoteSource = "quotes"
)

const (
	summaryCallQuality = 4.0
	recentWindow       = 7 * 24 * time.Hour
)

var ErrUnknownQuoteSource = errors.New("unknown quote source")

func ParseQuoteSource(s string) (QuoteSource, error) {
	switch QuoteSource(strings.ToLower(strings.TrimSpace(s))) {
	case FromSummary, "":
		return FromSummary, nil
	case FromQuotes:
		return FromQuotes, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuoteSource, s)
}

type Aggregator struct {
	source QuoteSource
}

func New(source QuoteSource) *Aggregator {
	if source == "" {
		source = FromSummary
	}
	return &Aggregator{source: source}
}

func (a *Aggregator) Source() QuoteSource { return a.source }

var defaultAggregator = New(FromSummary)

// Aggregate computes metrics with the summary-based quote counters.
func Aggregate(event *models.Event, guests []models.Guest, quotes []models.VendorQuote, now time.Time) models.DashboardMetrics {
	return defaultAggregator.Aggregate(event, guests, quotes, now)
}

// Aggregate never fails: a nil event yields zero metrics.
func (a *Aggregator) Aggregate(event *models.Event, guests []models.Guest, quotes []models.VendorQuote, now time.Time) models.DashboardMetrics {
	if event == nil {
		return models.DashboardMetrics{}
	}

	m := models.DashboardMetrics{
		TotalGuests:      len(guests),
		DaysUntilEvent:   DaysUntil(event.EventDate, now),
		ConfirmedVendors: countStatus(quotes, models.QuoteConfirmed),
	}
	if event.Budget != nil {
		m.TotalBudget = *event.Budget
	}
	if event.UpdatedAt.After(now.Add(-recentWindow)) {
		m.RecentCalls = 1
	}

	switch a.source {
	case FromQuotes:
		m.TotalQuotes = len(quotes)
		m.AverageCallQuality = averageQuality(quotes)
	default:
		summary := event.SummaryText()
		m.TotalQuotes = strings.Count(summary, "$")
		if summary != "" {
			m.AverageCallQuality = summaryCallQuality
		}
	}
	m.TotalVendors = m.TotalQuotes

	return m
}

// DaysUntil is the number of started days between now and date, rounded up.
// Zero or less means the date is today or behind us.
func DaysUntil(date, now time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}

func countStatus(quotes []models.VendorQuote, status models.QuoteStatus) int {
	n := 0
	for _, q := range quotes {
		if q.Status == status {
			n++
		}
	}
	return n
}

func averageQuality(quotes []models.VendorQuote) float64 {
	if len(quotes) == 0 {
		return 0
	}
	var sum float64
	for _, q := range quotes {
		sum += q.CallQualityScore
	}
	return math.Round(sum/float64(len(quotes))*10) / 10
}

// CallActivity summarises voice agent logs for the status panel.
func CallActivity(logs []models.VoiceAgentLog) models.CallStats {
	stats := models.CallStats{TotalCalls: len(logs)}
	if len(logs) == 0 {
		return stats
	}

	var duration int
	active := make(map[string]struct{})
	for _, l := range logs {
		duration += l.CallDuration
		switch l.CallStatus {
		case models.CallStatusCompleted:
			stats.SuccessfulCalls++
		case models.CallStatusInProgress:
			agent := l.AgentID
			if agent == "" {
				agent = l.AgentName
			}
			active[agent] = struct{}{}
		}
	}
	stats.AverageDuration = duration / len(logs)
	stats.ActiveAgents = len(active)
	return stats
}
