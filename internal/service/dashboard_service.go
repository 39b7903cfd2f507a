package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/aggregator"
	"github.com/Eursukkul/vendor-dashboard/internal/correlator"
	"github.com/Eursukkul/vendor-dashboard/internal/extractor"
	"github.com/Eursukkul/vendor-dashboard/internal/ingest"
	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/Eursukkul/vendor-dashboard/internal/repository"
	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RefreshedKey is the routing key snapshots are republished under.
const RefreshedKey = "dashboard.refreshed"

// Publisher fans refreshed metrics out to other services.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type Repositories struct {
	Events   repository.EventRepository
	Guests   repository.GuestRepository
	Quotes   repository.VendorQuoteRepository
	CallLogs repository.VoiceAgentLogRepository
}

// RefreshedMessage is the payload published after every refresh.
type RefreshedMessage struct {
	UserID      uuid.UUID               `json:"user_id"`
	EventID     *uuid.UUID              `json:"event_id,omitempty"`
	Metrics     models.DashboardMetrics `json:"metrics"`
	Calls       models.CallStats        `json:"calls"`
	RefreshedAt time.Time               `json:"refreshed_at"`
}

// ExtractResult is an on-demand extraction of one summary.
type ExtractResult struct {
	Quote     *models.VendorQuote
	NextSteps []string
}

type DashboardService interface {
	// Refresh rebuilds and publishes the user's snapshot. On error the
	// previous snapshot stays in place.
	Refresh(ctx context.Context, userID uuid.UUID) (*Snapshot, error)
	// RefreshAll refreshes every user seen so far.
	RefreshAll(ctx context.Context) error
	// Snapshot returns the published snapshot, refreshing on first access.
	Snapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error)
	Extract(summary *string, eventID uuid.UUID) (ExtractResult, bool)
}

type Option func(*dashboardService)

func WithPublisher(p Publisher) Option {
	return func(s *dashboardService) { s.publisher = p }
}

func WithClock(c clock.Clock) Option {
	return func(s *dashboardService) { s.clock = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *dashboardService) { s.log = l.With().Str("component", "DashboardService").Logger() }
}

type dashboardService struct {
	repos     Repositories
	agg       *aggregator.Aggregator
	extractor *extractor.Extractor
	validator *ingest.Validator
	publisher Publisher
	clock     clock.Clock
	log       zerolog.Logger
	store     *snapshotStore
}

func NewDashboardService(repos Repositories, agg *aggregator.Aggregator, opts ...Option) DashboardService {
	if agg == nil {
		agg = aggregator.New(aggregator.FromSummary)
	}
	s := &dashboardService{
		repos:     repos,
		agg:       agg,
		extractor: extractor.New(nil),
		validator: ingest.New(),
		clock:     clock.New(),
		log:       zerolog.Nop(),
		store:     newSnapshotStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *dashboardService) Refresh(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	now := s.clock.Now()

	event, err := s.repos.Events.FindCurrentByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find current event: %w", err)
	}

	snap := &Snapshot{UserID: userID, RefreshedAt: now}
	if event == nil {
		snap.Index = correlator.Correlate(nil, nil)
		snap.Metrics = s.agg.Aggregate(nil, nil, nil, now)
	} else if err := s.build(ctx, snap, *event, now); err != nil {
		return nil, err
	}

	published := s.store.swap(snap)
	s.publish(ctx, published)
	return published, nil
}

func (s *dashboardService) build(ctx context.Context, snap *Snapshot, event models.Event, now time.Time) error {
	if err := s.validator.Event(&event); err != nil {
		return fmt.Errorf("current event %s: %w", event.ID, err)
	}

	guests, err := s.repos.Guests.FindByEventID(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("find guests: %w", err)
	}
	stored, err := s.repos.Quotes.FindByEventID(ctx, event.ID, nil)
	if err != nil {
		return fmt.Errorf("find vendor quotes: %w", err)
	}
	rawLogs, err := s.repos.CallLogs.FindRecentByEventID(ctx, event.ID, repository.DefaultCallLogLimit)
	if err != nil {
		return fmt.Errorf("find call logs: %w", err)
	}

	quotes, rejectedQuotes := s.validator.Quotes(stored)
	logs, rejectedLogs := s.validator.Logs(rawLogs)
	for _, rerr := range append(rejectedQuotes, rejectedLogs...) {
		s.log.Warn().Err(rerr).Str("event_id", event.ID.String()).Msg("record rejected")
	}

	if q, ok := s.extractor.Extract(event.Summary, event.ID, now); ok {
		quotes = mergeExtracted(quotes, *q)
	}

	snap.Event = &event
	snap.GuestCount = len(guests)
	snap.Index = correlator.Correlate(quotes, logs)
	snap.Metrics = s.agg.Aggregate(&event, guests, quotes, now)
	snap.Calls = aggregator.CallActivity(logs)
	snap.Rejected = len(rejectedQuotes) + len(rejectedLogs)
	return nil
}

// mergeExtracted appends the quote parsed from the summary unless a stored
// record already carries its id.
func mergeExtracted(quotes []models.VendorQuote, parsed models.VendorQuote) []models.VendorQuote {
	for _, q := range quotes {
		if q.ID == parsed.ID {
			return quotes
		}
	}
	return append(quotes, parsed)
}

func (s *dashboardService) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, userID := range s.store.users() {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := s.Refresh(ctx, userID); err != nil {
			errs = append(errs, fmt.Errorf("refresh user %s: %w", userID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *dashboardService) Snapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	if snap := s.store.load(userID); snap != nil {
		return snap, nil
	}
	return s.Refresh(ctx, userID)
}

func (s *dashboardService) Extract(summary *string, eventID uuid.UUID) (ExtractResult, bool) {
	q, ok := s.extractor.Extract(summary, eventID, s.clock.Now())
	if !ok {
		return ExtractResult{}, false
	}
	return ExtractResult{Quote: q, NextSteps: extractor.NextSteps(*summary)}, true
}

func (s *dashboardService) publish(ctx context.Context, snap *Snapshot) {
	if s.publisher == nil {
		return
	}
	msg := RefreshedMessage{
		UserID:      snap.UserID,
		Metrics:     snap.Metrics,
		Calls:       snap.Calls,
		RefreshedAt: snap.RefreshedAt,
	}
	if snap.Event != nil {
		id := snap.Event.ID
		msg.EventID = &id
	}
	if err := s.publisher.Publish(ctx, RefreshedKey, msg); err != nil {
		s.log.Warn().Err(err).Str("user_id", snap.UserID.String()).Msg("failed to publish refreshed snapshot")
	}
}
