package consumer

import (
	"context"

	"github.com/Eursukkul/vendor-dashboard/internal/ingest"
	"github.com/Eursukkul/vendor-dashboard/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

type EventConsumer struct {
	svc       service.DashboardService
	validator *ingest.Validator
	log       zerolog.Logger
}

func NewEventConsumer(svc service.DashboardService, log zerolog.Logger) *EventConsumer {
	return &EventConsumer{
		svc:       svc,
		validator: ingest.New(),
		log:       log.With().Str("component", "EventConsumer").Logger(),
	}
}

// Start refreshes the owning user's dashboard for every summary update. The
// returned channel closes once msgs is drained.
func (ec *EventConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			ec.handleMessage(ctx, msg)
		}
		ec.log.Info().Msg("channel closed, stopping consumer")
	}()
	return done
}

func (ec *EventConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	update, err := ec.validator.DecodeSummaryUpdate(msg.Body)
	if err != nil {
		ec.log.Warn().Err(err).Str("routing_key", msg.RoutingKey).Msg("dropping message")
		_ = msg.Nack(false, false)
		return
	}

	snap, err := ec.svc.Refresh(ctx, update.UserID)
	if err != nil {
		ec.log.Error().Err(err).Str("user_id", update.UserID.String()).Msg("failed to refresh dashboard")
		_ = msg.Nack(false, true) // requeue
		return
	}

	ec.log.Info().
		Str("user_id", update.UserID.String()).
		Str("event_id", update.EventID.String()).
		Int("total_quotes", snap.Metrics.TotalQuotes).
		Msg("dashboard refreshed")
	_ = msg.Ack(false)
}
