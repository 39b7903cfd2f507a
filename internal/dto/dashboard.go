package dto

import (
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
)

type EventResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	EventDate time.Time `json:"event_date"`
	Budget    *float64  `json:"budget,omitempty"`
	Summary   *string   `json:"summary,omitempty"`
}

type MetricsResponse struct {
	models.DashboardMetrics
	SuccessRate int               `json:"success_rate"`
	Timeline    string            `json:"timeline"`
	EventState  models.EventState `json:"event_state"`
}

type CallStatsResponse struct {
	models.CallStats
	AverageDurationText string `json:"average_duration_text"`
}

type DashboardResponse struct {
	UserID      uuid.UUID         `json:"user_id"`
	Event       *EventResponse    `json:"event,omitempty"`
	Metrics     MetricsResponse   `json:"metrics"`
	CallStats   CallStatsResponse `json:"call_stats"`
	Rejected    int               `json:"rejected_records"`
	RefreshedAt time.Time         `json:"refreshed_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToEventResponse(e *models.Event) *EventResponse {
	if e == nil {
		return nil
	}
	return &EventResponse{
		ID:        e.ID,
		Name:      e.Name,
		EventDate: e.EventDate,
		Budget:    e.Budget,
		Summary:   e.Summary,
	}
}

func ToMetricsResponse(m models.DashboardMetrics) MetricsResponse {
	return MetricsResponse{
		DashboardMetrics: m,
		SuccessRate:      m.SuccessRate(),
		Timeline:         m.TimelineLabel(),
		EventState:       m.EventState(),
	}
}

func ToCallStatsResponse(s models.CallStats) CallStatsResponse {
	return CallStatsResponse{
		CallStats:           s,
		AverageDurationText: FormatDuration(s.AverageDuration),
	}
}

type HealthResponse struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	PollInterval string `json:"poll_interval"`
	QuoteMetrics string `json:"quote_metrics"`
	Poller       any    `json:"poller"`
}
