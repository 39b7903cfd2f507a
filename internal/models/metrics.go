package models

import "fmt"

type EventState string

const (
	EventUpcoming    EventState = "upcoming"
	EventTodayOrPast EventState = "today_or_past"
)

// DashboardMetrics is a derived snapshot. It is recomputed on every
// aggregation and never stored.
type DashboardMetrics struct {
	TotalGuests        int     `json:"total_guests"`
	TotalVendors       int     `json:"total_vendors"`
	TotalBudget        float64 `json:"total_budget"`
	DaysUntilEvent     int     `json:"days_until_event"`
	ConfirmedVendors   int     `json:"confirmed_vendors"`
	TotalQuotes        int     `json:"total_quotes"`
	AverageCallQuality float64 `json:"average_call_quality"`
	RecentCalls        int     `json:"recent_calls"`
}

// EventState reports whether the event is still ahead. A non-positive day
// count means today or already past.
func (m DashboardMetrics) EventState() EventState {
	if m.DaysUntilEvent > 0 {
		return EventUpcoming
	}
	return EventTodayOrPast
}

func (m DashboardMetrics) TimelineLabel() string {
	if m.EventState() == EventUpcoming {
		if m.DaysUntilEvent == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", m.DaysUntilEvent)
	}
	return "Today!"
}

// SuccessRate is the confirmed share of vendors as a whole percentage.
func (m DashboardMetrics) SuccessRate() int {
	if m.TotalVendors <= 0 {
		return 0
	}
	return int(float64(m.ConfirmedVendors)/float64(m.TotalVendors)*100 + 0.5)
}

// CallStats summarises voice agent activity for the status panel.
type CallStats struct {
	TotalCalls      int `json:"total_calls"`
	SuccessfulCalls int `json:"successful_calls"`
	AverageDuration int `json:"average_duration"`
	ActiveAgents    int `json:"active_agents"`
}
