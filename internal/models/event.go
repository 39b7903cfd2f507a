package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a user's planned event. The most recently created event of a
// user is the one the dashboard reports on.
type Event struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" validate:"required"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id" validate:"required"`
	Name      string    `json:"name"`
	Budget    *float64  `json:"budget,omitempty" validate:"omitempty,gte=0"`
	EventDate time.Time `gorm:"not null" json:"event_date" validate:"required"`
	Summary   *string   `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SummaryText returns the agent summary, or "" when none was written yet.
func (e *Event) SummaryText() string {
	if e == nil || e.Summary == nil {
		return ""
	}
	return *e.Summary
}
