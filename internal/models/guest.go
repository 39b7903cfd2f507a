package models

import (
	"time"

	"github.com/google/uuid"
)

type Guest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID    uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	RSVPStatus string    `gorm:"type:varchar(20);default:'pending'" json:"rsvp_status"`
	CreatedAt  time.Time `json:"created_at"`
}
