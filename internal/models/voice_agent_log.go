package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CallType string

const (
	CallOutbound CallType = "outbound"
	CallInbound  CallType = "inbound"
	CallFollowUp CallType = "follow_up"
)

// Call statuses reported by the voice agent.
const (
	CallStatusCompleted  = "completed"
	CallStatusInProgress = "in_progress"
	CallStatusFailed     = "failed"
	CallStatusNoAnswer   = "no_answer"
)

// VoiceAgentLog is one call made or received by the AI call agent.
// VendorQuoteID may be nil or point at a quote that no longer exists.
type VoiceAgentLog struct {
	ID                   uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id" validate:"required"`
	EventID              uuid.UUID                   `gorm:"type:uuid;not null;index" json:"event_id" validate:"required"`
	VendorQuoteID        *uuid.UUID                  `gorm:"type:uuid;index" json:"vendor_quote_id,omitempty"`
	CallType             CallType                    `gorm:"type:varchar(20)" json:"call_type" validate:"required,oneof=outbound inbound follow_up"`
	CallStatus           string                      `gorm:"type:varchar(20)" json:"call_status"`
	ContactName          string                      `json:"contact_name"`
	ContactPhone         string                      `json:"contact_phone"`
	ContactEmail         string                      `json:"contact_email" validate:"omitempty,email"`
	CallStartTime        time.Time                   `json:"call_start_time"`
	CallEndTime          *time.Time                  `json:"call_end_time,omitempty"`
	CallDuration         int                         `json:"call_duration" validate:"gte=0"`
	RecordingURL         *string                     `json:"recording_url,omitempty"`
	AgentID              string                      `json:"agent_id"`
	AgentName            string                      `json:"agent_name"`
	ConversationSummary  string                      `json:"conversation_summary"`
	KeyPoints            datatypes.JSONSlice[string] `json:"key_points"`
	ActionItems          datatypes.JSONSlice[string] `json:"action_items"`
	NextSteps            string                      `json:"next_steps"`
	CallQualityScore     float64                     `json:"call_quality_score" validate:"gte=0,lte=5"`
	CustomerSatisfaction float64                     `json:"customer_satisfaction" validate:"gte=0,lte=5"`
	AgentNotes           string                      `json:"agent_notes"`
	SupervisorNotes      *string                     `json:"supervisor_notes,omitempty"`
	CreatedAt            time.Time                   `json:"created_at"`
}
