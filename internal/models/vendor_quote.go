package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type VendorType string

const (
	VendorVenue          VendorType = "venue"
	VendorCaterer        VendorType = "caterer"
	VendorDecorator      VendorType = "decorator"
	VendorPhotographer   VendorType = "photographer"
	VendorMusic          VendorType = "music"
	VendorTransportation VendorType = "transportation"
)

// VendorTypes lists every vendor type in dashboard tab order.
var VendorTypes = []VendorType{
	VendorVenue,
	VendorCaterer,
	VendorDecorator,
	VendorPhotographer,
	VendorMusic,
	VendorTransportation,
}

func (t VendorType) Valid() bool {
	for _, v := range VendorTypes {
		if v == t {
			return true
		}
	}
	return false
}

type QuoteStatus string

const (
	QuotePending   QuoteStatus = "pending"
	QuoteConfirmed QuoteStatus = "confirmed"
	QuoteRejected  QuoteStatus = "rejected"
	QuoteExpired   QuoteStatus = "expired"
)

var ErrInvalidTransition = errors.New("invalid quote status transition")

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuotePending, QuoteConfirmed, QuoteRejected, QuoteExpired:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s. Only pending is open.
func (s QuoteStatus) Terminal() bool {
	return s.Valid() && s != QuotePending
}

// CanTransitionTo reports whether s -> next is allowed: pending may move to
// any terminal status, nothing else moves.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	return s == QuotePending && next.Terminal()
}

type VendorQuote struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id" validate:"required"`
	EventID            uuid.UUID                   `gorm:"type:uuid;not null;index" json:"event_id" validate:"required"`
	VendorType         VendorType                  `gorm:"type:varchar(32);not null;index" json:"vendor_type" validate:"required,oneof=venue caterer decorator photographer music transportation"`
	VendorName         string                      `gorm:"not null" json:"vendor_name" validate:"required"`
	ContactPerson      string                      `json:"contact_person"`
	Phone              string                      `json:"phone"`
	Email              string                      `json:"email" validate:"omitempty,email"`
	QuoteAmount        float64                     `gorm:"not null" json:"quote_amount" validate:"gte=0"`
	QuoteCurrency      string                      `gorm:"type:varchar(3);not null;default:'USD'" json:"quote_currency" validate:"required,len=3"`
	QuoteValidUntil    time.Time                   `gorm:"type:date" json:"quote_valid_until"`
	ServiceDescription string                      `json:"service_description"`
	Inclusions         datatypes.JSONSlice[string] `json:"inclusions"`
	Exclusions         datatypes.JSONSlice[string] `json:"exclusions"`
	Availability       bool                        `json:"availability"`
	Capacity           int                         `json:"capacity" validate:"gte=0"`
	AgentCallDate      time.Time                   `json:"agent_call_date"`
	AgentNotes         string                      `json:"agent_notes"`
	CallDuration       int                         `json:"call_duration" validate:"gte=0"`
	CallQualityScore   float64                     `json:"call_quality_score" validate:"gte=0,lte=5"`
	Status             QuoteStatus                 `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"required,oneof=pending confirmed rejected expired"`
	Priority           int                         `json:"priority"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

// Transition moves the quote to next, stamping UpdatedAt. The core never
// confirms or rejects quotes itself; callers owning that workflow use this to
// keep the status machine intact.
func (q *VendorQuote) Transition(next QuoteStatus, at time.Time) error {
	if !q.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, q.Status, next)
	}
	q.Status = next
	q.UpdatedAt = at
	return nil
}
