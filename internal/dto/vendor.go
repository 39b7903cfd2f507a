package dto

import (
	"fmt"
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/correlator"
	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
)

type VendorRef struct {
	ID         uuid.UUID         `json:"id"`
	VendorName string            `json:"vendor_name"`
	VendorType models.VendorType `json:"vendor_type"`
}

type CallLogResponse struct {
	models.VoiceAgentLog
	DurationText string     `json:"duration_text"`
	TimeAgo      string     `json:"time_ago"`
	Vendor       *VendorRef `json:"vendor,omitempty"`
}

type VendorQuoteResponse struct {
	models.VendorQuote
	CallDurationText string           `json:"call_duration_text"`
	CallLog          *CallLogResponse `json:"call_log,omitempty"`
}

// ExtractRequest asks for a quote to be parsed out of a free-text summary.
type ExtractRequest struct {
	EventID uuid.UUID `json:"event_id" validate:"required"`
	Summary string    `json:"summary" validate:"required"`
}

type ExtractResponse struct {
	Quote     models.VendorQuote `json:"quote"`
	NextSteps []string           `json:"next_steps"`
}

func ToVendorQuoteResponse(v correlator.QuoteView, now time.Time) VendorQuoteResponse {
	resp := VendorQuoteResponse{
		VendorQuote:      v.Quote,
		CallDurationText: FormatDuration(v.Quote.CallDuration),
	}
	if v.Log != nil {
		log := ToCallLogResponse(*v.Log, nil, now)
		resp.CallLog = &log
	}
	return resp
}

func ToCallLogResponse(l models.VoiceAgentLog, vendor *models.VendorQuote, now time.Time) CallLogResponse {
	resp := CallLogResponse{
		VoiceAgentLog: l,
		DurationText:  FormatDuration(l.CallDuration),
		TimeAgo:       TimeAgo(l.CreatedAt, now),
	}
	if vendor != nil {
		resp.Vendor = &VendorRef{ID: vendor.ID, VendorName: vendor.VendorName, VendorType: vendor.VendorType}
	}
	return resp
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// TimeAgo renders how long before now t happened, in whole hours or days.
func TimeAgo(t, now time.Time) string {
	hours := int(now.Sub(t).Hours())
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", hours/24)
	}
}
