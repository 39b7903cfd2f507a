// Package ingest validates and normalizes records handed over by the
// datastore or the message broker before they reach the dashboard core.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidRecord  = errors.New("invalid record")
	ErrInvalidMessage = errors.New("invalid message")
)

// SummaryUpdate is published upstream whenever the call agent rewrites an
// event summary.
type SummaryUpdate struct {
	EventID   uuid.UUID `json:"event_id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate lets the validator back echo's c.Validate.
func (x *Validator) Validate(i interface{}) error {
	if err := x.v.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, describe(err))
	}
	return nil
}

func (x *Validator) Event(e *models.Event) error {
	if e == nil {
		return fmt.Errorf("%w: nil event", ErrInvalidRecord)
	}
	return x.Validate(e)
}

// Quotes normalizes every quote and keeps the ones that validate. The
// returned errors describe the rejected records.
func (x *Validator) Quotes(in []models.VendorQuote) ([]models.VendorQuote, []error) {
	out := make([]models.VendorQuote, 0, len(in))
	var rejected []error
	for _, q := range in {
		q = NormalizeQuote(q)
		if err := x.Validate(&q); err != nil {
			rejected = append(rejected, fmt.Errorf("vendor quote %s: %w", q.ID, err))
			continue
		}
		out = append(out, q)
	}
	return out, rejected
}

// Logs normalizes every call log and keeps the ones that validate.
func (x *Validator) Logs(in []models.VoiceAgentLog) ([]models.VoiceAgentLog, []error) {
	out := make([]models.VoiceAgentLog, 0, len(in))
	var rejected []error
	for _, l := range in {
		l = NormalizeLog(l)
		if err := x.Validate(&l); err != nil {
			rejected = append(rejected, fmt.Errorf("voice agent log %s: %w", l.ID, err))
			continue
		}
		out = append(out, l)
	}
	return out, rejected
}

// DecodeSummaryUpdate parses a broker message body.
func (x *Validator) DecodeSummaryUpdate(body []byte) (*SummaryUpdate, error) {
	var msg SummaryUpdate
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := x.v.Struct(&msg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMessage, describe(err))
	}
	return &msg, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
