package repository

import (
	"context"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCallLogLimit is how many recent calls the dashboard shows.
const DefaultCallLogLimit = 10

type VoiceAgentLogRepository interface {
	FindRecentByEventID(ctx context.Context, eventID uuid.UUID, limit int) ([]models.VoiceAgentLog, error)
}

type voiceAgentLogRepository struct {
	db *gorm.DB
}

func NewVoiceAgentLogRepository(db *gorm.DB) VoiceAgentLogRepository {
	return &voiceAgentLogRepository{db: db}
}

// FindRecentByEventID returns the newest logs first.
func (r *voiceAgentLogRepository) FindRecentByEventID(ctx context.Context, eventID uuid.UUID, limit int) ([]models.VoiceAgentLog, error) {
	if limit <= 0 {
		limit = DefaultCallLogLimit
	}
	var logs []models.VoiceAgentLog
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
