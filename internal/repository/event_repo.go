package repository

import (
	"context"
	"errors"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	// FindCurrentByUser returns the user's most recently created event, or
	// nil when the user has none.
	FindCurrentByUser(ctx context.Context, userID uuid.UUID) (*models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindCurrentByUser(ctx context.Context, userID uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}
