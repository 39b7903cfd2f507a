package repository

import (
	"context"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestRepository interface {
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Guest, error)
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Guest, error) {
	var guests []models.Guest
	if err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order("created_at ASC").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}
