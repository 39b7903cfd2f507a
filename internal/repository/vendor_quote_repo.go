package repository

import (
	"context"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorQuoteRepository interface {
	FindByEventID(ctx context.Context, eventID uuid.UUID, vendorType *models.VendorType) ([]models.VendorQuote, error)
}

type vendorQuoteRepository struct {
	db *gorm.DB
}

func NewVendorQuoteRepository(db *gorm.DB) VendorQuoteRepository {
	return &vendorQuoteRepository{db: db}
}

// FindByEventID returns the event's quotes by priority, optionally limited to
// one vendor type.
func (r *vendorQuoteRepository) FindByEventID(ctx context.Context, eventID uuid.UUID, vendorType *models.VendorType) ([]models.VendorQuote, error) {
	var quotes []models.VendorQuote
	q := r.db.WithContext(ctx).Where("event_id = ?", eventID)
	if vendorType != nil {
		q = q.Where("vendor_type = ?", *vendorType)
	}
	if err := q.Order("priority ASC, created_at ASC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}
