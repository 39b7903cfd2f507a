package database

import (
	"fmt"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB connects and migrates the schema.
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the tables the dashboard reads from.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Event{}, &models.Guest{}, &models.VendorQuote{}, &models.VoiceAgentLog{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// The calls panel always reads the newest logs of one event.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_voice_agent_logs_event_created
		ON voice_agent_logs (event_id, created_at DESC)
	`).Error; err != nil {
		return fmt.Errorf("create call log index: %w", err)
	}
	return nil
}
