package database

import (
	"fmt"

	"invest-service/internal/ports/models"

	"gorm.io/gorm"
)

// Migrate runs database migrations for all models
func Migrate(db *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.User{},
		&models.Community{},
		&models.Proposal{},
		&models.Suggestion{},
		&models.AssistanceRequest{},
		&models.Vote{},
		&models.Event{},
		&models.Rsvp{},
	}

	for _, model := range modelsToMigrate {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model: %w", err)
		}
	}

	return nil
}
