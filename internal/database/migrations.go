package database

import (
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/models"
)

// AutoMigrate creates or updates the database schema for all models.
// It is idempotent and runs on every start-up.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Project{},
		&models.Team{},
		&models.TeamMembership{},
		&models.CalendarEvent{},
		&models.Conversation{},
		&models.Message{},
	)
}
