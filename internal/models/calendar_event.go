package models

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is a scheduled block of time, optionally linked to a task.
// StartTime must precede EndTime; the service layer enforces the invariant
// on both create and partial update.
type CalendarEvent struct {
	BaseModel

	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	AllDay      bool      `gorm:"default:false" json:"all_day"`

	OwnerID string `gorm:"not null;index" json:"owner_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"-"`

	TaskID *uuid.UUID `gorm:"type:uuid" json:"task_id"`
	Task   *Task      `gorm:"foreignKey:TaskID" json:"-"`
}
