package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User describes a registered account. Every other entity hangs off a user
// through its owner_id foreign key, which is why the identifier stays a
// plain string at the boundary.
type User struct {
	ID             string `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	Tasks          []Task          `gorm:"foreignKey:OwnerID" json:"-"`
	Projects       []Project       `gorm:"foreignKey:OwnerID" json:"-"`
	Teams          []Team          `gorm:"foreignKey:OwnerID" json:"-"`
	CalendarEvents []CalendarEvent `gorm:"foreignKey:OwnerID" json:"-"`
	Conversations  []Conversation  `gorm:"foreignKey:OwnerID" json:"-"`
	Memberships    []TeamMembership `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a generated identifier when none is supplied.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
