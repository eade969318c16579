package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership roles.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// ValidRole reports whether the supplied role is one of the two allowed values.
func ValidRole(role string) bool {
	return role == RoleMember || role == RoleAdmin
}

// TeamMembership links a user to a team with a role.
type TeamMembership struct {
	ID     uuid.UUID `gorm:"primaryKey;type:uuid" json:"id"`
	TeamID uuid.UUID `gorm:"not null;index;uniqueIndex:idx_team_user" json:"team_id"`
	UserID string    `gorm:"not null;index;uniqueIndex:idx_team_user" json:"user_id"`
	Role   string    `gorm:"not null;default:member" json:"role"`

	Team *Team `gorm:"foreignKey:TeamID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`

	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// BeforeCreate ensures a UUID and default role are present before persisting.
func (m *TeamMembership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Role == "" {
		m.Role = RoleMember
	}
	return nil
}
