package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message senders.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ValidSender reports whether the supplied sender is one of the two allowed values.
func ValidSender(sender string) bool {
	return sender == SenderUser || sender == SenderAI
}

// Message is a single entry in a conversation. Access control goes through
// the owning conversation; messages carry no owner column of their own.
type Message struct {
	ID             uuid.UUID `gorm:"primaryKey;type:uuid" json:"id"`
	ConversationID uuid.UUID `gorm:"not null;index" json:"conversation_id"`
	Sender         string    `gorm:"not null;default:user" json:"sender"`
	Content        string    `gorm:"not null" json:"content"`

	Conversation *Conversation `gorm:"foreignKey:ConversationID" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate ensures a UUID and default sender are present before persisting.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Sender == "" {
		m.Sender = SenderUser
	}
	return nil
}
