package models

// Conversation is a titled thread of chat messages owned by a user.
type Conversation struct {
	BaseModel

	Title string `gorm:"not null" json:"title"`

	OwnerID string `gorm:"not null;index" json:"owner_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"-"`

	Messages []Message `gorm:"foreignKey:ConversationID" json:"-"`
}
