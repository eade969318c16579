package models

// Task represents a single todo item owned by a user.
type Task struct {
	BaseModel

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Completed   bool   `gorm:"default:false" json:"completed"`

	OwnerID string `gorm:"not null;index" json:"owner_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"-"`

	CalendarEvents []CalendarEvent `gorm:"foreignKey:TaskID" json:"-"`
}
