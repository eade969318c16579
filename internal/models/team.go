package models

// Team is a collaborative group owned by the user who created it.
// Members join through TeamMembership rows.
type Team struct {
	BaseModel

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	OwnerID string `gorm:"not null;index" json:"owner_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"-"`

	Memberships []TeamMembership `gorm:"foreignKey:TeamID" json:"-"`
}
