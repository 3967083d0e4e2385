package models

import "gorm.io/gorm"

// Company roles. These are the only valid values for Company.Role.
const (
	RoleDeveloper = "developer"
	RolePublisher = "publisher"
)

// Company represents a game developer or publisher.
type Company struct {
	ID           string `gorm:"primaryKey;size:26" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Founded      int    `json:"founded"`
	Headquarters string `gorm:"size:255;not null" json:"headquarters"`
	Perex        string `gorm:"not null" json:"perex"`
	Role         string `gorm:"size:50;not null;index" json:"role"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}

// CompanySummary is the {id, name} projection embedded in game detail
// responses.
type CompanySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c Company) Summary() CompanySummary {
	return CompanySummary{ID: c.ID, Name: c.Name}
}
