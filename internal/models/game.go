package models

import (
	"time"

	"gorm.io/gorm"
)

// Game represents a catalog entry. PublisherID and DeveloperID reference
// Company rows but are not enforced as foreign keys; the store treats them as
// opaque id strings.
type Game struct {
	ID          string     `gorm:"primaryKey;size:26" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Platform    StringList `gorm:"type:text;not null" json:"platform"`
	PublisherID *string    `gorm:"size:26;index" json:"publisherID,omitempty"`
	DeveloperID *string    `gorm:"size:26;index" json:"developerID,omitempty"`
	Genres      StringList `gorm:"type:text;not null" json:"genres"`
	Pegi        int        `json:"pegi"`
	IsAvailable bool       `json:"isAvailable"`
	DateAdded   time.Time  `json:"dateAdded"`
}

// BeforeCreate assigns the id and stamps DateAdded at insertion time. Client
// input never carries either field.
func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = NewID()
	}
	if g.DateAdded.IsZero() {
		g.DateAdded = time.Now().UTC()
	}
	return nil
}
