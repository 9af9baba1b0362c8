package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Playlist struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Cover       string    `json:"cover"`
	Link        string    `json:"link"` // Spotify or other streaming platform URL
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Tags []Tag `gorm:"many2many:playlist_tags;constraint:OnDelete:CASCADE;" json:"tags,omitempty"`
}

func (p *Playlist) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (Playlist) TableName() string {
	return "playlists"
}
