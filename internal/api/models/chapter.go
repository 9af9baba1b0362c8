package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Chapter struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	MangaID       string     `gorm:"type:uuid;not null;index" json:"mangaId"`
	ChapterNumber float64    `gorm:"not null" json:"chapterNumber"` // fractional numbers exist (10.5 extras)
	Title         string     `json:"title"`
	ReleaseDate   *time.Time `json:"releaseDate,omitempty"`
	Views         int64      `gorm:"default:0" json:"views"`
	Pages         []string   `gorm:"serializer:json" json:"pages"` // ordered image URLs
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Manga *Manga `gorm:"foreignKey:MangaID;constraint:OnDelete:CASCADE;" json:"manga,omitempty"`
}

func (c *Chapter) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (Chapter) TableName() string {
	return "chapters"
}
