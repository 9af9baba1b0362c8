package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Wallpaper struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Cover     string    `json:"cover"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Images []WallpaperImage `gorm:"constraint:OnDelete:CASCADE;" json:"images,omitempty"`
}

func (w *Wallpaper) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}

func (Wallpaper) TableName() string {
	return "wallpapers"
}

type WallpaperImage struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	WallpaperID string `gorm:"type:uuid;not null;index" json:"wallpaperId"`
	URL         string `gorm:"not null" json:"url"`
}

func (i *WallpaperImage) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}

func (WallpaperImage) TableName() string {
	return "wallpaper_images"
}
