package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Manga struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	MangaUUID   string     `gorm:"column:manga_uuid;uniqueIndex;not null" json:"manga_uuid"`
	Cover       string     `json:"cover"`
	Status      string     `gorm:"default:'ongoing';not null" json:"status"` // ongoing, completed, hiatus
	Type        string     `json:"type"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// associations
	Categories   []Category         `gorm:"many2many:manga_categories;constraint:OnDelete:CASCADE;" json:"categories,omitempty"`
	Languages    []Language         `gorm:"many2many:manga_languages;constraint:OnDelete:CASCADE;" json:"languages,omitempty"`
	Translations []MangaTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"translations,omitempty"`
}

func (m *Manga) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

func (Manga) TableName() string {
	return "mangas"
}

// MangaTranslation carries the localized title/description for one language.
// The preferred translation is surfaced as the manga's top-level
// title/description at the DTO boundary.
type MangaTranslation struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	MangaID     string `gorm:"type:uuid;not null;index" json:"mangaId"`
	Language    string `gorm:"not null" json:"language"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

func (t *MangaTranslation) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}

func (MangaTranslation) TableName() string {
	return "manga_translations"
}
