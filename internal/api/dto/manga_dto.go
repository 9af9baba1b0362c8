package dto

import (
	"time"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

// TranslationInput is one localized name/description pair on create/update.
type TranslationInput struct {
	Language    string `json:"language" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateMangaDTO used for POST /admin/mangas
type CreateMangaDTO struct {
	Cover        string             `json:"cover"`
	Status       string             `json:"status" binding:"required,oneof=ongoing completed hiatus"`
	Type         string             `json:"type"`
	ReleaseDate  *time.Time         `json:"releaseDate,omitempty"`
	MangaUUID    string             `json:"manga_uuid"`
	CategoryIDs  []string           `json:"categories"`
	LanguageIDs  []string           `json:"languages"`
	Translations []TranslationInput `json:"translations" binding:"required,min=1,dive"`
}

// UpdateMangaDTO used for PATCH /admin/mangas/:id (partial updates allowed)
type UpdateMangaDTO struct {
	Cover        *string            `json:"cover,omitempty"`
	Status       *string            `json:"status,omitempty"`
	Type         *string            `json:"type,omitempty"`
	ReleaseDate  *time.Time         `json:"releaseDate,omitempty"`
	MangaUUID    *string            `json:"manga_uuid,omitempty"`
	CategoryIDs  []string           `json:"categories,omitempty"`
	LanguageIDs  []string           `json:"languages,omitempty"`
	Translations []TranslationInput `json:"translations,omitempty"`
}

// MangaResponse is the wire shape for a single manga. Title and description
// come from the preferred translation so list screens never deal with
// translation rows directly.
type MangaResponse struct {
	ID           string                    `json:"id"`
	MangaUUID    string                    `json:"manga_uuid"`
	Cover        string                    `json:"cover"`
	Status       string                    `json:"status"`
	Type         string                    `json:"type"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	ReleaseDate  *time.Time                `json:"releaseDate,omitempty"`
	Categories   []models.Category         `json:"categories"`
	Languages    []models.Language         `json:"languages"`
	Translations []models.MangaTranslation `json:"translations"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

func (d CreateMangaDTO) ToModel() models.Manga {
	m := models.Manga{
		MangaUUID:   d.MangaUUID,
		Cover:       d.Cover,
		Status:      d.Status,
		Type:        d.Type,
		ReleaseDate: d.ReleaseDate,
	}
	for _, t := range d.Translations {
		m.Translations = append(m.Translations, models.MangaTranslation{
			Language:    t.Language,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return m
}

func (d UpdateMangaDTO) ApplyTo(m *models.Manga) {
	if d.Cover != nil {
		m.Cover = *d.Cover
	}
	if d.Status != nil {
		m.Status = *d.Status
	}
	if d.Type != nil {
		m.Type = *d.Type
	}
	if d.ReleaseDate != nil {
		m.ReleaseDate = d.ReleaseDate
	}
	if d.MangaUUID != nil {
		m.MangaUUID = *d.MangaUUID
	}
}

// FromMangaModel picks the preferred-language translation (falling back to
// the first one) for the top-level title/description.
func FromMangaModel(m models.Manga, preferredLang string) MangaResponse {
	resp := MangaResponse{
		ID:           m.ID,
		MangaUUID:    m.MangaUUID,
		Cover:        m.Cover,
		Status:       m.Status,
		Type:         m.Type,
		ReleaseDate:  m.ReleaseDate,
		Categories:   m.Categories,
		Languages:    m.Languages,
		Translations: m.Translations,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if resp.Categories == nil {
		resp.Categories = []models.Category{}
	}
	if resp.Languages == nil {
		resp.Languages = []models.Language{}
	}
	if resp.Translations == nil {
		resp.Translations = []models.MangaTranslation{}
	}

	for _, t := range m.Translations {
		if t.Language == preferredLang {
			resp.Title = t.Name
			resp.Description = t.Description
			return resp
		}
	}
	if len(m.Translations) > 0 {
		resp.Title = m.Translations[0].Name
		resp.Description = m.Translations[0].Description
	}
	return resp
}

// MangaFilters are the optional list filters accepted by GET /mangas.
type MangaFilters struct {
	Search      string
	Status      string
	Type        string
	CategoryIDs []string
	Language    string
}
