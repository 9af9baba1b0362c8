package dto

import (
	"time"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

// CreateChapterDTO used for POST /admin/chapters
type CreateChapterDTO struct {
	MangaID       string     `json:"mangaId" binding:"required,uuid"`
	ChapterNumber float64    `json:"chapterNumber" binding:"required"`
	Title         string     `json:"title"`
	ReleaseDate   *time.Time `json:"releaseDate,omitempty"`
	Pages         []string   `json:"pages"`
}

// UpdateChapterDTO used for PUT /admin/chapters/:id (partial updates allowed)
type UpdateChapterDTO struct {
	ChapterNumber *float64   `json:"chapterNumber,omitempty"`
	Title         *string    `json:"title,omitempty"`
	ReleaseDate   *time.Time `json:"releaseDate,omitempty"`
	Pages         []string   `json:"pages,omitempty"`
}

func (d CreateChapterDTO) ToModel() models.Chapter {
	return models.Chapter{
		MangaID:       d.MangaID,
		ChapterNumber: d.ChapterNumber,
		Title:         d.Title,
		ReleaseDate:   d.ReleaseDate,
		Pages:         d.Pages,
	}
}

func (d UpdateChapterDTO) ApplyTo(c *models.Chapter) {
	if d.ChapterNumber != nil {
		c.ChapterNumber = *d.ChapterNumber
	}
	if d.Title != nil {
		c.Title = *d.Title
	}
	if d.ReleaseDate != nil {
		c.ReleaseDate = d.ReleaseDate
	}
	if d.Pages != nil {
		c.Pages = d.Pages
	}
}
