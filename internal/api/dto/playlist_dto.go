package dto

import (
	"time"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

// CreatePlaylistDTO used for POST /admin/playlists
type CreatePlaylistDTO struct {
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	Cover       string   `json:"cover"`
	Link        string   `json:"link" binding:"omitempty,url"`
	Description string   `json:"description"`
	TagIDs      []string `json:"tags"`
}

// UpdatePlaylistDTO used for PUT /admin/playlists/:id
type UpdatePlaylistDTO struct {
	Name        *string  `json:"name,omitempty"`
	Cover       *string  `json:"cover,omitempty"`
	Link        *string  `json:"link,omitempty" binding:"omitempty,url"`
	Description *string  `json:"description,omitempty"`
	TagIDs      []string `json:"tags,omitempty"`
}

// PlaylistTagRow is the join-row wire shape the platform API has always used
// for playlist tags: an array of {"tag": {...}} objects, not flat tags.
// Dashboard clients flatten it; changing it here would break them.
type PlaylistTagRow struct {
	Tag models.Tag `json:"tag"`
}

type PlaylistResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Cover       string           `json:"cover"`
	Link        string           `json:"link"`
	Description string           `json:"description"`
	Tags        []PlaylistTagRow `json:"tags"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func (d CreatePlaylistDTO) ToModel() models.Playlist {
	return models.Playlist{
		Name:        d.Name,
		Cover:       d.Cover,
		Link:        d.Link,
		Description: d.Description,
	}
}

func (d UpdatePlaylistDTO) ApplyTo(p *models.Playlist) {
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Cover != nil {
		p.Cover = *d.Cover
	}
	if d.Link != nil {
		p.Link = *d.Link
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
}

func FromPlaylistModel(p models.Playlist) PlaylistResponse {
	rows := make([]PlaylistTagRow, 0, len(p.Tags))
	for _, t := range p.Tags {
		rows = append(rows, PlaylistTagRow{Tag: t})
	}
	return PlaylistResponse{
		ID:          p.ID,
		Name:        p.Name,
		Cover:       p.Cover,
		Link:        p.Link,
		Description: p.Description,
		Tags:        rows,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
