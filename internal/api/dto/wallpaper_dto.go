package dto

import (
	"time"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

// CreateWallpaperDTO used for POST /admin/wallpapers
type CreateWallpaperDTO struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Cover string `json:"cover"`
}

// UpdateWallpaperDTO used for PUT /admin/wallpapers/:id
type UpdateWallpaperDTO struct {
	Name  *string `json:"name,omitempty"`
	Cover *string `json:"cover,omitempty"`
}

// CreateWallpaperImageDTO used for POST /admin/wallpapers/:id/images
type CreateWallpaperImageDTO struct {
	URL string `json:"url" binding:"required,url"`
}

type WallpaperResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Cover       string                  `json:"cover"`
	TotalImages int64                   `json:"totalImages"`
	Images      []models.WallpaperImage `json:"images,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func (d CreateWallpaperDTO) ToModel() models.Wallpaper {
	return models.Wallpaper{
		Name:  d.Name,
		Cover: d.Cover,
	}
}

func (d UpdateWallpaperDTO) ApplyTo(w *models.Wallpaper) {
	if d.Name != nil {
		w.Name = *d.Name
	}
	if d.Cover != nil {
		w.Cover = *d.Cover
	}
}

func FromWallpaperModel(w models.Wallpaper, totalImages int64) WallpaperResponse {
	return WallpaperResponse{
		ID:          w.ID,
		Name:        w.Name,
		Cover:       w.Cover,
		TotalImages: totalImages,
		Images:      w.Images,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
