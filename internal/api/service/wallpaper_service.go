package service

import (
	"context"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type wallpaperStore interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Wallpaper, int64, error)
	GetByID(ctx context.Context, id string) (*models.Wallpaper, error)
	Create(ctx context.Context, w *models.Wallpaper) error
	Update(ctx context.Context, id string, w *models.Wallpaper) error
	Delete(ctx context.Context, id string) error
	CountImages(ctx context.Context, wallpaperID string) (int64, error)
	GetImages(ctx context.Context, wallpaperID string, page, limit int) ([]models.WallpaperImage, int64, error)
	AddImage(ctx context.Context, img *models.WallpaperImage) error
	DeleteImage(ctx context.Context, wallpaperID, imageID string) error
}

type WallpaperService interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Wallpaper, int64, error)
	GetByID(ctx context.Context, id string) (*models.Wallpaper, error)
	Create(ctx context.Context, in dto.CreateWallpaperDTO) (*models.Wallpaper, error)
	Update(ctx context.Context, id string, in dto.UpdateWallpaperDTO) (*models.Wallpaper, error)
	Delete(ctx context.Context, id string) error

	CountImages(ctx context.Context, wallpaperID string) (int64, error)
	GetImages(ctx context.Context, wallpaperID string, page, limit int) ([]models.WallpaperImage, int64, error)
	AddImage(ctx context.Context, wallpaperID string, in dto.CreateWallpaperImageDTO) (*models.WallpaperImage, error)
	DeleteImage(ctx context.Context, wallpaperID, imageID string) error
}

type wallpaperService struct {
	repo wallpaperStore
}

func NewWallpaperService(r wallpaperStore) WallpaperService {
	return &wallpaperService{repo: r}
}

func (s *wallpaperService) GetAll(ctx context.Context, page, limit int) ([]models.Wallpaper, int64, error) {
	return s.repo.GetAll(ctx, page, limit)
}

func (s *wallpaperService) GetByID(ctx context.Context, id string) (*models.Wallpaper, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *wallpaperService) Create(ctx context.Context, in dto.CreateWallpaperDTO) (*models.Wallpaper, error) {
	w := in.ToModel()
	if err := s.repo.Create(ctx, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *wallpaperService) Update(ctx context.Context, id string, in dto.UpdateWallpaperDTO) (*models.Wallpaper, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.ApplyTo(existing)
	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *wallpaperService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *wallpaperService) CountImages(ctx context.Context, wallpaperID string) (int64, error) {
	return s.repo.CountImages(ctx, wallpaperID)
}

func (s *wallpaperService) GetImages(ctx context.Context, wallpaperID string, page, limit int) ([]models.WallpaperImage, int64, error) {
	// a missing wallpaper should 404, not return an empty page
	if _, err := s.repo.GetByID(ctx, wallpaperID); err != nil {
		return nil, 0, err
	}
	return s.repo.GetImages(ctx, wallpaperID, page, limit)
}

func (s *wallpaperService) AddImage(ctx context.Context, wallpaperID string, in dto.CreateWallpaperImageDTO) (*models.WallpaperImage, error) {
	if _, err := s.repo.GetByID(ctx, wallpaperID); err != nil {
		return nil, err
	}

	img := models.WallpaperImage{WallpaperID: wallpaperID, URL: in.URL}
	if err := s.repo.AddImage(ctx, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *wallpaperService) DeleteImage(ctx context.Context, wallpaperID, imageID string) error {
	return s.repo.DeleteImage(ctx, wallpaperID, imageID)
}
