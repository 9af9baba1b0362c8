package repository

import (
	"context"
	"fmt"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"

	"gorm.io/gorm"
)

type WallpaperRepo struct {
	db *gorm.DB
}

func NewWallpaperRepo(db *gorm.DB) *WallpaperRepo {
	return &WallpaperRepo{db: db}
}

func (r *WallpaperRepo) GetAll(ctx context.Context, page, limit int) ([]models.Wallpaper, int64, error) {
	var list []models.Wallpaper
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Wallpaper{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *WallpaperRepo) GetByID(ctx context.Context, id string) (*models.Wallpaper, error) {
	var w models.Wallpaper
	if err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WallpaperRepo) Create(ctx context.Context, w *models.Wallpaper) error {
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return fmt.Errorf("create wallpaper: %w", err)
	}
	return nil
}

func (r *WallpaperRepo) Update(ctx context.Context, id string, w *models.Wallpaper) error {
	w.ID = id
	if err := r.db.WithContext(ctx).Omit("Images").Save(w).Error; err != nil {
		return fmt.Errorf("update wallpaper: %w", err)
	}
	return nil
}

func (r *WallpaperRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Wallpaper{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete wallpaper: %w", err)
	}
	return nil
}

func (r *WallpaperRepo) CountImages(ctx context.Context, wallpaperID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.WallpaperImage{}).
		Where("wallpaper_id = ?", wallpaperID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetImages pages through one wallpaper's images, same envelope as any list.
func (r *WallpaperRepo) GetImages(ctx context.Context, wallpaperID string, page, limit int) ([]models.WallpaperImage, int64, error) {
	var list []models.WallpaperImage

	total, err := r.CountImages(ctx, wallpaperID)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Where("wallpaper_id = ?", wallpaperID).
		Order("id asc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *WallpaperRepo) AddImage(ctx context.Context, img *models.WallpaperImage) error {
	if err := r.db.WithContext(ctx).Create(img).Error; err != nil {
		return fmt.Errorf("add wallpaper image: %w", err)
	}
	return nil
}

func (r *WallpaperRepo) DeleteImage(ctx context.Context, wallpaperID, imageID string) error {
	res := r.db.WithContext(ctx).
		Where("wallpaper_id = ?", wallpaperID).
		Delete(&models.WallpaperImage{}, "id = ?", imageID)
	if res.Error != nil {
		return fmt.Errorf("delete wallpaper image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
