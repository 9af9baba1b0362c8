package repository

import (
	"context"
	"fmt"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"

	"gorm.io/gorm"
)

type ChapterRepo struct {
	db *gorm.DB
}

func NewChapterRepo(db *gorm.DB) *ChapterRepo {
	return &ChapterRepo{db: db}
}

func (r *ChapterRepo) GetAll(ctx context.Context, page, limit int, mangaID string) ([]models.Chapter, int64, error) {
	var list []models.Chapter
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Chapter{})
	if mangaID != "" {
		q = q.Where("manga_id = ?", mangaID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	if err := q.
		Order("chapter_number desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *ChapterRepo) GetByID(ctx context.Context, id string) (*models.Chapter, error) {
	var c models.Chapter
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChapterRepo) Create(ctx context.Context, c *models.Chapter) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create chapter: %w", err)
	}
	return nil
}

func (r *ChapterRepo) Update(ctx context.Context, id string, c *models.Chapter) error {
	c.ID = id
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update chapter: %w", err)
	}
	return nil
}

func (r *ChapterRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Chapter{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete chapter: %w", err)
	}
	return nil
}
