package repository

import (
	"context"
	"fmt"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"

	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db: db}
}

func (r *TagRepo) GetAll(ctx context.Context, page, limit int) ([]models.Tag, int64, error) {
	var list []models.Tag
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Order("name asc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *TagRepo) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	var t models.Tag
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagRepo) FindByName(ctx context.Context, name string) (*models.Tag, error) {
	var t models.Tag
	if err := r.db.WithContext(ctx).First(&t, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagRepo) Create(ctx context.Context, t *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

func (r *TagRepo) Update(ctx context.Context, id string, t *models.Tag) error {
	t.ID = id
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

func (r *TagRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Tag{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
