package repository

import (
	"context"
	"fmt"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"

	"gorm.io/gorm"
)

type LanguageRepo struct {
	db *gorm.DB
}

func NewLanguageRepo(db *gorm.DB) *LanguageRepo {
	return &LanguageRepo{db: db}
}

func (r *LanguageRepo) GetAll(ctx context.Context, page, limit int) ([]models.Language, int64, error) {
	var list []models.Language
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Language{}).Count(&total).Error; err != nil {
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

func (r *LanguageRepo) GetByID(ctx context.Context, id string) (*models.Language, error) {
	var l models.Language
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LanguageRepo) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	var l models.Language
	if err := r.db.WithContext(ctx).First(&l, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LanguageRepo) Create(ctx context.Context, l *models.Language) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create language: %w", err)
	}
	return nil
}

func (r *LanguageRepo) Update(ctx context.Context, id string, l *models.Language) error {
	l.ID = id
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return fmt.Errorf("update language: %w", err)
	}
	return nil
}

func (r *LanguageRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Language{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete language: %w", err)
	}
	return nil
}
