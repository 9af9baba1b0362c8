package repository

import (
	"context"
	"fmt"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"

	"gorm.io/gorm"
)

type MangaRepo struct {
	db *gorm.DB
}

func NewMangaRepo(db *gorm.DB) *MangaRepo {
	return &MangaRepo{db: db}
}

// filtered builds the shared WHERE chain so count and fetch see the same set.
func (r *MangaRepo) filtered(ctx context.Context, f dto.MangaFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Manga{})

	if f.Search != "" {
		sub := r.db.Model(&models.MangaTranslation{}).
			Select("manga_id").
			Where("name ILIKE ?", "%"+f.Search+"%")
		q = q.Where("mangas.id IN (?)", sub)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if len(f.CategoryIDs) > 0 {
		sub := r.db.Table("manga_categories").
			Select("manga_id").
			Where("category_id IN ?", f.CategoryIDs)
		q = q.Where("mangas.id IN (?)", sub)
	}
	if f.Language != "" {
		langs := r.db.Model(&models.Language{}).Select("id").Where("code = ?", f.Language)
		sub := r.db.Table("manga_languages").Select("manga_id").Where("language_id IN (?)", langs)
		q = q.Where("mangas.id IN (?)", sub)
	}
	return q
}

func (r *MangaRepo) GetAll(ctx context.Context, page, limit int, f dto.MangaFilters) ([]models.Manga, int64, error) {
	var list []models.Manga
	var total int64

	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	if err := r.filtered(ctx, f).
		Preload("Categories").
		Preload("Languages").
		Preload("Translations").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *MangaRepo) GetByID(ctx context.Context, id string) (*models.Manga, error) {
	var m models.Manga
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Languages").
		Preload("Translations").
		First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MangaRepo) GetByUUID(ctx context.Context, mangaUUID string) (*models.Manga, error) {
	var m models.Manga
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Languages").
		Preload("Translations").
		First(&m, "manga_uuid = ?", mangaUUID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MangaRepo) Create(ctx context.Context, m *models.Manga) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create manga: %w", err)
	}
	return nil
}

func (r *MangaRepo) Update(ctx context.Context, id string, m *models.Manga) error {
	m.ID = id
	if err := r.db.WithContext(ctx).Omit("Categories", "Languages", "Translations").Save(m).Error; err != nil {
		return fmt.Errorf("update manga: %w", err)
	}
	return nil
}

func (r *MangaRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Manga{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete manga: %w", err)
	}
	return nil
}

func (r *MangaRepo) ReplaceCategories(ctx context.Context, mangaID string, categoryIDs []string) error {
	tx := r.db.WithContext(ctx)
	var m models.Manga
	if err := tx.First(&m, "id = ?", mangaID).Error; err != nil {
		return fmt.Errorf("manga not found: %w", err)
	}
	categories := make([]models.Category, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		categories = append(categories, models.Category{ID: id})
	}
	if err := tx.Model(&m).Association("Categories").Replace(&categories); err != nil {
		return fmt.Errorf("replace categories: %w", err)
	}
	return nil
}

func (r *MangaRepo) ReplaceLanguages(ctx context.Context, mangaID string, languageIDs []string) error {
	tx := r.db.WithContext(ctx)
	var m models.Manga
	if err := tx.First(&m, "id = ?", mangaID).Error; err != nil {
		return fmt.Errorf("manga not found: %w", err)
	}
	languages := make([]models.Language, 0, len(languageIDs))
	for _, id := range languageIDs {
		languages = append(languages, models.Language{ID: id})
	}
	if err := tx.Model(&m).Association("Languages").Replace(&languages); err != nil {
		return fmt.Errorf("replace languages: %w", err)
	}
	return nil
}

// ReplaceTranslations swaps the whole translation set in one transaction so a
// partial failure never leaves a manga half-translated.
func (r *MangaRepo) ReplaceTranslations(ctx context.Context, mangaID string, translations []models.MangaTranslation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("manga_id = ?", mangaID).Delete(&models.MangaTranslation{}).Error; err != nil {
			return fmt.Errorf("clear translations: %w", err)
		}
		for i := range translations {
			translations[i].ID = ""
			translations[i].MangaID = mangaID
		}
		if len(translations) == 0 {
			return nil
		}
		if err := tx.Create(&translations).Error; err != nil {
			return fmt.Errorf("create translations: %w", err)
		}
		return nil
	})
}
