package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type mangaStore interface {
	GetAll(ctx context.Context, page, limit int, f dto.MangaFilters) ([]models.Manga, int64, error)
	GetByID(ctx context.Context, id string) (*models.Manga, error)
	GetByUUID(ctx context.Context, mangaUUID string) (*models.Manga, error)
	Create(ctx context.Context, m *models.Manga) error
	Update(ctx context.Context, id string, m *models.Manga) error
	Delete(ctx context.Context, id string) error
	ReplaceCategories(ctx context.Context, mangaID string, categoryIDs []string) error
	ReplaceLanguages(ctx context.Context, mangaID string, languageIDs []string) error
	ReplaceTranslations(ctx context.Context, mangaID string, translations []models.MangaTranslation) error
}

type MangaService interface {
	GetAll(ctx context.Context, page, limit int, f dto.MangaFilters) ([]models.Manga, int64, error)
	GetByID(ctx context.Context, id string) (*models.Manga, error)
	GetByUUID(ctx context.Context, mangaUUID string) (*models.Manga, error)
	Create(ctx context.Context, in dto.CreateMangaDTO) (*models.Manga, error)
	Update(ctx context.Context, id string, in dto.UpdateMangaDTO) (*models.Manga, error)
	Delete(ctx context.Context, id string) error
}

type mangaService struct {
	repo mangaStore
}

func NewMangaService(r mangaStore) MangaService {
	return &mangaService{repo: r}
}

func (s *mangaService) GetAll(ctx context.Context, page, limit int, f dto.MangaFilters) ([]models.Manga, int64, error) {
	return s.repo.GetAll(ctx, page, limit, f)
}

func (s *mangaService) GetByID(ctx context.Context, id string) (*models.Manga, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *mangaService) GetByUUID(ctx context.Context, mangaUUID string) (*models.Manga, error) {
	return s.repo.GetByUUID(ctx, mangaUUID)
}

func (s *mangaService) Create(ctx context.Context, in dto.CreateMangaDTO) (*models.Manga, error) {
	if len(in.Translations) == 0 {
		return nil, errors.New("at least one translation is required")
	}
	for _, t := range in.Translations {
		if strings.TrimSpace(t.Name) == "" {
			return nil, errors.New("translation name is required")
		}
	}

	m := in.ToModel()
	if strings.TrimSpace(m.MangaUUID) == "" {
		m.MangaUUID = uuid.New().String()
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, err
	}

	if len(in.CategoryIDs) > 0 {
		if err := s.repo.ReplaceCategories(ctx, m.ID, in.CategoryIDs); err != nil {
			return nil, err
		}
	}
	if len(in.LanguageIDs) > 0 {
		if err := s.repo.ReplaceLanguages(ctx, m.ID, in.LanguageIDs); err != nil {
			return nil, err
		}
	}

	// reload so the response carries the same associated shape a list does
	return s.repo.GetByID(ctx, m.ID)
}

func (s *mangaService) Update(ctx context.Context, id string, in dto.UpdateMangaDTO) (*models.Manga, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.ApplyTo(existing)
	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	if in.CategoryIDs != nil {
		if err := s.repo.ReplaceCategories(ctx, id, in.CategoryIDs); err != nil {
			return nil, err
		}
	}
	if in.LanguageIDs != nil {
		if err := s.repo.ReplaceLanguages(ctx, id, in.LanguageIDs); err != nil {
			return nil, err
		}
	}
	if in.Translations != nil {
		translations := make([]models.MangaTranslation, 0, len(in.Translations))
		for _, t := range in.Translations {
			translations = append(translations, models.MangaTranslation{
				Language:    t.Language,
				Name:        t.Name,
				Description: t.Description,
			})
		}
		if err := s.repo.ReplaceTranslations(ctx, id, translations); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}

func (s *mangaService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
