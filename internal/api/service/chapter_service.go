package service

import (
	"context"
	"errors"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type chapterStore interface {
	GetAll(ctx context.Context, page, limit int, mangaID string) ([]models.Chapter, int64, error)
	GetByID(ctx context.Context, id string) (*models.Chapter, error)
	Create(ctx context.Context, c *models.Chapter) error
	Update(ctx context.Context, id string, c *models.Chapter) error
	Delete(ctx context.Context, id string) error
}

type chapterMangaStore interface {
	GetByID(ctx context.Context, id string) (*models.Manga, error)
}

type ChapterService interface {
	GetAll(ctx context.Context, page, limit int, mangaID string) ([]models.Chapter, int64, error)
	GetByID(ctx context.Context, id string) (*models.Chapter, error)
	Create(ctx context.Context, in dto.CreateChapterDTO) (*models.Chapter, error)
	Update(ctx context.Context, id string, in dto.UpdateChapterDTO) (*models.Chapter, error)
	Delete(ctx context.Context, id string) error
}

type chapterService struct {
	repo   chapterStore
	mangas chapterMangaStore
}

func NewChapterService(r chapterStore, mangas chapterMangaStore) ChapterService {
	return &chapterService{repo: r, mangas: mangas}
}

func (s *chapterService) GetAll(ctx context.Context, page, limit int, mangaID string) ([]models.Chapter, int64, error) {
	return s.repo.GetAll(ctx, page, limit, mangaID)
}

func (s *chapterService) GetByID(ctx context.Context, id string) (*models.Chapter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *chapterService) Create(ctx context.Context, in dto.CreateChapterDTO) (*models.Chapter, error) {
	if in.ChapterNumber <= 0 {
		return nil, errors.New("chapterNumber must be positive")
	}
	// orphan chapters are unreadable in the dashboard, reject them up front
	if _, err := s.mangas.GetByID(ctx, in.MangaID); err != nil {
		return nil, errors.New("manga not found")
	}

	c := in.ToModel()
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *chapterService) Update(ctx context.Context, id string, in dto.UpdateChapterDTO) (*models.Chapter, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ChapterNumber != nil && *in.ChapterNumber <= 0 {
		return nil, errors.New("chapterNumber must be positive")
	}
	in.ApplyTo(existing)

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *chapterService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
