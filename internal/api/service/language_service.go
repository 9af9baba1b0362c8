package service

import (
	"context"
	"strings"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type languageStore interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Language, int64, error)
	GetByID(ctx context.Context, id string) (*models.Language, error)
	FindByCode(ctx context.Context, code string) (*models.Language, error)
	Create(ctx context.Context, l *models.Language) error
	Update(ctx context.Context, id string, l *models.Language) error
	Delete(ctx context.Context, id string) error
}

type LanguageService interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Language, int64, error)
	GetByID(ctx context.Context, id string) (*models.Language, error)
	Create(ctx context.Context, in dto.CreateLanguageDTO) (*models.Language, error)
	Update(ctx context.Context, id string, in dto.UpdateLanguageDTO) (*models.Language, error)
	Delete(ctx context.Context, id string) error
}

type languageService struct {
	repo languageStore
}

func NewLanguageService(r languageStore) LanguageService {
	return &languageService{repo: r}
}

func (s *languageService) GetAll(ctx context.Context, page, limit int) ([]models.Language, int64, error) {
	return s.repo.GetAll(ctx, page, limit)
}

func (s *languageService) GetByID(ctx context.Context, id string) (*models.Language, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *languageService) Create(ctx context.Context, in dto.CreateLanguageDTO) (*models.Language, error) {
	code := strings.TrimSpace(in.Code)
	if _, err := s.repo.FindByCode(ctx, code); err == nil {
		return nil, ErrDuplicateName
	}

	l := models.Language{Name: strings.TrimSpace(in.Name), Code: code}
	if err := s.repo.Create(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *languageService) Update(ctx context.Context, id string, in dto.UpdateLanguageDTO) (*models.Language, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Code != nil {
		code := strings.TrimSpace(*in.Code)
		if other, err := s.repo.FindByCode(ctx, code); err == nil && other.ID != id {
			return nil, ErrDuplicateName
		}
		existing.Code = code
	}
	if in.Name != nil {
		existing.Name = strings.TrimSpace(*in.Name)
	}

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *languageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
