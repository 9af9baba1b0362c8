package service

import (
	"context"
	"strings"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type tagStore interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Tag, int64, error)
	GetByID(ctx context.Context, id string) (*models.Tag, error)
	FindByName(ctx context.Context, name string) (*models.Tag, error)
	Create(ctx context.Context, t *models.Tag) error
	Update(ctx context.Context, id string, t *models.Tag) error
	Delete(ctx context.Context, id string) error
}

type TagService interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Tag, int64, error)
	GetByID(ctx context.Context, id string) (*models.Tag, error)
	Create(ctx context.Context, in dto.CreateTagDTO) (*models.Tag, error)
	Update(ctx context.Context, id string, in dto.UpdateTagDTO) (*models.Tag, error)
	Delete(ctx context.Context, id string) error
}

type tagService struct {
	repo tagStore
}

func NewTagService(r tagStore) TagService {
	return &tagService{repo: r}
}

func (s *tagService) GetAll(ctx context.Context, page, limit int) ([]models.Tag, int64, error) {
	return s.repo.GetAll(ctx, page, limit)
}

func (s *tagService) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tagService) Create(ctx context.Context, in dto.CreateTagDTO) (*models.Tag, error) {
	name := strings.TrimSpace(in.Name)
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, ErrDuplicateName
	}

	t := models.Tag{Name: name, Color: in.Color}
	if err := s.repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *tagService) Update(ctx context.Context, id string, in dto.UpdateTagDTO) (*models.Tag, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if other, err := s.repo.FindByName(ctx, name); err == nil && other.ID != id {
			return nil, ErrDuplicateName
		}
		existing.Name = name
	}
	if in.Color != nil {
		existing.Color = in.Color
	}

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *tagService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
