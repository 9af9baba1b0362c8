package service

import (
	"context"
	"strings"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type categoryStore interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Category, int64, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, id string, c *models.Category) error
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Category, int64, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, in dto.CreateCategoryDTO) (*models.Category, error)
	Update(ctx context.Context, id string, in dto.UpdateCategoryDTO) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo categoryStore
}

func NewCategoryService(r categoryStore) CategoryService {
	return &categoryService{repo: r}
}

func (s *categoryService) GetAll(ctx context.Context, page, limit int) ([]models.Category, int64, error) {
	return s.repo.GetAll(ctx, page, limit)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, in dto.CreateCategoryDTO) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, ErrDuplicateName
	}

	c := models.Category{Name: name, Description: in.Description}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *categoryService) Update(ctx context.Context, id string, in dto.UpdateCategoryDTO) (*models.Category, error) {
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
	if in.Description != nil {
		existing.Description = *in.Description
	}

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
