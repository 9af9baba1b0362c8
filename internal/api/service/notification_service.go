package service

import (
	"context"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type notificationStore interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Notification, int64, error)
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	Create(ctx context.Context, n *models.Notification) error
	Update(ctx context.Context, id string, n *models.Notification) error
	Delete(ctx context.Context, id string) error
}

type NotificationService interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Notification, int64, error)
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	Create(ctx context.Context, in dto.CreateNotificationDTO) (*models.Notification, error)
	Update(ctx context.Context, id string, in dto.UpdateNotificationDTO) (*models.Notification, error)
	Delete(ctx context.Context, id string) error
}

type notificationService struct {
	repo notificationStore
}

func NewNotificationService(r notificationStore) NotificationService {
	return &notificationService{repo: r}
}

func (s *notificationService) GetAll(ctx context.Context, page, limit int) ([]models.Notification, int64, error) {
	return s.repo.GetAll(ctx, page, limit)
}

func (s *notificationService) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *notificationService) Create(ctx context.Context, in dto.CreateNotificationDTO) (*models.Notification, error) {
	n := in.ToModel()
	if err := s.repo.Create(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *notificationService) Update(ctx context.Context, id string, in dto.UpdateNotificationDTO) (*models.Notification, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.ApplyTo(existing)
	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
