package service

import (
	"context"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type playlistStore interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Playlist, int64, error)
	GetByID(ctx context.Context, id string) (*models.Playlist, error)
	Create(ctx context.Context, p *models.Playlist) error
	Update(ctx context.Context, id string, p *models.Playlist) error
	Delete(ctx context.Context, id string) error
	ReplaceTags(ctx context.Context, playlistID string, tagIDs []string) error
}

type PlaylistService interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Playlist, int64, error)
	GetByID(ctx context.Context, id string) (*models.Playlist, error)
	Create(ctx context.Context, in dto.CreatePlaylistDTO) (*models.Playlist, error)
	Update(ctx context.Context, id string, in dto.UpdatePlaylistDTO) (*models.Playlist, error)
	Delete(ctx context.Context, id string) error
}

type playlistService struct {
	repo playlistStore
}

func NewPlaylistService(r playlistStore) PlaylistService {
	return &playlistService{repo: r}
}

func (s *playlistService) GetAll(ctx context.Context, page, limit int) ([]models.Playlist, int64, error) {
	return s.repo.GetAll(ctx, page, limit)
}

func (s *playlistService) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *playlistService) Create(ctx context.Context, in dto.CreatePlaylistDTO) (*models.Playlist, error) {
	p := in.ToModel()
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}

	if len(in.TagIDs) > 0 {
		if err := s.repo.ReplaceTags(ctx, p.ID, in.TagIDs); err != nil {
			return nil, err
		}
	}

	// reload so create responses carry tags exactly like list responses do
	return s.repo.GetByID(ctx, p.ID)
}

func (s *playlistService) Update(ctx context.Context, id string, in dto.UpdatePlaylistDTO) (*models.Playlist, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.ApplyTo(existing)
	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	if in.TagIDs != nil {
		if err := s.repo.ReplaceTags(ctx, id, in.TagIDs); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}

func (s *playlistService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
