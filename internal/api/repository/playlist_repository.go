package repository

import (
	"context"
	"fmt"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"

	"gorm.io/gorm"
)

type PlaylistRepo struct {
	db *gorm.DB
}

func NewPlaylistRepo(db *gorm.DB) *PlaylistRepo {
	return &PlaylistRepo{db: db}
}

func (r *PlaylistRepo) GetAll(ctx context.Context, page, limit int) ([]models.Playlist, int64, error) {
	var list []models.Playlist
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Playlist{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *PlaylistRepo) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	var p models.Playlist
	if err := r.db.WithContext(ctx).Preload("Tags").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlaylistRepo) Create(ctx context.Context, p *models.Playlist) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create playlist: %w", err)
	}
	return nil
}

func (r *PlaylistRepo) Update(ctx context.Context, id string, p *models.Playlist) error {
	p.ID = id
	if err := r.db.WithContext(ctx).Omit("Tags").Save(p).Error; err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}
	return nil
}

func (r *PlaylistRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Playlist{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	return nil
}

func (r *PlaylistRepo) ReplaceTags(ctx context.Context, playlistID string, tagIDs []string) error {
	tx := r.db.WithContext(ctx)
	var p models.Playlist
	if err := tx.First(&p, "id = ?", playlistID).Error; err != nil {
		return fmt.Errorf("playlist not found: %w", err)
	}
	tags := make([]models.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, models.Tag{ID: id})
	}
	if err := tx.Model(&p).Association("Tags").Replace(&tags); err != nil {
		return fmt.Errorf("replace tags: %w", err)
	}
	return nil
}
