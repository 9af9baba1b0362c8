package dto

import (
	"encoding/json"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

// CreateNotificationDTO used for POST /admin/notifications
type CreateNotificationDTO struct {
	Title   string          `json:"title" binding:"required"`
	Message string          `json:"message" binding:"required"`
	Type    string          `json:"type" binding:"required,oneof=NEWS UPDATE WARNING ERROR"`
	Data    json.RawMessage `json:"data,omitempty"`
	Cover   *string         `json:"cover,omitempty"`
}

// UpdateNotificationDTO used for PUT /admin/notifications/:id
type UpdateNotificationDTO struct {
	Title   *string         `json:"title,omitempty"`
	Message *string         `json:"message,omitempty"`
	Type    *string         `json:"type,omitempty" binding:"omitempty,oneof=NEWS UPDATE WARNING ERROR"`
	Data    json.RawMessage `json:"data,omitempty"`
	Cover   *string         `json:"cover,omitempty"`
}

func (d CreateNotificationDTO) ToModel() models.Notification {
	return models.Notification{
		Title:   d.Title,
		Message: d.Message,
		Type:    d.Type,
		Data:    d.Data,
		Cover:   d.Cover,
	}
}

func (d UpdateNotificationDTO) ApplyTo(n *models.Notification) {
	if d.Title != nil {
		n.Title = *d.Title
	}
	if d.Message != nil {
		n.Message = *d.Message
	}
	if d.Type != nil {
		n.Type = *d.Type
	}
	if d.Data != nil {
		n.Data = d.Data
	}
	if d.Cover != nil {
		n.Cover = d.Cover
	}
}
