package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	Title     string          `gorm:"not null" json:"title"`
	Message   string          `gorm:"not null" json:"message"`
	Type      string          `gorm:"not null" json:"type"` // NEWS, UPDATE, WARNING, ERROR
	Data      json.RawMessage `gorm:"type:jsonb;serializer:json" json:"data,omitempty"`
	Cover     *string         `json:"cover,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}

func (Notification) TableName() string {
	return "notifications"
}
