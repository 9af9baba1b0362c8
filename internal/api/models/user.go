package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         string  `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	Username   string  `gorm:"uniqueIndex;not null" json:"username"`
	Email      string  `gorm:"uniqueIndex;not null" json:"email"`
	Password   string  `gorm:"column:password_hash;not null" json:"-"` // Not shown in JSON
	Role       string  `gorm:"default:'user';not null" json:"role"`    // only 2 roles: "user", "admin"
	Avatar     *string `json:"avatar,omitempty"`
	Cover      *string `json:"cover,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Coins      int     `gorm:"default:0" json:"coins"`
	VerifyCode *string `gorm:"size:6" json:"-"`

	EmailVerified bool       `gorm:"default:false" json:"emailVerified"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
