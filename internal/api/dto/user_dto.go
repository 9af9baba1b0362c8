package dto

import (
	"time"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

// CreateUserDTO used for POST /admin/users (operator-created accounts skip
// email verification)
type CreateUserDTO struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"omitempty,oneof=user admin"`
	Avatar   *string `json:"avatar,omitempty"`
}

// UpdateUserDTO used for PUT /admin/users/:id
type UpdateUserDTO struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
	Avatar *string `json:"avatar,omitempty"`
	Cover  *string `json:"cover,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Coins  *int    `json:"coins,omitempty"`
}

// UserResponse never carries the password hash or the verification code.
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Avatar        *string   `json:"avatar,omitempty"`
	Cover         *string   `json:"cover,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
	Coins         int       `json:"coins"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (d UpdateUserDTO) ApplyTo(u *models.User) {
	if d.Name != nil {
		u.Name = *d.Name
	}
	if d.Role != nil {
		u.Role = *d.Role
	}
	if d.Avatar != nil {
		u.Avatar = d.Avatar
	}
	if d.Cover != nil {
		u.Cover = d.Cover
	}
	if d.Bio != nil {
		u.Bio = d.Bio
	}
	if d.Coins != nil {
		u.Coins = *d.Coins
	}
}

func FromUserModel(u models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		Email:         u.Email,
		Role:          u.Role,
		Avatar:        u.Avatar,
		Cover:         u.Cover,
		Bio:           u.Bio,
		Coins:         u.Coins,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
