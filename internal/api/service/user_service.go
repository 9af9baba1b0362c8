package service

import (
	"context"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/middleware/auth"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type userAdminStore interface {
	userStore
	GetAll(ctx context.Context, page, limit int) ([]models.User, int64, error)
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	GetAll(ctx context.Context, page, limit int) ([]models.User, int64, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, in dto.CreateUserDTO) (*models.User, error)
	Update(ctx context.Context, id string, in dto.UpdateUserDTO) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo userAdminStore
}

func NewUserService(r userAdminStore) UserService {
	return &userService{repo: r}
}

func (s *userService) GetAll(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	return s.repo.GetAll(ctx, page, limit)
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create builds an operator-provisioned account. These skip the email
// verification round-trip a self-registration goes through.
func (s *userService) Create(ctx context.Context, in dto.CreateUserDTO) (*models.User, error) {
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailInUse
	}
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrNameInUse
	}

	hashedPassword, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = "user"
	}

	u := models.User{
		Name:          in.Name,
		Username:      in.Username,
		Email:         in.Email,
		Password:      hashedPassword,
		Role:          role,
		Avatar:        in.Avatar,
		EmailVerified: true,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) Update(ctx context.Context, id string, in dto.UpdateUserDTO) (*models.User, error) {
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

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
