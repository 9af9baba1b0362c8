package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/middleware/auth"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/config"
)

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrDuplicateName      = errors.New("name already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidCode        = errors.New("invalid verification code")
)

// Claims carried by every access token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type userStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, id string, u *models.User) error
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string, avatar, cover *string) (*models.User, error)
	VerifyEmail(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (token string, user *models.User, err error)
	Me(ctx context.Context, userID string) (*models.User, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	users          userStore
	logger         *slog.Logger
	jwtSecret      string
	accessTokenTTL time.Duration
}

func NewAuthService(users userStore, cfg *config.Config, logger *slog.Logger) AuthService {
	return &authService{
		users:          users,
		logger:         logger,
		jwtSecret:      cfg.JWTSecret,
		accessTokenTTL: cfg.AccessTokenTTL,
	}
}

// Register creates an unverified account and issues a 6-digit code. The code
// delivery is a mail-provider concern; here it only reaches the log.
func (s *authService) Register(ctx context.Context, name, email, password string, avatar, cover *string) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	}

	username := usernameFromName(name)
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		// collision on the derived handle, disambiguate with a short suffix
		username = fmt.Sprintf("%s-%s", username, uuid.New().String()[:8])
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	code, err := verificationCode()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:       name,
		Username:   username,
		Email:      email,
		Password:   hashedPassword,
		Avatar:     avatar,
		Cover:      cover,
		VerifyCode: &code,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("verification code issued", "email", email, "code", code)
	return user, nil
}

func (s *authService) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return ErrInvalidCode
	}
	if user.EmailVerified {
		return nil
	}
	if user.VerifyCode == nil || *user.VerifyCode != code {
		return ErrInvalidCode
	}

	user.EmailVerified = true
	user.VerifyCode = nil
	return s.users.Update(ctx, user.ID, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// dummy compare keeps the not-found path as slow as the wrong-password path
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return "", nil, ErrEmailNotVerified
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user.ID, user); err != nil {
		s.logger.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	return token, user, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func usernameFromName(name string) string {
	u := strings.ToLower(strings.TrimSpace(name))
	u = strings.ReplaceAll(u, " ", "-")
	if len(u) > 50 {
		u = u[:50]
	}
	if u == "" {
		u = "user"
	}
	return u
}

func verificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
