package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/middleware/auth"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/config"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserStore) Update(ctx context.Context, id string, u *models.User) error {
	args := m.Called(ctx, id, u)
	return args.Error(0)
}

func testAuthService(store *mockUserStore) AuthService {
	cfg := &config.Config{
		JWTSecret:      "0123456789abcdef0123456789abcdef",
		AccessTokenTTL: time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuthService(store, cfg, logger)
}

func TestRegisterCreatesUnverifiedUser(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	store.On("FindByEmail", mock.Anything, "ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	store.On("FindByUsername", mock.Anything, "ana-souza").Return(nil, gorm.ErrRecordNotFound)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), "Ana Souza", "ana@example.com", "hunter22", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "ana-souza", user.Username)
	assert.False(t, user.EmailVerified)
	assert.NotNil(t, user.VerifyCode)
	assert.Len(t, *user.VerifyCode, 6)
	// stored as a hash, never the raw password
	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, auth.VerifyPassword(user.Password, "hunter22"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	store.On("FindByEmail", mock.Anything, "ana@example.com").Return(&models.User{ID: "u1"}, nil)

	_, err := svc.Register(context.Background(), "Ana", "ana@example.com", "hunter22", nil, nil)
	assert.ErrorIs(t, err, ErrEmailInUse)
	store.AssertNotCalled(t, "Create")
}

func TestRegisterUsernameCollision(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	store.On("FindByEmail", mock.Anything, "other@example.com").Return(nil, gorm.ErrRecordNotFound)
	store.On("FindByUsername", mock.Anything, "ana").Return(&models.User{ID: "u1"}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), "Ana", "other@example.com", "hunter22", nil, nil)
	assert.NoError(t, err)
	assert.NotEqual(t, "ana", user.Username)
	assert.Contains(t, user.Username, "ana-")
}

func TestVerifyEmail(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	code := "123456"
	user := &models.User{ID: "u1", Email: "ana@example.com", VerifyCode: &code}
	store.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	store.On("Update", mock.Anything, "u1", mock.Anything).Return(nil)

	assert.NoError(t, svc.VerifyEmail(context.Background(), "ana@example.com", "123456"))
	assert.True(t, user.EmailVerified)
	assert.Nil(t, user.VerifyCode)
}

func TestVerifyEmailWrongCode(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	code := "123456"
	user := &models.User{ID: "u1", Email: "ana@example.com", VerifyCode: &code}
	store.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	err := svc.VerifyEmail(context.Background(), "ana@example.com", "654321")
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.False(t, user.EmailVerified)
}

func TestLoginRoundTrip(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	hash, err := auth.HashPassword("hunter22")
	assert.NoError(t, err)
	user := &models.User{ID: "u1", Email: "ana@example.com", Role: "admin", Password: hash, EmailVerified: true}

	store.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	store.On("Update", mock.Anything, "u1", mock.Anything).Return(nil)

	token, got, err := svc.Login(context.Background(), "ana@example.com", "hunter22")
	assert.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.NotNil(t, got.LastLogin)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	hash, _ := auth.HashPassword("hunter22")
	user := &models.User{ID: "u1", Email: "ana@example.com", Password: hash, EmailVerified: true}
	store.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	_, _, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	store.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnverified(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	hash, _ := auth.HashPassword("hunter22")
	user := &models.User{ID: "u1", Email: "ana@example.com", Password: hash}
	store.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	_, _, err := svc.Login(context.Background(), "ana@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestValidateTokenGarbage(t *testing.T) {
	store := new(mockUserStore)
	svc := testAuthService(store)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
