package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/handler"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string, avatar, cover *string) (*models.User, error) {
	args := m.Called(ctx, name, email, password, avatar, cover)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func passthroughAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func noopMiddleware(c *gin.Context) { c.Next() }

func setupAuthRouter(mockService *MockAuthService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewAuthHandler(mockService)
	h.RegisterRoutes(r, noopMiddleware, passthroughAuth(userID))
	return r
}

func TestLoginSuccess(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService, "")

	user := &models.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: "admin"}
	mockService.On("Login", mock.Anything, "ana@example.com", "hunter22").Return("jwt-token", user, nil)

	body := []byte(`{"email":"ana@example.com","password":"hunter22"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "admin", resp.User.Role)
	// the password hash must never leak
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginInvalidCredentials(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService, "")

	mockService.On("Login", mock.Anything, "ana@example.com", "wrong").
		Return("", nil, service.ErrInvalidCredentials)

	body := []byte(`{"email":"ana@example.com","password":"wrong"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnverifiedEmail(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService, "")

	mockService.On("Login", mock.Anything, "new@example.com", "hunter22").
		Return("", nil, service.ErrEmailNotVerified)

	body := []byte(`{"email":"new@example.com","password":"hunter22"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterConflict(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService, "")

	mockService.On("Register", mock.Anything, "Ana", "ana@example.com", "hunter22", mock.Anything, mock.Anything).
		Return(nil, service.ErrEmailInUse)

	body := []byte(`{"name":"Ana","email":"ana@example.com","password":"hunter22"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestVerifyEmailBadCode(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService, "")

	mockService.On("VerifyEmail", mock.Anything, "ana@example.com", "000000").
		Return(service.ErrInvalidCode)

	body := []byte(`{"email":"ana@example.com","code":"000000"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/verify-email", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService, "u1")

	user := &models.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: "admin"}
	mockService.On("Me", mock.Anything, "u1").Return(user, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.com")
}
