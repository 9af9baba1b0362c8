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
	"github.com/stretchr/testify/require"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/handler"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetAll(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, in dto.CreateUserDTO) (*models.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, in dto.UpdateUserDTO) (*models.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupUserRouter(mockService *MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewUserHandler(mockService, nil)
	h.RegisterRoutes(r.Group("/admin"))
	return r
}

// The SDK's create payload must satisfy the server-side binding as-is,
// username included.
func TestCreateUserAcceptsSDKPayload(t *testing.T) {
	mockService := new(MockUserService)
	created := models.User{
		ID:       "u1",
		Name:     "Ana Souza",
		Username: "ana-souza",
		Email:    "ana@example.com",
		Role:     "admin",
	}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in dto.CreateUserDTO) bool {
		return in.Username == "ana-souza" && in.Email == "ana@example.com"
	})).Return(&created, nil)

	body, err := json.Marshal(client.CreateUser{
		Name:     "Ana Souza",
		Username: "ana-souza",
		Email:    "ana@example.com",
		Password: "s3cret-pass",
		Role:     "admin",
	})
	require.NoError(t, err)

	r := setupUserRouter(mockService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "ana-souza", got.Username)
	mockService.AssertExpectations(t)
}

func TestCreateUserMissingUsernameRejected(t *testing.T) {
	mockService := new(MockUserService)

	r := setupUserRouter(mockService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/users",
		bytes.NewBufferString(`{"name":"Ana","email":"ana@example.com","password":"s3cret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUserDuplicateEmailConflict(t *testing.T) {
	mockService := new(MockUserService)
	mockService.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrEmailInUse)

	r := setupUserRouter(mockService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/users",
		bytes.NewBufferString(`{"name":"Ana","username":"ana-souza","email":"ana@example.com","password":"s3cret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already in use")
}

func TestGetUsersEnvelope(t *testing.T) {
	mockService := new(MockUserService)
	users := []models.User{
		{ID: "u1", Name: "Ana", Username: "ana", Email: "ana@example.com", Role: "admin"},
		{ID: "u2", Name: "Bia", Username: "bia", Email: "bia@example.com", Role: "user"},
	}
	mockService.On("GetAll", mock.Anything, 1, 10).Return(users, int64(2), nil)

	r := setupUserRouter(mockService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users?page=1&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got dto.ListResponse[dto.UserResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Data, 2)
	assert.Equal(t, int64(2), got.Pagination.Total)
	// hashes never leak into the response
	assert.NotContains(t, w.Body.String(), "password")
}

func TestDeleteUserNoContent(t *testing.T) {
	mockService := new(MockUserService)
	mockService.On("Delete", mock.Anything, "u1").Return(nil)

	r := setupUserRouter(mockService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/users/u1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
