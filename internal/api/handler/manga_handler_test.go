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
	"gorm.io/gorm"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/handler"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

// --- MOCK SERVICE ---

type MockMangaService struct {
	mock.Mock
}

func (m *MockMangaService) GetAll(ctx context.Context, page, limit int, f dto.MangaFilters) ([]models.Manga, int64, error) {
	args := m.Called(ctx, page, limit, f)
	return args.Get(0).([]models.Manga), args.Get(1).(int64), args.Error(2)
}

func (m *MockMangaService) GetByID(ctx context.Context, id string) (*models.Manga, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Manga), args.Error(1)
}

func (m *MockMangaService) GetByUUID(ctx context.Context, mangaUUID string) (*models.Manga, error) {
	args := m.Called(ctx, mangaUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Manga), args.Error(1)
}

func (m *MockMangaService) Create(ctx context.Context, in dto.CreateMangaDTO) (*models.Manga, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Manga), args.Error(1)
}

func (m *MockMangaService) Update(ctx context.Context, id string, in dto.UpdateMangaDTO) (*models.Manga, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Manga), args.Error(1)
}

func (m *MockMangaService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- SETUP ---

func setupMangaRouter(mockService *MockMangaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewMangaHandler(mockService, nil)

	h.RegisterRoutes(r.Group("/"), r.Group("/admin"))
	return r
}

func sampleManga(id string) models.Manga {
	return models.Manga{
		ID:        id,
		MangaUUID: "uuid-" + id,
		Cover:     "https://cdn.example.com/cover.jpg",
		Status:    "ongoing",
		Type:      "manga",
		Translations: []models.MangaTranslation{
			{Language: "en", Name: "One Piece", Description: "Pirates."},
			{Language: "pt-br", Name: "One Piece BR", Description: "Piratas."},
		},
	}
}

// --- TESTS ---

func TestGetMangasEnvelope(t *testing.T) {
	mockService := new(MockMangaService)
	router := setupMangaRouter(mockService)

	mangas := []models.Manga{sampleManga("m1"), sampleManga("m2")}
	mockService.On("GetAll", mock.Anything, 2, 5, mock.Anything).Return(mangas, int64(12), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/mangas?page=2&limit=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []dto.MangaResponse `json:"data"`
		Pagination dto.Pagination      `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(12), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.Next)
	assert.True(t, resp.Pagination.Prev)
	// preferred translation fills the title
	assert.Equal(t, "One Piece", resp.Data[0].Title)
	mockService.AssertExpectations(t)
}

func TestGetMangasClampsLimit(t *testing.T) {
	mockService := new(MockMangaService)
	router := setupMangaRouter(mockService)

	mockService.On("GetAll", mock.Anything, 1, 100, mock.Anything).Return([]models.Manga{}, int64(0), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/mangas?limit=9999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestGetMangasPreferredLanguage(t *testing.T) {
	mockService := new(MockMangaService)
	router := setupMangaRouter(mockService)

	mockService.On("GetAll", mock.Anything, 1, 10, mock.Anything).
		Return([]models.Manga{sampleManga("m1")}, int64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/mangas?lang=pt-br", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []dto.MangaResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "One Piece BR", resp.Data[0].Title)
}

func TestGetMangaNotFound(t *testing.T) {
	mockService := new(MockMangaService)
	router := setupMangaRouter(mockService)

	mockService.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/mangas/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetMangaByUUID(t *testing.T) {
	mockService := new(MockMangaService)
	router := setupMangaRouter(mockService)

	m := sampleManga("m1")
	mockService.On("GetByUUID", mock.Anything, "uuid-m1").Return(&m, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/mangas/uuid/uuid-m1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MangaResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "uuid-m1", resp.MangaUUID)
}

func TestCreateManga(t *testing.T) {
	mockService := new(MockMangaService)
	router := setupMangaRouter(mockService)

	created := sampleManga("new")
	mockService.On("Create", mock.Anything, mock.Anything).Return(&created, nil)

	body, _ := json.Marshal(dto.CreateMangaDTO{
		Cover:  "https://cdn.example.com/c.jpg",
		Status: "ongoing",
		Type:   "manga",
		Translations: []dto.TranslationInput{
			{Language: "en", Name: "One Piece"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/mangas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestCreateMangaRejectsBadStatus(t *testing.T) {
	mockService := new(MockMangaService)
	router := setupMangaRouter(mockService)

	body := []byte(`{"cover":"x","status":"cancelled","type":"manga","translations":[{"language":"en","name":"X"}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/mangas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestUpdateMangaUsesPatch(t *testing.T) {
	mockService := new(MockMangaService)
	router := setupMangaRouter(mockService)

	updated := sampleManga("m1")
	updated.Status = "completed"
	mockService.On("Update", mock.Anything, "m1", mock.Anything).Return(&updated, nil)

	body := []byte(`{"status":"completed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/mangas/m1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MangaResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestDeleteManga(t *testing.T) {
	mockService := new(MockMangaService)
	router := setupMangaRouter(mockService)

	mockService.On("Delete", mock.Anything, "m1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/mangas/m1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	mockService.AssertExpectations(t)
}
