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

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/handler"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) GetAll(ctx context.Context, page, limit int) ([]models.Playlist, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]models.Playlist), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistService) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Create(ctx context.Context, in dto.CreatePlaylistDTO) (*models.Playlist, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Update(ctx context.Context, id string, in dto.UpdatePlaylistDTO) (*models.Playlist, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupPlaylistRouter(mockService *MockPlaylistService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewPlaylistHandler(mockService, nil)
	h.RegisterRoutes(r.Group("/"), r.Group("/admin"))
	return r
}

func redTag() models.Tag {
	color := "#ff0000"
	return models.Tag{ID: "t1", Name: "Romance", Color: &color}
}

// The wire shape wraps each tag in a row object. Clients depend on it, so
// the handler must keep serializing [{"tag": {...}}].
func TestPlaylistTagRowShape(t *testing.T) {
	mockService := new(MockPlaylistService)
	router := setupPlaylistRouter(mockService)

	playlists := []models.Playlist{
		{ID: "p1", Name: "Best of 2026", Tags: []models.Tag{redTag()}},
	}
	mockService.On("GetAll", mock.Anything, 1, 10).Return(playlists, int64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/playlists", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Name string `json:"name"`
			Tags []struct {
				Tag struct {
					Name  string  `json:"name"`
					Color *string `json:"color"`
				} `json:"tag"`
			} `json:"tags"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Len(t, resp.Data[0].Tags, 1)
	assert.Equal(t, "Romance", resp.Data[0].Tags[0].Tag.Name)
	assert.Equal(t, "#ff0000", *resp.Data[0].Tags[0].Tag.Color)
}

func TestCreatePlaylistResponseCarriesTags(t *testing.T) {
	mockService := new(MockPlaylistService)
	router := setupPlaylistRouter(mockService)

	created := models.Playlist{ID: "p1", Name: "Action picks", Tags: []models.Tag{redTag()}}
	mockService.On("Create", mock.Anything, mock.Anything).Return(&created, nil)

	body, _ := json.Marshal(dto.CreatePlaylistDTO{Name: "Action picks", TagIDs: []string{"t1"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/playlists", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PlaylistResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Tags, 1)
	assert.Equal(t, "Romance", resp.Tags[0].Tag.Name)
}
