package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/models"
)

type mockTagStore struct {
	mock.Mock
}

func (m *mockTagStore) GetAll(ctx context.Context, page, limit int) ([]models.Tag, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]models.Tag), args.Get(1).(int64), args.Error(2)
}

func (m *mockTagStore) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *mockTagStore) FindByName(ctx context.Context, name string) (*models.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *mockTagStore) Create(ctx context.Context, t *models.Tag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTagStore) Update(ctx context.Context, id string, t *models.Tag) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}

func (m *mockTagStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateTagTrimsName(t *testing.T) {
	store := new(mockTagStore)
	svc := NewTagService(store)

	store.On("FindByName", mock.Anything, "Romance").Return(nil, gorm.ErrRecordNotFound)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	color := "#ff0000"
	tag, err := svc.Create(context.Background(), dto.CreateTagDTO{Name: "  Romance  ", Color: &color})
	assert.NoError(t, err)
	assert.Equal(t, "Romance", tag.Name)
	assert.Equal(t, "#ff0000", *tag.Color)
}

func TestCreateTagDuplicateName(t *testing.T) {
	store := new(mockTagStore)
	svc := NewTagService(store)

	store.On("FindByName", mock.Anything, "Romance").Return(&models.Tag{ID: "t1", Name: "Romance"}, nil)

	_, err := svc.Create(context.Background(), dto.CreateTagDTO{Name: "Romance"})
	assert.ErrorIs(t, err, ErrDuplicateName)
	store.AssertNotCalled(t, "Create")
}

func TestUpdateTagRenameToTakenName(t *testing.T) {
	store := new(mockTagStore)
	svc := NewTagService(store)

	store.On("GetByID", mock.Anything, "t2").Return(&models.Tag{ID: "t2", Name: "Drama"}, nil)
	store.On("FindByName", mock.Anything, "Romance").Return(&models.Tag{ID: "t1", Name: "Romance"}, nil)

	name := "Romance"
	_, err := svc.Update(context.Background(), "t2", dto.UpdateTagDTO{Name: &name})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateTagKeepOwnName(t *testing.T) {
	store := new(mockTagStore)
	svc := NewTagService(store)

	// renaming to the name it already holds is not a conflict
	store.On("GetByID", mock.Anything, "t1").Return(&models.Tag{ID: "t1", Name: "Romance"}, nil)
	store.On("FindByName", mock.Anything, "Romance").Return(&models.Tag{ID: "t1", Name: "Romance"}, nil)
	store.On("Update", mock.Anything, "t1", mock.Anything).Return(nil)

	name := "Romance"
	color := "#00ff00"
	tag, err := svc.Update(context.Background(), "t1", dto.UpdateTagDTO{Name: &name, Color: &color})
	assert.NoError(t, err)
	assert.Equal(t, "#00ff00", *tag.Color)
}

func TestUpdateTagMissing(t *testing.T) {
	store := new(mockTagStore)
	svc := NewTagService(store)

	store.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	name := "Romance"
	_, err := svc.Update(context.Background(), "ghost", dto.UpdateTagDTO{Name: &name})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
