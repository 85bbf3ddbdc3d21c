package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var catalog = []models.Recipe{
	{ID: "r1", Title: "Salad", MoodTags: []string{"happy"}, DietaryTags: []string{"vegan", "gluten-free"}},
	{ID: "r2", Title: "Soup", MoodTags: []string{"sad"}, DietaryTags: []string{"vegan"}},
}

func TestRecipeService_Query_CacheMiss(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewRecipeService(repo, cache, time.Minute, testLogger())
	filter := models.RecipeFilter{Mood: "happy", Dietary: []string{"vegan"}}

	cache.On("Get", mock.Anything, filter.CacheKey(), mock.Anything).Return(false, nil).Once()
	repo.On("ListRecipes", mock.Anything, filter).Return(catalog[:1], nil).Once()
	cache.On("Set", mock.Anything, filter.CacheKey(), catalog[:1], time.Minute).Return(nil).Once()

	got, err := svc.Query(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, catalog[:1], got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestRecipeService_Query_CacheHit(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewRecipeService(repo, cache, time.Minute, testLogger())
	filter := models.RecipeFilter{}

	cache.On("Get", mock.Anything, filter.CacheKey(), mock.Anything).
		Run(func(args mock.Arguments) {
			dst := args.Get(2).(*[]models.Recipe)
			*dst = catalog
		}).
		Return(true, nil).Once()

	got, err := svc.Query(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
	repo.AssertNotCalled(t, "ListRecipes", mock.Anything, mock.Anything)
}

func TestRecipeService_Query_CacheFailureFallsBack(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewRecipeService(repo, cache, time.Minute, testLogger())
	filter := models.RecipeFilter{Dietary: []string{"vegan"}}

	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down")).Once()
	repo.On("ListRecipes", mock.Anything, filter).Return(catalog, nil).Once()
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	got, err := svc.Query(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecipeService_Query_RepositoryError(t *testing.T) {
	repo := new(RepoMock)
	svc := NewRecipeService(repo, nil, time.Minute, testLogger())

	repo.On("ListRecipes", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

	_, err := svc.Query(context.Background(), models.RecipeFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestRecipeService_Query_WithoutCache(t *testing.T) {
	repo := new(RepoMock)
	svc := NewRecipeService(repo, nil, time.Minute, testLogger())

	repo.On("ListRecipes", mock.Anything, models.RecipeFilter{Mood: "sad"}).Return(catalog[1:], nil).Once()

	got, err := svc.Query(context.Background(), models.RecipeFilter{Mood: "sad"})
	require.NoError(t, err)
	assert.Equal(t, "Soup", got[0].Title)
}
