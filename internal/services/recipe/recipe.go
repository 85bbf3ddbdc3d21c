// Package services реализует запрос каталога рецептов с кешированием в Redis.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
	"github.com/magabrotheeeer/mood-recipes/internal/metrics"
	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// RecipeRepository описывает выборку рецептов из хранилища.
type RecipeRepository interface {
	ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
}

// Cache описывает JSON-кеш.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// RecipeService фильтрует каталог по настроению и пищевым тегам.
type RecipeService struct {
	repo  RecipeRepository
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewRecipeService создает RecipeService. При cache == nil кеширование отключено.
func NewRecipeService(repo RecipeRepository, cache Cache, ttl time.Duration, log *slog.Logger) *RecipeService {
	return &RecipeService{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// Query возвращает рецепты, подходящие под фильтр, в порядке каталога.
//
// Ошибки кеша не прерывают запрос: результат берется из хранилища.
func (s *RecipeService) Query(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	const op = "services.recipe.Query"

	cacheKey := filter.CacheKey()
	if s.cache != nil {
		var cached []models.Recipe
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		switch {
		case err != nil:
			metrics.RecipeCacheLookups.WithLabelValues("error").Inc()
			s.log.Warn("failed to read recipes from cache", slog.String("key", cacheKey), sl.Err(err))
		case found:
			metrics.RecipeCacheLookups.WithLabelValues("hit").Inc()
			if cached == nil {
				cached = []models.Recipe{}
			}
			return cached, nil
		default:
			metrics.RecipeCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	recipes, err := s.repo.ListRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, recipes, s.ttl); err != nil {
			s.log.Warn("failed to cache recipes", slog.String("key", cacheKey), sl.Err(err))
		}
	}
	return recipes, nil
}
