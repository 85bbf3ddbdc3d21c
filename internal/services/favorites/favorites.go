// Package services управляет избранными рецептами пользователя.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// UserRepository нужен для проверки существования пользователя.
type UserRepository interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// FavoritesRepository хранит избранное пользователей.
type FavoritesRepository interface {
	// AddFavorite возвращает false, если рецепт уже в избранном.
	AddFavorite(ctx context.Context, userUID, recipeID string) (bool, error)
	ListFavorites(ctx context.Context, userUID string) ([]string, error)
}

// FavoritesService реализует добавление и чтение избранного.
type FavoritesService struct {
	users     UserRepository
	favorites FavoritesRepository
	log       *slog.Logger
}

// NewFavoritesService создает FavoritesService.
func NewFavoritesService(users UserRepository, favorites FavoritesRepository, log *slog.Logger) *FavoritesService {
	return &FavoritesService{
		users:     users,
		favorites: favorites,
		log:       log,
	}
}

// AddFavorite добавляет рецепт в избранное пользователя targetUID.
//
// Вызывающий должен совпадать с владельцем, иначе models.ErrForbidden.
// Повторное добавление того же рецепта ничего не меняет.
func (s *FavoritesService) AddFavorite(ctx context.Context, callerUID, targetUID, recipeID string) error {
	const op = "services.favorites.AddFavorite"

	if err := models.CheckOwner(callerUID, targetUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := uuid.Parse(recipeID); err != nil {
		return fmt.Errorf("%s: %w: malformed recipe id", op, models.ErrValidation)
	}
	if _, err := s.users.GetUser(ctx, callerUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	added, err := s.favorites.AddFavorite(ctx, callerUID, recipeID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if added {
		s.log.Info("favorite added", slog.String("user_uid", callerUID), slog.String("recipe_id", recipeID))
	}
	return nil
}

// ListFavorites возвращает избранное владельца в порядке добавления.
func (s *FavoritesService) ListFavorites(ctx context.Context, callerUID, targetUID string) ([]string, error) {
	const op = "services.favorites.ListFavorites"

	if err := models.CheckOwner(callerUID, targetUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.users.GetUser(ctx, callerUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ids, err := s.favorites.ListFavorites(ctx, callerUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}
