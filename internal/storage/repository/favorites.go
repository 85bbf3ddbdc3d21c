package repository

import (
	"context"
)

// AddFavorite атомарно добавляет рецепт в избранное пользователя.
//
// Возвращает true, если запись добавлена, и false, если рецепт уже был в избранном.
// Первичный ключ (user_uid, recipe_id) гарантирует единственное вхождение при
// конкурентных вызовах. Несуществующий рецепт или пользователь дают models.ErrNotFound.
func (s *Storage) AddFavorite(ctx context.Context, userUID, recipeID string) (bool, error) {
	const op = "storage.AddFavorite"
	if err := checkCtx(ctx, op); err != nil {
		return false, err
	}

	query := `INSERT INTO user_favorites (user_uid, recipe_id)
			  VALUES ($1, $2)
			  ON CONFLICT (user_uid, recipe_id) DO NOTHING`
	result, err := s.DB.ExecContext(ctx, query, userUID, recipeID)
	if err != nil {
		return false, wrap(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, wrap(op, err)
	}
	return rowsAffected == 1, nil
}

// ListFavorites возвращает ID избранных рецептов пользователя в порядке добавления.
func (s *Storage) ListFavorites(ctx context.Context, userUID string) ([]string, error) {
	const op = "storage.ListFavorites"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT recipe_id
			  FROM user_favorites
			  WHERE user_uid = $1
			  ORDER BY seq`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, wrap(op, err)
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}
