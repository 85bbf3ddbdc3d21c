package repository

import (
	"context"

	"github.com/goccy/go-json"

	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// ListRecipes возвращает рецепты, подходящие под фильтр, в порядке хранения.
//
// Настроение проверяется вхождением в mood_tags, пищевые теги проверяются включением
// массива (@>), то есть рецепт должен содержать все запрошенные теги.
func (s *Storage) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	const op = "storage.ListRecipes"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	dietary := filter.Dietary
	if dietary == nil {
		dietary = []string{}
	}
	dietaryJSON, err := json.Marshal(dietary)
	if err != nil {
		return nil, wrap(op, err)
	}

	query := `SELECT id, title, mood_tags, dietary_tags, ingredients, instructions
			  FROM recipes
			  WHERE ($1 = '' OR mood_tags ? $1)
			    AND dietary_tags @> $2::jsonb
			  ORDER BY seq`
	rows, err := s.DB.QueryContext(ctx, query, filter.Mood, string(dietaryJSON))
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Recipe, 0)
	for rows.Next() {
		var (
			r                              models.Recipe
			moodTags, dietaryTags, ingreds []byte
		)
		if err := rows.Scan(&r.ID, &r.Title, &moodTags, &dietaryTags, &ingreds, &r.Instructions); err != nil {
			return nil, wrap(op, err)
		}
		if err := unmarshalLists(&r, moodTags, dietaryTags, ingreds); err != nil {
			return nil, wrap(op, err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}

func unmarshalLists(r *models.Recipe, moodTags, dietaryTags, ingredients []byte) error {
	for _, item := range []struct {
		raw  []byte
		dest *[]string
	}{
		{moodTags, &r.MoodTags},
		{dietaryTags, &r.DietaryTags},
		{ingredients, &r.Ingredients},
	} {
		if len(item.raw) == 0 {
			*item.dest = []string{}
			continue
		}
		if err := json.Unmarshal(item.raw, item.dest); err != nil {
			return err
		}
	}
	return nil
}
