package repository

import (
	"context"

	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// AddMood добавляет запись в историю настроений пользователя.
func (s *Storage) AddMood(ctx context.Context, userUID string, entry models.MoodEntry) error {
	const op = "storage.AddMood"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `INSERT INTO mood_history (user_uid, mood, recorded_at)
			  VALUES ($1, $2, $3)`
	if _, err := s.DB.ExecContext(ctx, query, userUID, entry.Mood, entry.Date); err != nil {
		return wrap(op, err)
	}
	return nil
}

// ListMoods возвращает историю настроений пользователя в хронологическом порядке.
func (s *Storage) ListMoods(ctx context.Context, userUID string) ([]models.MoodEntry, error) {
	const op = "storage.ListMoods"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT mood, recorded_at
			  FROM mood_history
			  WHERE user_uid = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.MoodEntry, 0)
	for rows.Next() {
		var e models.MoodEntry
		if err := rows.Scan(&e.Mood, &e.Date); err != nil {
			return nil, wrap(op, err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}

// CountMoods возвращает число записей истории по каждому настроению пользователя.
func (s *Storage) CountMoods(ctx context.Context, userUID string) (map[string]int, error) {
	const op = "storage.CountMoods"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT mood, COUNT(*)
			  FROM mood_history
			  WHERE user_uid = $1
			  GROUP BY mood`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make(map[string]int)
	for rows.Next() {
		var (
			mood  string
			count int
		)
		if err := rows.Scan(&mood, &count); err != nil {
			return nil, wrap(op, err)
		}
		result[mood] = count
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}
