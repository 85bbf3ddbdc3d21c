// Package services ведет историю настроений пользователя и определяет настроение по тексту.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// UserRepository нужен для проверки существования пользователя.
type UserRepository interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// MoodRepository хранит историю настроений.
type MoodRepository interface {
	AddMood(ctx context.Context, userUID string, entry models.MoodEntry) error
	CountMoods(ctx context.Context, userUID string) (map[string]int, error)
	ListMoods(ctx context.Context, userUID string) ([]models.MoodEntry, error)
}

// MoodService реализует запись истории настроений и аналитику по ней.
type MoodService struct {
	users UserRepository
	moods MoodRepository
	now   func() time.Time
	log   *slog.Logger
}

// NewMoodService создает MoodService. now может быть nil, тогда используется time.Now.
func NewMoodService(users UserRepository, moods MoodRepository, now func() time.Time, log *slog.Logger) *MoodService {
	if now == nil {
		now = time.Now
	}
	return &MoodService{
		users: users,
		moods: moods,
		now:   now,
		log:   log,
	}
}

// RecordMood добавляет настроение в историю владельца с текущим временем.
func (s *MoodService) RecordMood(ctx context.Context, callerUID, targetUID, mood string) error {
	const op = "services.mood.RecordMood"

	if err := models.CheckOwner(callerUID, targetUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return fmt.Errorf("%s: %w: mood is required", op, models.ErrValidation)
	}
	if _, err := s.users.GetUser(ctx, callerUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	entry := models.MoodEntry{Mood: mood, Date: s.now().UTC()}
	if err := s.moods.AddMood(ctx, callerUID, entry); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug("mood recorded", slog.String("user_uid", callerUID), slog.String("mood", mood))
	return nil
}

// Analytics возвращает число записей по каждому настроению владельца.
func (s *MoodService) Analytics(ctx context.Context, callerUID, targetUID string) (map[string]int, error) {
	const op = "services.mood.Analytics"

	if err := models.CheckOwner(callerUID, targetUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.users.GetUser(ctx, callerUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	counts, err := s.moods.CountMoods(ctx, callerUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return counts, nil
}

// History возвращает историю настроений владельца в хронологическом порядке.
func (s *MoodService) History(ctx context.Context, callerUID, targetUID string) ([]models.MoodEntry, error) {
	const op = "services.mood.History"

	if err := models.CheckOwner(callerUID, targetUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.users.GetUser(ctx, callerUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	history, err := s.moods.ListMoods(ctx, callerUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return history, nil
}
