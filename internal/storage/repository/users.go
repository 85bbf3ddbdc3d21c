package repository

import (
	"context"

	"github.com/goccy/go-json"

	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// RegisterUser сохраняет нового пользователя и возвращает его UID.
// Нарушение уникальности username или email возвращает models.ErrAlreadyExists.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	if err := checkCtx(ctx, op); err != nil {
		return "", err
	}

	prefs := user.DietaryPreferences
	if prefs == nil {
		prefs = []string{}
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return "", wrap(op, err)
	}

	var newID string
	query := `INSERT INTO users (email, username, password_hash, dietary_preferences)
			  VALUES ($1, $2, $3, $4::jsonb)
			  RETURNING uid`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, string(prefsJSON)).Scan(&newID); err != nil {
		return "", wrap(op, err)
	}
	return newID, nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT uid, email, username, password_hash, dietary_preferences, created_at
			  FROM users
			  WHERE email = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, wrap(op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT uid, email, username, password_hash, dietary_preferences, created_at
			  FROM users
			  WHERE uid = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userUID))
	if err != nil {
		return nil, wrap(op, err)
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var prefs []byte
	if err := row.Scan(&u.UUID, &u.Email, &u.Username, &u.PasswordHash, &prefs, &u.CreatedAt); err != nil {
		return nil, err
	}
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &u.DietaryPreferences); err != nil {
			return nil, err
		}
	}
	return u, nil
}
