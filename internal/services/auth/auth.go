// Package services содержит логику бизнес-уровня для регистрации, входа и проверки токенов.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/magabrotheeeer/mood-recipes/internal/lib/jwt"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/password"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или models.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создает пользователя с bcrypt-хешем пароля.
//
// Пустое поле или занятые username/email возвращают models.ErrValidation.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string, dietary []string) (string, error) {
	const op = "services.auth.Register"

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || rawPassword == "" {
		return "", fmt.Errorf("%s: %w: username, email and password are required", op, models.ErrValidation)
	}
	if len(rawPassword) > password.MaxLength {
		return "", fmt.Errorf("%s: %w: password must be at most %d bytes", op, models.ErrValidation, password.MaxLength)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:              email,
		Username:           username,
		PasswordHash:       hashed,
		DietaryPreferences: models.ParseDietary(strings.Join(dietary, ",")),
	}

	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return "", fmt.Errorf("%s: %w: user with this username or email already exists", op, models.ErrValidation)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user registered", slog.String("user_uid", uid))
	return uid, nil
}

// Login проверяет email и пароль и выпускает сессионный токен.
//
// Неизвестный email и неверный пароль неразличимы: оба возвращают models.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Время ответа не должно зависеть от существования email.
			_ = password.CompareHash(dummyHash(), rawPassword)
			return "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			s.log.Warn("password hash comparison failed", sl.Err(err))
		}
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.UUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет JWT и возвращает UID пользователя из subject.
func (s *AuthService) ValidateToken(_ context.Context, token string) (string, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return "", err
	}
	return claims.UserUID(), nil
}

var dummyHash = sync.OnceValue(func() string {
	hash, _ := password.GetHash("dummy-password")
	return hash
})
