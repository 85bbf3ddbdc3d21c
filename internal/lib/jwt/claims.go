package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// CustomClaims описывает данные, хранящиеся в токене. UID пользователя лежит в Subject.
type CustomClaims struct {
	jwt.RegisteredClaims
}

// UserUID возвращает идентификатор пользователя, которому выпущен токен.
func (c *CustomClaims) UserUID() string {
	return c.Subject
}

// GenerateToken создает токен для userUID, подписывая его секретным ключом.
//
// Время истечения равно времени выпуска плюс tokenTTL.
func (j *MakerImpl) GenerateToken(userUID string) (string, error) {
	const op = "jwt.GenerateToken"
	if userUID == "" {
		return "", fmt.Errorf("%s: empty subject", op)
	}
	now := j.now()
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken проверяет подпись, алгоритм и срок действия токена.
//
// Токен отклоняется, если текущее время не меньше exp. Любая ошибка
// оборачивает models.ErrInvalidToken.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w: missing subject", op, models.ErrInvalidToken)
	}
	return claims, nil
}

// IsExpired сообщает, что ошибка ParseToken вызвана истечением срока токена.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
