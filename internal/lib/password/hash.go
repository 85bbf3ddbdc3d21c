// Package password реализует хеширование и проверку паролей на bcrypt.
//
// GetHash создает соленый bcrypt-хеш с фиксированной стоимостью Cost.
// CompareHash сравнивает хеш с введённым паролем за постоянное время.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost фиксированная стоимость bcrypt.
const Cost = 10

// MaxLength максимальная длина пароля в байтах, которую принимает bcrypt.
const MaxLength = 72

var (
	// ErrMismatch возвращается, если пароль не соответствует хешу.
	ErrMismatch = errors.New("password mismatch")
	// ErrTooLong возвращается для пароля длиннее MaxLength байт.
	ErrTooLong = errors.New("password exceeds 72 bytes")
)

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	if password == "" {
		return "", fmt.Errorf("%s: empty password", op)
	}
	if len(password) > MaxLength {
		return "", fmt.Errorf("%s: %w", op, ErrTooLong)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil при совпадении, ErrMismatch при неверном пароле и
// обёрнутую ошибку bcrypt, если хэш повреждён.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return fmt.Errorf("%s: %w", op, ErrMismatch)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
