// Package models содержит доменные модели сервиса: пользователя, запись
// истории настроений, рецепт каталога и параметры фильтрации рецептов.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UUID               string   // Уникальный идентификатор пользователя
	Email              string   // Электронная почта (уникальная)
	Username           string   // Имя пользователя (уникальное)
	PasswordHash       string   // bcrypt‑хэш пароля, открытый пароль не хранится
	DietaryPreferences []string // Пищевые предпочтения пользователя
	CreatedAt          time.Time
}

// MoodEntry запись в истории настроений пользователя.
type MoodEntry struct {
	Mood string    `json:"mood"`
	Date time.Time `json:"date"`
}
