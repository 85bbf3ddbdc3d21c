package models

import "errors"

var (
	// ErrValidation возвращается, когда отсутствуют обязательные поля или нарушена уникальность.
	ErrValidation = errors.New("validation error")
	// ErrAlreadyExists означает, что пользователь с таким username или email уже существует.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials неверный email или пароль. Один текст для обоих случаев.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken означает, что токен повреждён, подписан другим ключом или истёк.
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden означает, что пользователь аутентифицирован, но не владеет ресурсом.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound пользователь или рецепт не найден.
	ErrNotFound = errors.New("not found")
)
