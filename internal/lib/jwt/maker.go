// Package jwt реализует выпуск и проверку сессионных JWT токенов.
//
// Токен подписывается HS256 секретным ключом процесса и содержит идентификатор
// пользователя в поле sub, время выпуска и время истечения. На сервере токены
// не хранятся: валидность определяется только подписью и сроком жизни.
package jwt

import (
	"time"
)

// DefaultTTL время жизни сессионного токена по умолчанию.
const DefaultTTL = time.Hour

// Maker описывает интерфейс для выпуска и проверки токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя с указанным UID.
	GenerateToken(userUID string) (string, error)
	// ParseToken проверяет токен и возвращает его claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует Maker с использованием секретного ключа и времени жизни токена.
type MakerImpl struct {
	secretKey []byte           // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration    // Время жизни токена.
	now       func() time.Time // Источник текущего времени.
}

// Option настраивает MakerImpl.
type Option func(*MakerImpl)

// WithClock подменяет источник текущего времени. Используется в тестах.
func WithClock(now func() time.Time) Option {
	return func(m *MakerImpl) {
		m.now = now
	}
}

// NewJWTMaker создаёт новый экземпляр MakerImpl. Неположительный ttl заменяется на DefaultTTL.
func NewJWTMaker(secretKey string, ttl time.Duration, opts ...Option) *MakerImpl {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &MakerImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL возвращает время жизни выпускаемых токенов.
func (j *MakerImpl) TTL() time.Duration {
	return j.tokenTTL
}
