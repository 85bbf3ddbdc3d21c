package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

const testSecret = "test_secret_key_1234567890"

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func TestJWTMaker_GenerateAndParseToken(t *testing.T) {
	maker := NewJWTMaker(testSecret, time.Hour)

	tests := []struct {
		name    string
		userUID string
	}{
		{name: "uuid subject", userUID: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "another uuid subject", userUID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.userUID)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.userUID, claims.UserUID())
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_GenerateToken_EmptySubject(t *testing.T) {
	maker := NewJWTMaker(testSecret, time.Hour)

	_, err := maker.GenerateToken("")
	assert.Error(t, err)
}

func TestJWTMaker_DefaultTTL(t *testing.T) {
	maker := NewJWTMaker(testSecret, 0)
	assert.Equal(t, DefaultTTL, maker.TTL())
}

func TestJWTMaker_Expiry(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issuedAt}
	maker := NewJWTMaker(testSecret, time.Hour, WithClock(clock.Now))

	token, err := maker.GenerateToken("user-1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "right after issue", at: issuedAt, wantErr: false},
		{name: "59 minutes later", at: issuedAt.Add(59 * time.Minute), wantErr: false},
		{name: "exactly at expiry", at: issuedAt.Add(time.Hour), wantErr: true},
		{name: "61 minutes later", at: issuedAt.Add(61 * time.Minute), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.t = tt.at
			claims, err := maker.ParseToken(token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrInvalidToken)
				assert.True(t, IsExpired(err))
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserUID())
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	maker := NewJWTMaker(testSecret, 15*time.Minute)

	validToken, err := maker.GenerateToken("user-1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "expired token", token: createExpiredToken(t)},
		{name: "wrong secret key", token: createTokenWithWrongSecret(t)},
		{name: "tampered token", token: validToken + "tampered"},
		{name: "none algorithm", token: createUnsignedToken(t)},
		{name: "missing subject", token: createTokenWithoutSubject(t)},
		{name: "missing expiry", token: createTokenWithoutExpiry(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.ErrorIs(t, err, models.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewJWTMaker("first_secret_key", 15*time.Minute)
	maker2 := NewJWTMaker("different_secret_key", 15*time.Minute)

	token, err := maker1.GenerateToken("user-1")
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func createExpiredToken(t *testing.T) string {
	past := &fakeClock{t: time.Now().Add(-2 * time.Hour)}
	maker := NewJWTMaker(testSecret, time.Hour, WithClock(past.Now))
	token, err := maker.GenerateToken("user-1")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewJWTMaker("wrong_secret_key", 15*time.Minute)
	token, err := wrongMaker.GenerateToken("user-1")
	require.NoError(t, err)
	return token
}

func createUnsignedToken(t *testing.T) string {
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(token, "."))
	return token
}

func createTokenWithoutSubject(t *testing.T) string {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func createTokenWithoutExpiry(t *testing.T) string {
	claims := jwt.RegisteredClaims{Subject: "user-1"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}
