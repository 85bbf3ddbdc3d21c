// Package middlewarectx содержит HTTP middleware для проверки JWT токенов,
// владения ресурсом, ограничения частоты запросов и сбора метрик.
//
// JWTMiddleware проверяет заголовок Authorization вида "Bearer <token>" и в случае
// успеха кладет UID пользователя из токена в контекст запроса. Иначе возвращает
// HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/mood-recipes/internal/http/response"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/jwt"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UserUID ключ для UID аутентифицированного пользователя в контексте.
const UserUID Key = "user_uid"

const bearerScheme = "Bearer"

// TokenValidator проверяет токен и возвращает UID пользователя.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// JWTMiddleware возвращает middleware, который проверяет JWT в заголовке Authorization.
func JWTMiddleware(validator TokenValidator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("missing authorization header")
				response.WriteError(w, r, http.StatusUnauthorized, "No token provided")
				return
			}
			// Схема аутентификации сравнивается без учета регистра (RFC 7235).
			scheme, tokenStr, found := strings.Cut(strings.TrimSpace(authHeader), " ")
			tokenStr = strings.TrimSpace(tokenStr)
			if !found || !strings.EqualFold(scheme, bearerScheme) || tokenStr == "" {
				log.Warn("malformed authorization header")
				response.WriteError(w, r, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}

			userUID, err := validator.ValidateToken(r.Context(), tokenStr)
			if err != nil || userUID == "" {
				if jwt.IsExpired(err) {
					log.Info("token expired")
				} else {
					log.Warn("invalid token", sl.Err(err))
				}
				response.WriteError(w, r, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserUID, userUID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserUIDFromContext возвращает UID пользователя, сохраненный JWTMiddleware.
func UserUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UserUID).(string)
	return uid, ok && uid != ""
}
