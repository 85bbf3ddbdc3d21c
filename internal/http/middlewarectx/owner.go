package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/mood-recipes/internal/http/response"
	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// OwnerOnly пропускает запрос, только если параметр пути {id} совпадает с UID из токена.
// Должен стоять после JWTMiddleware.
func OwnerOnly(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.OwnerOnly"

			userUID, ok := UserUIDFromContext(r.Context())
			if !ok {
				response.WriteError(w, r, http.StatusUnauthorized, "No token provided")
				return
			}
			if err := models.CheckOwner(userUID, chi.URLParam(r, "id")); err != nil {
				log.Warn("access to foreign resource denied",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("user_uid", userUID),
				)
				response.WriteError(w, r, http.StatusForbidden, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
