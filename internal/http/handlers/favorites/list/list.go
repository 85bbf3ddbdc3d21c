// Package list реализует HTTP-обработчик чтения избранного пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mood-recipes/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mood-recipes/internal/http/response"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
)

// Service описывает чтение избранного.
type Service interface {
	ListFavorites(ctx context.Context, callerUID, targetUID string) ([]string, error)
}

// Handler обрабатывает GET /users/{id}/favorites.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Избранные рецепты
// @Description Возвращает ID избранных рецептов в порядке добавления. Доступно только владельцу.
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param id path string true "UID пользователя"
// @Success 200 {array} string
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/favorites [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.favorites.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := middlewarectx.UserUIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, http.StatusUnauthorized, "No token provided")
		return
	}

	ids, err := h.service.ListFavorites(r.Context(), userUID, chi.URLParam(r, "id"))
	if err != nil {
		status, msg := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to list favorites", sl.Err(err))
		}
		response.WriteError(w, r, status, msg)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	render.JSON(w, r, ids)
}
