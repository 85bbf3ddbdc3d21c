// Package analytics реализует HTTP-обработчик статистики настроений пользователя.
package analytics

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

// Service описывает подсчет настроений.
type Service interface {
	Analytics(ctx context.Context, callerUID, targetUID string) (map[string]int, error)
}

// Handler обрабатывает GET /users/{id}/analytics.
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
// @Summary Статистика настроений
// @Description Возвращает число записей истории по каждому настроению. Доступно только владельцу.
// @Tags Moods
// @Produce json
// @Security BearerAuth
// @Param id path string true "UID пользователя"
// @Success 200 {object} map[string]int
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/analytics [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.moods.analytics"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := middlewarectx.UserUIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, http.StatusUnauthorized, "No token provided")
		return
	}

	stats, err := h.service.Analytics(r.Context(), userUID, chi.URLParam(r, "id"))
	if err != nil {
		status, msg := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to build mood analytics", sl.Err(err))
		}
		response.WriteError(w, r, status, msg)
		return
	}
	if stats == nil {
		stats = map[string]int{}
	}
	render.JSON(w, r, stats)
}
