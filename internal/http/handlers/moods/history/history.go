// Package history реализует HTTP-обработчик чтения истории настроений.
package history

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
	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// Service описывает чтение истории настроений.
type Service interface {
	History(ctx context.Context, callerUID, targetUID string) ([]models.MoodEntry, error)
}

// Handler обрабатывает GET /users/{id}/moods.
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
// @Summary История настроений
// @Description Возвращает записи истории в порядке добавления. Доступно только владельцу.
// @Tags Moods
// @Produce json
// @Security BearerAuth
// @Param id path string true "UID пользователя"
// @Success 200 {array} models.MoodEntry
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/moods [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.moods.history"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := middlewarectx.UserUIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, http.StatusUnauthorized, "No token provided")
		return
	}

	entries, err := h.service.History(r.Context(), userUID, chi.URLParam(r, "id"))
	if err != nil {
		status, msg := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to read mood history", sl.Err(err))
		}
		response.WriteError(w, r, status, msg)
		return
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	render.JSON(w, r, entries)
}
