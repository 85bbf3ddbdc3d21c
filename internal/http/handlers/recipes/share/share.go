// Package share реализует HTTP-обработчик публикации рецепта в соцсетях.
package share

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mood-recipes/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mood-recipes/internal/http/response"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
)

// Sharer публикует рецепт.
type Sharer interface {
	Share(ctx context.Context, userUID string, payload any) (string, error)
}

// Handler обрабатывает POST /recipes/share.
type Handler struct {
	log    *slog.Logger
	sharer Sharer
}

// New создает Handler.
func New(log *slog.Logger, sharer Sharer) *Handler {
	return &Handler{
		log:    log,
		sharer: sharer,
	}
}

// ServeHTTP godoc
// @Summary Поделиться рецептом
// @Description Публикует рецепт в соцсетях. Тело запроса передается интеграции как есть.
// @Tags Recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /recipes/share [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipes.share"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, _ := middlewarectx.UserUIDFromContext(r.Context())

	var payload any
	if err := render.DecodeJSON(r.Body, &payload); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.sharer.Share(r.Context(), userUID, payload)
	if err != nil {
		log.Error("failed to share recipe", sl.Err(err))
		response.WriteError(w, r, http.StatusInternalServerError, "failed to share recipe")
		return
	}
	render.JSON(w, r, response.Message(msg))
}
