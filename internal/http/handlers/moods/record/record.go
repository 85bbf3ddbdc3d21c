// Package record реализует HTTP-обработчик записи настроения в историю пользователя.
package record

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/mood-recipes/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mood-recipes/internal/http/response"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
)

// Request тело запроса.
type Request struct {
	Mood string `json:"mood" validate:"required,max=64"`
}

// Service описывает запись настроения.
type Service interface {
	RecordMood(ctx context.Context, callerUID, targetUID, mood string) error
}

// Handler обрабатывает POST /users/{id}/moods.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Записать настроение
// @Tags Moods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UID пользователя"
// @Param request body Request true "Настроение"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/moods [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.moods.record"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := middlewarectx.UserUIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, http.StatusUnauthorized, "No token provided")
		return
	}

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		response.WriteError(w, r, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.service.RecordMood(r.Context(), userUID, chi.URLParam(r, "id"), req.Mood); err != nil {
		status, msg := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to record mood", sl.Err(err))
		}
		response.WriteError(w, r, status, msg)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.Message("Mood recorded"))
}
