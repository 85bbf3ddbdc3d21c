// Package add реализует HTTP-обработчик добавления рецепта в избранное.
package add

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
	RecipeID string `json:"recipeId" validate:"required"`
}

// Service описывает добавление в избранное.
type Service interface {
	AddFavorite(ctx context.Context, callerUID, targetUID, recipeID string) error
}

// Handler обрабатывает POST /users/{id}/favorites.
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
// @Summary Добавить рецепт в избранное
// @Description Идемпотентно добавляет рецепт в избранное пользователя. Доступно только владельцу.
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UID пользователя"
// @Param request body Request true "ID рецепта"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/favorites [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.favorites.add"

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

	if err := h.service.AddFavorite(r.Context(), userUID, chi.URLParam(r, "id"), req.RecipeID); err != nil {
		status, msg := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to add favorite", sl.Err(err))
		} else {
			log.Info("favorite rejected", sl.Err(err))
		}
		response.WriteError(w, r, status, msg)
		return
	}
	render.JSON(w, r, response.Message("Favorite added"))
}
