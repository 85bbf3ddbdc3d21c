// Package list реализует HTTP-обработчик выборки рецептов по настроению и пищевым тегам.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mood-recipes/internal/http/response"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// Service описывает выборку рецептов.
type Service interface {
	Query(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
}

// Handler обрабатывает GET /recipes.
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
// @Summary Список рецептов
// @Description Возвращает рецепты с тегом настроения mood, содержащие все пищевые теги из dietary.
// @Tags Recipes
// @Produce json
// @Param mood query string false "Тег настроения"
// @Param dietary query string false "Пищевые теги через запятую"
// @Success 200 {array} models.Recipe
// @Failure 500 {object} response.ErrorResponse
// @Router /recipes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipes.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	filter := models.RecipeFilter{
		Mood:    query.Get("mood"),
		Dietary: models.ParseDietary(query.Get("dietary")),
	}

	recipes, err := h.service.Query(r.Context(), filter)
	if err != nil {
		log.Error("failed to query recipes", sl.Err(err))
		response.WriteError(w, r, http.StatusInternalServerError, "failed to fetch recipes")
		return
	}

	if recipes == nil {
		recipes = []models.Recipe{}
	}
	log.Debug("recipes fetched", slog.Int("count", len(recipes)))
	render.JSON(w, r, recipes)
}
