// Package detect реализует HTTP-обработчик определения настроения по тексту.
package detect

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mood-recipes/internal/http/response"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
)

// Request тело запроса.
type Request struct {
	Text string `json:"text"`
}

// Response ответ с определенным настроением.
type Response struct {
	Mood string `json:"mood" example:"happy"`
}

// Detector определяет настроение по тексту.
type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// Handler обрабатывает POST /mood-detect.
type Handler struct {
	log      *slog.Logger
	detector Detector
}

// New создает Handler.
func New(log *slog.Logger, detector Detector) *Handler {
	return &Handler{
		log:      log,
		detector: detector,
	}
}

// ServeHTTP godoc
// @Summary Определить настроение
// @Tags Moods
// @Accept json
// @Produce json
// @Param request body Request false "Текст"
// @Success 200 {object} Response
// @Failure 500 {object} response.ErrorResponse
// @Router /mood-detect [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.moods.detect"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	mood, err := h.detector.Detect(r.Context(), req.Text)
	if err != nil {
		log.Error("mood detection failed", sl.Err(err))
		response.WriteError(w, r, http.StatusInternalServerError, "Mood detection failed")
		return
	}
	render.JSON(w, r, Response{Mood: mood})
}
