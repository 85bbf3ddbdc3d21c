// Package order реализует HTTP-обработчик заказа продуктов.
package order

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

// Orderer оформляет заказ продуктов.
type Orderer interface {
	PlaceOrder(ctx context.Context, userUID string, payload any) (string, error)
}

// Handler обрабатывает POST /grocery/orders.
type Handler struct {
	log     *slog.Logger
	orderer Orderer
}

// New создает Handler.
func New(log *slog.Logger, orderer Orderer) *Handler {
	return &Handler{
		log:     log,
		orderer: orderer,
	}
}

// ServeHTTP godoc
// @Summary Заказать продукты
// @Description Передает заказ в сервис доставки. Тело запроса передается как есть.
// @Tags Grocery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /grocery/orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.grocery.order"

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

	msg, err := h.orderer.PlaceOrder(r.Context(), userUID, payload)
	if err != nil {
		log.Error("failed to place order", sl.Err(err))
		response.WriteError(w, r, http.StatusInternalServerError, "failed to place order")
		return
	}
	render.JSON(w, r, response.Message(msg))
}
