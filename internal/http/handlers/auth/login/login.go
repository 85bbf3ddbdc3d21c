// Package login реализует HTTP-обработчик входа по email и паролю.
//
// При успешной аутентификации возвращается JSON с сессионным JWT. Неизвестный email
// и неверный пароль дают одинаковый ответ 401.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/mood-recipes/internal/http/response"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
	"github.com/magabrotheeeer/mood-recipes/internal/metrics"
	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

// Request входные данные для входа.
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает вход пользователя.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Handler обрабатывает POST /auth/login.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис аутентификации
	validate *validator.Validate // Валидатор входных данных
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Проверяет email и пароль и возвращает JWT, действующий один час.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверный email или пароль"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		response.WriteError(w, r, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			metrics.LoginAttempts.WithLabelValues("invalid").Inc()
			log.Info("login rejected")
		} else {
			metrics.LoginAttempts.WithLabelValues("error").Inc()
			log.Error("login failed", sl.Err(err))
		}
		status, msg := response.FromError(err)
		response.WriteError(w, r, status, msg)
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	log.Info("login success")
	render.JSON(w, r, response.TokenResponse{Token: token})
}
