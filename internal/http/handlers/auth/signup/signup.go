// Package signup реализует HTTP-обработчик регистрации пользователя.
package signup

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
)

// Request входные данные регистрации.
type Request struct {
	Username           string   `json:"username" validate:"required,max=64"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required"`
	DietaryPreferences []string `json:"dietaryPreferences,omitempty"`
}

// Service описывает регистрацию пользователя.
type Service interface {
	Register(ctx context.Context, username, email, password string, dietary []string) (string, error)
}

// Handler обрабатывает POST /auth/signup.
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
// @Summary Регистрация пользователя
// @Description Создает пользователя с уникальными username и email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные нового пользователя"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или пользователь уже существует"
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

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
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			log.Info("validation failed", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		log.Error("validation failed", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "invalid request")
		return
	}

	uid, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password, req.DietaryPreferences)
	if err != nil {
		status, msg := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("registration failed", sl.Err(err))
		} else {
			log.Info("registration rejected", sl.Err(err))
		}
		response.WriteError(w, r, status, msg)
		return
	}

	log.Info("user created", slog.String("user_uid", uid))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.Message("User created"))
}
