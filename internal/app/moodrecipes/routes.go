// Package moodrecipes собирает HTTP-приложение: зависимости, маршруты и сервер.
package moodrecipes

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/mood-recipes/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/mood-recipes/internal/http/handlers/auth/signup"
	favoritesadd "github.com/magabrotheeeer/mood-recipes/internal/http/handlers/favorites/add"
	favoriteslist "github.com/magabrotheeeer/mood-recipes/internal/http/handlers/favorites/list"
	"github.com/magabrotheeeer/mood-recipes/internal/http/handlers/grocery/order"
	"github.com/magabrotheeeer/mood-recipes/internal/http/handlers/health"
	"github.com/magabrotheeeer/mood-recipes/internal/http/handlers/moods/analytics"
	"github.com/magabrotheeeer/mood-recipes/internal/http/handlers/moods/detect"
	"github.com/magabrotheeeer/mood-recipes/internal/http/handlers/moods/history"
	"github.com/magabrotheeeer/mood-recipes/internal/http/handlers/moods/record"
	recipeslist "github.com/magabrotheeeer/mood-recipes/internal/http/handlers/recipes/list"
	"github.com/magabrotheeeer/mood-recipes/internal/http/handlers/recipes/share"
	"github.com/magabrotheeeer/mood-recipes/internal/http/middlewarectx"
)

// AuthService объединяет регистрацию, вход и проверку токена.
type AuthService interface {
	signup.Service
	login.Service
	middlewarectx.TokenValidator
}

// FavoritesService объединяет операции с избранным.
type FavoritesService interface {
	favoritesadd.Service
	favoriteslist.Service
}

// MoodService объединяет операции с историей настроений.
type MoodService interface {
	record.Service
	history.Service
	analytics.Service
}

// Deps зависимости обработчиков.
type Deps struct {
	Auth        AuthService
	Recipes     recipeslist.Service
	Favorites   FavoritesService
	Moods       MoodService
	Detector    detect.Detector
	Sharer      share.Sharer
	Orderer     order.Orderer
	AuthLimiter *rate.Limiter
	DB          health.Pinger
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.Metrics,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.New(logger, deps.DB).ServeHTTP)

		// Открытые конечные точки
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(deps.AuthLimiter, logger))
			r.Post("/auth/signup", signup.New(logger, deps.Auth).ServeHTTP)
			r.Post("/auth/login", login.New(logger, deps.Auth).ServeHTTP)
		})
		r.Get("/recipes", recipeslist.New(logger, deps.Recipes).ServeHTTP)
		r.Post("/mood-detect", detect.New(logger, deps.Detector).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(deps.Auth, logger))
			r.Post("/recipes/share", share.New(logger, deps.Sharer).ServeHTTP)
			r.Post("/grocery/orders", order.New(logger, deps.Orderer).ServeHTTP)

			// Ресурсы пользователя доступны только владельцу
			r.Route("/users/{id}", func(r chi.Router) {
				r.Use(middlewarectx.OwnerOnly(logger))
				r.Post("/favorites", favoritesadd.New(logger, deps.Favorites).ServeHTTP)
				r.Get("/favorites", favoriteslist.New(logger, deps.Favorites).ServeHTTP)
				r.Post("/moods", record.New(logger, deps.Moods).ServeHTTP)
				r.Get("/moods", history.New(logger, deps.Moods).ServeHTTP)
				r.Get("/analytics", analytics.New(logger, deps.Moods).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
