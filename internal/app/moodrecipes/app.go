package moodrecipes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/mood-recipes/internal/cache"
	"github.com/magabrotheeeer/mood-recipes/internal/config"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/jwt"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
	"github.com/magabrotheeeer/mood-recipes/internal/migrations"
	authservice "github.com/magabrotheeeer/mood-recipes/internal/services/auth"
	favoritesservice "github.com/magabrotheeeer/mood-recipes/internal/services/favorites"
	"github.com/magabrotheeeer/mood-recipes/internal/services/integrations"
	moodservice "github.com/magabrotheeeer/mood-recipes/internal/services/mood"
	recipeservice "github.com/magabrotheeeer/mood-recipes/internal/services/recipe"
	"github.com/magabrotheeeer/mood-recipes/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

// App HTTP-приложение сервиса рецептов.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
	amqp   *rabbitmq.Session
}

// New подключает хранилище, применяет миграции, подключает Redis и,
// если задан URL брокера, RabbitMQ. Затем собирает маршруты.
// Недоступный Redis не мешает запуску: рецепты читаются из базы без кеша.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.New"

	db, err := repository.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := &App{
		logger: logger,
		db:     db,
		cache:  initCache(ctx, cfg.RedisConnection, logger),
	}
	var recipeCache recipeservice.Cache
	if a.cache != nil {
		recipeCache = a.cache
	}

	var orderer integrations.Orderer = integrations.MockOrderer{}
	if cfg.RabbitMQ.URL != "" {
		a.amqp = rabbitmq.NewSession(cfg.RabbitMQ.URL, cfg.OrdersQueue, cfg.ConnRetries, cfg.ConnDelay)
		if _, err = a.amqp.Channel(ctx); err != nil {
			a.close()
			return nil, fmt.Errorf("%s: failed to connect RabbitMQ: %w", op, err)
		}
		orderer = integrations.NewAMQPOrderer(a.amqp, cfg.OrdersQueue, cfg.CircuitBreaker, logger)
		logger.Info("grocery orders are published to RabbitMQ", slog.String("queue", cfg.OrdersQueue))
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	deps := Deps{
		Auth:        authservice.NewAuthService(db, jwtMaker, logger),
		Recipes:     recipeservice.NewRecipeService(db, recipeCache, cfg.RecipesTTL, logger),
		Favorites:   favoritesservice.NewFavoritesService(db, db, logger),
		Moods:       moodservice.NewMoodService(db, db, nil, logger),
		Detector:    moodservice.KeywordDetector{},
		Sharer:      integrations.MockSharer{},
		Orderer:     orderer,
		AuthLimiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		DB:          db.DB,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, deps)

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return a, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.amqp != nil {
		if err := a.amqp.Close(); err != nil {
			a.logger.Error("failed to close RabbitMQ session", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close cache", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}

// initCache подключается к Redis. При ошибке возвращает nil и пишет предупреждение.
func initCache(ctx context.Context, cfg config.RedisConnection, logger *slog.Logger) *cache.Cache {
	c, err := cache.InitServer(ctx, cfg)
	if err != nil {
		logger.Warn("redis is unavailable, recipe cache disabled", sl.Err(err))
		return nil
	}
	return c
}
