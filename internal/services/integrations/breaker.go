package integrations

import (
	"log/slog"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/magabrotheeeer/mood-recipes/internal/config"
)

// NewBreaker создает размыкатель, который срабатывает после FailureThreshold
// последовательных ошибок и логирует смену состояния.
func NewBreaker(name string, cfg config.CircuitBreaker, log *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
	return gobreaker.NewCircuitBreaker[struct{}](settings)
}
