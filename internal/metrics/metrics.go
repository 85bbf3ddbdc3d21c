// Package metrics объявляет метрики Prometheus сервиса.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests число обработанных HTTP запросов.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_recipes_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration длительность обработки HTTP запросов.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mood_recipes_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// LoginAttempts попытки входа по результату: success, invalid, error.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_recipes_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	// RecipeCacheLookups обращения к кешу рецептов: hit, miss, error.
	RecipeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_recipes_recipe_cache_lookups_total",
			Help: "Total number of recipe cache lookups by result",
		},
		[]string{"result"},
	)

	// GroceryOrders заказы продуктов по результату публикации.
	GroceryOrders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_recipes_grocery_orders_total",
			Help: "Total number of grocery orders by result",
		},
		[]string{"result"},
	)
)

// RecordHTTPRequest записывает результат HTTP запроса.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
