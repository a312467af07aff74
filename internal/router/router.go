package router

import (
	"net/http"

	"github.com/Totarae/EazyBank/internal/gateway"
	"github.com/Totarae/EazyBank/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор сервиса.
// Каждый routes регистрирует свои обработчики внутри /api.
func NewRouter(service string, logger *zap.Logger, routes ...func(chi.Router)) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Correlation)               // Идентификатор корреляции
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.Metrics(service))
	r.Use(middleware.GzipMiddleware) // Gzip-сжатие

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(api chi.Router) {
		for _, register := range routes {
			register(api)
		}
	})
	return r
}

// NewGatewayRouter создаёт маршрутизатор шлюза: фильтр корреляции снаружи,
// всё, кроме /metrics, уходит в proxy.
func NewGatewayRouter(logger *zap.Logger, proxy http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(gateway.Filter)
	r.Use(middleware.LoggingMiddleware(logger))

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/*", proxy)
	return r
}
