package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/be1500616/zergoqrf/internal/auth/handler"
	"github.com/be1500616/zergoqrf/internal/platform/config"
	"github.com/be1500616/zergoqrf/internal/platform/health"
	"github.com/be1500616/zergoqrf/internal/platform/metrics"
	"github.com/be1500616/zergoqrf/pkg/platform/middleware/metadata"
	"github.com/be1500616/zergoqrf/pkg/platform/middleware/request"
	"github.com/be1500616/zergoqrf/pkg/validation"
)

func newRouter(cfg config.Server, log *slog.Logger, m *metrics.Metrics, checks *health.Handler, auth *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(log))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(metadata.New(cfg.TrustedProxies, log).Handler)
	r.Use(request.Logger(log))
	r.Use(request.CORS(cfg.AllowedOrigins))

	checks.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(request.Latency(m))
		r.Use(request.Timeout(cfg.RequestTimeout))
		r.Use(request.BodyLimit(validation.MaxBodySize))
		r.Use(request.ContentTypeJSON)

		auth.Register(r)
		auth.RegisterAdmin(r)
	})
	return r
}
