package server

import (
	"log/slog"
	"net/http"

	"space-age/internal/auth"
	"space-age/internal/middleware"
	"space-age/internal/planet"
	planetHandlers "space-age/internal/planet/handlers"
	serverHandlers "space-age/internal/server/handlers"
	"space-age/internal/shared/metrics"
)

type Routes struct {
	health        http.Handler
	planetService *planet.Service
	metrics       *metrics.Collector
	metricsPath   string
	tokens        *auth.TokenManager
}

// NewRoutes leaves the API unauthenticated when tokens is nil and skips the
// metrics endpoint when metricsPath is empty.
func NewRoutes(health *serverHandlers.HealthHandler, planetService *planet.Service, collector *metrics.Collector, metricsPath string, tokens *auth.TokenManager) *Routes {
	return &Routes{
		health:        health,
		planetService: planetService,
		metrics:       collector,
		metricsPath:   metricsPath,
		tokens:        tokens,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	planetHandler := planetHandlers.NewPlanetHandler(r.planetService)

	mux.Handle("/api/server/health", r.health)
	mux.Handle("/api/planets", r.api("planets", planetHandler.GetPlanets))
	mux.Handle("/api/planets/{name}/age", r.api("planet_age", planetHandler.GetAge))
	mux.Handle("/api/ages", r.api("ages", planetHandler.GetAges))

	if r.metricsPath != "" && r.metrics != nil {
		mux.Handle(r.metricsPath, r.metrics.Handler())
	}

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health"},
		"api_endpoints", []string{"/api/planets", "/api/planets/{name}/age", "/api/ages"},
		"authenticated", r.tokens != nil,
		"metrics_path", r.metricsPath,
	)

	return mux
}

func (r *Routes) api(name string, fn http.HandlerFunc) http.Handler {
	var h http.Handler = fn
	if r.tokens != nil {
		h = middleware.JWTMiddleware(r.tokens)(h)
	}
	return middleware.Metrics(r.metrics, name, h)
}
