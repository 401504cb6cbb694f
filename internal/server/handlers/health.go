package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"space-age/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Catalog   string `json:"catalog"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db            Pinger
	redis         func(ctx context.Context) error
	catalogSource func() string
}

// NewHealthHandler accepts nil dependencies for services that are disabled.
// Without catalogSource the catalog is reported as "unknown".
func NewHealthHandler(db Pinger, redisPing func(ctx context.Context) error, catalogSource func() string) *HealthHandler {
	return &HealthHandler{db: db, redis: redisPing, catalogSource: catalogSource}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "disabled"
	if h.db != nil {
		dbStatus = "connected"
		if err := h.db.PingContext(ctx); err != nil {
			dbStatus = "disconnected"
			logger.Warn("Database ping failed", "error", err)
		}
	}

	redisStatus := "disabled"
	if h.redis != nil {
		redisStatus = "connected"
		if err := h.redis(ctx); err != nil {
			redisStatus = "disconnected"
			logger.Warn("Redis ping failed", "error", err)
		}
	}

	catalog := "unknown"
	if h.catalogSource != nil {
		catalog = h.catalogSource()
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Catalog:   catalog,
		Database:  dbStatus,
		Redis:     redisStatus,
	}

	response.Success(w, http.StatusOK, resp)
}
