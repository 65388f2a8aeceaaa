package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// BackendPinger reports whether the remote marketplace API is reachable.
type BackendPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers liveness; process up means alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HealthDependenciesHandler answers readiness by probing the cache and
// the remote API.
type HealthDependenciesHandler struct {
	rdb     *redis.Client
	backend BackendPinger
}

func NewHealthDependenciesHandler(rdb *redis.Client, backend BackendPinger) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{rdb: rdb, backend: backend}
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{"redis": "ok", "backend": "ok"}
	healthy := true

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		}
	} else {
		checks["redis"] = "not configured"
	}

	if err := h.backend.Ping(ctx); err != nil {
		checks["backend"] = err.Error()
		healthy = false
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, checks)
}
