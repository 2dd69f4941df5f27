// Package handlers implements HTTP handlers for the inspection pricing API.
package handlers

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"
)

const readyzTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	deps map[string]Pinger
}

// NewHealthHandler creates a new HealthHandler. Readiness requires every
// named dependency to answer a ping.
func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if every dependency is reachable, 503 otherwise. The
// failing dependencies are listed in the response.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readyzTimeout)
	defer cancel()

	var failing []string
	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			failing = append(failing, name)
		}
	}

	if len(failing) > 0 {
		slices.Sort(failing)
		return c.JSON(http.StatusServiceUnavailable, ReadinessResponse{
			Status:  "unavailable",
			Failing: failing,
		})
	}
	return c.JSON(http.StatusOK, ReadinessResponse{Status: "ready"})
}

// RegisterHealthRoutes mounts the probe endpoints directly on Echo so they
// stay out of the OpenAPI document.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}
