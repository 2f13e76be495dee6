package handler

import (
	"net/http"
	"time"

	"github.com/deadpoolio/chimichangapp/internal/middleware"
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that monitors and load
// balancers can use to verify the service is alive.
//
// This service has no external dependencies to probe; the only check
// reported is the in-memory store, which can only be healthy while the
// process runs. The endpoint exists so the service carries the same
// operational surface as its siblings.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared
// app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns overall status, timestamp, environment, and the
// store check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]any{
			"store": map[string]any{
				"status":  "healthy",
				"records": h.server.Store.Len(),
			},
		},
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
