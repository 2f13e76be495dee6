package router

import (
	"net/http"

	"github.com/deadpoolio/chimichangapp/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// demo API surface:
//  1. health endpoint (used by monitors)
//  2. meta endpoint (the API's self-description document)
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/status", h.Health.CheckHealth)

	e.GET("/meta", handler.Handle(h.Meta.Handler, h.Meta.Describe, http.StatusOK))
}
