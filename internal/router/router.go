// Package router initializes the HTTP router (using echo).
//
// It wires the middleware stack, installs the global error handler,
// and registers all routes through an explicit route table that makes
// duplicate registrations visible instead of silently shadowed.
package router

import (
	"github.com/deadpoolio/chimichangapp/internal/handler"
	"github.com/deadpoolio/chimichangapp/internal/middleware"
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the fully wired echo instance for the given application
// container.
func New(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mws := middleware.NewMiddlewares(s)

	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	// Order matters: recovery outermost, then request ID so the
	// context enhancer and request logger can pick it up, CORS last
	// before routing.
	e.Use(
		mws.Global.Recover(),
		middleware.RequestID(),
		mws.ContextEnhancer.EnhanceContext(),
		mws.Global.RequestLogger(),
		mws.Global.CORS(),
	)

	h := handler.NewHandlers(s)

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, s, h)

	return e
}
