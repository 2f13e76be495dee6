package middleware

import (
	"github.com/deadpoolio/chimichangapp/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server, so router setup receives one
// object instead of many.
type Middlewares struct {
	// Global holds the middleware applied to every route: CORS,
	// request logging, recovery, and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components using the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
