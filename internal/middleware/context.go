package middleware

import (
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the echo context key for the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer enriches each request with a request-scoped logger
// carrying correlation fields (request_id, method, path, ip), stored
// in echo context for handlers and later middleware to pull out.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an echo middleware that builds the
// request-scoped logger. It must run after RequestID so the ID is
// available as a field.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			builder := ce.server.Logger.With().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Str("ip", c.RealIP())

			if requestID := GetRequestID(c); requestID != "" {
				builder = builder.Str("request_id", requestID)
			}

			logger := builder.Logger()
			c.Set(LoggerKey, &logger)

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from echo context.
//
// Falls back to a bare logger if the enhancer did not run (e.g. in
// tests exercising a handler directly).
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
