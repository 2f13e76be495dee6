// Package server defines the core Server struct that composes the
// app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - the placeholder item store
//   - http.Server
//
// It provides constructors and start/shutdown logic to run the
// application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deadpoolio/chimichangapp/internal/config"
	"github.com/deadpoolio/chimichangapp/internal/store"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; it holds the config, the logger,
// the item store, and an internal *http.Server used to listen and
// serve requests.
type Server struct {
	// Config holds all runtime configuration for the app.
	Config *config.Config

	// Logger is the application's base structured logger.
	Logger *zerolog.Logger

	// Store is the process-scoped placeholder item store, seeded once
	// here and never persisted.
	Store *store.Store

	// httpServer is the standard library HTTP server instance.
	// It is configured in SetupHTTPServer and started in Start.
	httpServer *http.Server
}

// New constructs a Server and initializes its dependencies.
//
// It does not start the HTTP server; that is done in SetupHTTPServer +
// Start. The only initialization here is seeding the item store.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{
		Config: cfg,
		Logger: logger,
		Store:  store.New(),
	}
}

// SetupHTTPServer configures the internal net/http server.
//
// The router (an *echo.Echo) is passed in as the handler; echo
// satisfies http.Handler directly.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Timeouts protect against slow clients holding connections.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be called
// first, and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, finishing inflight
// requests until the context deadline. The store needs no teardown;
// its contents are discarded with the process.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
