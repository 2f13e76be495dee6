// Command server runs the ChimichangApp demo API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deadpoolio/chimichangapp/internal/config"
	"github.com/deadpoolio/chimichangapp/internal/logger"
	"github.com/deadpoolio/chimichangapp/internal/router"
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/rs/zerolog"
)

// shutdownTimeout bounds how long inflight requests may run after a
// stop signal.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; build a bare one just to die loudly.
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg)

	srv := server.New(cfg, log)
	srv.SetupHTTPServer(router.New(srv))

	// Serve in the background so the main goroutine can wait on
	// signals.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}
}
