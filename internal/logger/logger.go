// Package logger configures the application's structured logging.
//
// It uses zerolog: human-friendly console output in development, plain
// JSON everywhere else. Request-scoped loggers with correlation fields
// are derived from this base logger by the middleware package.
package logger

import (
	"os"

	"github.com/deadpoolio/chimichangapp/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application's base logger from config.
//
// An unparsable level falls back to info rather than failing startup;
// logging is not worth refusing to boot over.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Primary.Env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", "chimichangapp").
		Str("env", cfg.Primary.Env).
		Logger()

	return &logger
}
