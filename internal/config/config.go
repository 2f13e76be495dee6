// Package config manages runtime configuration.
//
// Configuration is not part of the API contract (the CORS allow-list
// and route behavior are fixed), so every value has an in-code default
// and the binary runs with an empty environment. Env vars remain the
// deployment surface:
//
//   - values are read with the CHIMICHANG_ prefix
//   - "__" marks nesting, "_" stays literal
//     (CHIMICHANG_SERVER__READ_TIMEOUT -> server.read_timeout)
//   - a .env file, if present, is loaded first via godotenv autoload
//
// Responsibilities:
//   - apply defaults, overlay env vars, unmarshal into structs
//   - validate the result so the app fails fast on broken overrides
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a .env file (if any) into the process
	// environment before the env provider reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes which environment variables this app reads.
const envPrefix = "CHIMICHANG_"

// Config is the root configuration object.
type Config struct {
	Primary Primary      `koanf:"primary" validate:"required"`
	Server  ServerConfig `koanf:"server" validate:"required"`
	Log     LogConfig    `koanf:"log" validate:"required"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch log formatting.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
}

// defaults returns the configuration the app runs with when nothing is
// overridden. The CORS allow-list is the fixed policy of the API.
func defaults() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:         "8000",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  60,
			CORSAllowedOrigins: []string{
				"http://localhost.tiangolo.com",
				"https://localhost.tiangolo.com",
				"http://localhost",
				"http://localhost:8080",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration: defaults, then env overrides, then
// validation.
func Load() (*Config, error) {
	cfg := defaults()

	k := koanf.New(".")

	// Map CHIMICHANG_SERVER__READ_TIMEOUT -> "server.read_timeout".
	// Double underscore is the nesting delimiter so field names may
	// keep their single underscores.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Unmarshal overlays env values onto the prefilled defaults; keys
	// absent from the environment keep their default.
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
