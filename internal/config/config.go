// Package config reads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	EnvAddr           = "CHESSINGTON_ADDR"
	EnvAllowedOrigins = "CHESSINGTON_ALLOWED_ORIGINS"
	EnvLogLevel       = "CHESSINGTON_LOG_LEVEL"

	DefaultAddr          = ":3000"
	DefaultAllowedOrigin = "http://localhost:5173"
	DefaultLogLevel      = "info"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr string
	// AllowedOrigins is used for both CORS and websocket origin checks.
	AllowedOrigins []string
	LogLevel       string
}

// Load builds a Config from the environment, falling back to defaults.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:           DefaultAddr,
		AllowedOrigins: []string{DefaultAllowedOrigin},
		LogLevel:       DefaultLogLevel,
	}

	if addr := getenv(EnvAddr); addr != "" {
		cfg.Addr = addr
	}
	if origins := getenv(EnvAllowedOrigins); origins != "" {
		cfg.AllowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	if level := getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !strings.Contains(c.Addr, ":") {
		return fmt.Errorf("%w: %s must be host:port, got %q", ErrInvalidConfig, EnvAddr, c.Addr)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("%w: %s lists no origins", ErrInvalidConfig, EnvAllowedOrigins)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
