package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP      HTTPConfig
	Graph     GraphConfig
	Users     UsersConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"SERVER_METRICS_ENABLED" envDefault:"false"`
	AllowedOrigins  []string      `env:"SERVER_ALLOWED_ORIGINS" envSeparator:","`
}

// GraphConfig describes connectivity to the reading archive. An empty URI
// disables archiving.
type GraphConfig struct {
	URI            string `env:"GRAPH_URI"`
	Database       string `env:"GRAPH_DATABASE"`
	Username       string `env:"GRAPH_USERNAME"`
	Password       string `env:"GRAPH_PASSWORD"`
	MaxConnections int    `env:"GRAPH_MAX_CONNECTIONS" envDefault:"10"`
}

// Enabled reports whether a graph endpoint was configured.
func (g GraphConfig) Enabled() bool {
	return strings.TrimSpace(g.URI) != ""
}

// UsersConfig selects the user registry backend.
type UsersConfig struct {
	Driver string `env:"USERS_DRIVER" envDefault:"memory"` // memory|sqlite|postgres|mysql
	DSN    string `env:"USERS_DSN"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `env:"LOG_LEVEL" envDefault:"info"`
	Format        string `env:"LOG_FORMAT" envDefault:"text"` // text|json
	IncludeCaller bool   `env:"LOG_INCLUDE_CALLER" envDefault:"false"`
}

// TelemetryConfig toggles OTLP trace export.
type TelemetryConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint    string `env:"OTEL_ENDPOINT" envDefault:"http://localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"oraculo"`
}

var supportedDrivers = map[string]struct{}{
	"memory":   {},
	"sqlite":   {},
	"postgres": {},
	"mysql":    {},
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return Config{}, fmt.Errorf("port %d is out of range", cfg.HTTP.Port)
	}

	cfg.Users.Driver = strings.ToLower(strings.TrimSpace(cfg.Users.Driver))
	if _, ok := supportedDrivers[cfg.Users.Driver]; !ok {
		return Config{}, fmt.Errorf("unsupported USERS_DRIVER %q", cfg.Users.Driver)
	}
	if cfg.Users.Driver != "memory" && cfg.Users.DSN == "" {
		return Config{}, fmt.Errorf("USERS_DSN is required for driver %q", cfg.Users.Driver)
	}

	origins := cfg.HTTP.AllowedOrigins[:0]
	for _, origin := range cfg.HTTP.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.HTTP.AllowedOrigins = origins

	return cfg, nil
}
