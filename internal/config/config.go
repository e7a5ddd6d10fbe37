package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the whole application configuration.
// It is populated from environment variables (and .env in development).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name        string `env:"APP_NAME" env-default:"People API"`
	Environment string `env:"APP_ENV" env-default:"development"` // development, staging, production
	Version     string `env:"APP_VERSION" env-default:"1.0.0"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Port         string        `env:"PORT" env-default:"8000"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type DatabaseConfig struct {
	URL               string        `env:"DATABASE_URL" env-required:"true"`
	MaxConns          int           `env:"DB_MAX_CONNS" env-default:"10"`
	MinConns          int           `env:"DB_MIN_CONNS" env-default:"0"`
	MaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" env-default:"30m"`
	MaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" env-default:"5m"`
	HealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" env-default:"1m"`
	ConnectTimeout    time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"10s"`
}

type CORSConfig struct {
	// "*" means any origin; the request origin is echoed back so credentials keep working.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

// Load reads config from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	for i, origin := range cfg.CORS.AllowedOrigins {
		cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks invariants that cleanenv tags cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS, got %d", c.Database.MinConns)
	}
	if c.HTTP.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	return nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
