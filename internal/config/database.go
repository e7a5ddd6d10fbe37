package config

import (
	"people-api/internal/infrastructure/database"
)

// LoadDatabaseConfig maps the env-level database section to the pool configuration.
func LoadDatabaseConfig(cfg *Config) *database.DBConfig {
	return &database.DBConfig{
		URL:               cfg.Database.URL,
		MaxConns:          int32(cfg.Database.MaxConns),
		MinConns:          int32(cfg.Database.MinConns),
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
		ConnectTimeout:    cfg.Database.ConnectTimeout,
	}
}
