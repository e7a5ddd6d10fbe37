package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"people-api/internal/config"
	peopleHandler "people-api/internal/domains/people/handler"
	peopleRepo "people-api/internal/domains/people/repository"
	peopleService "people-api/internal/domains/people/service"
	"people-api/internal/infrastructure/database"
	"people-api/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every long-lived dependency of the application.
// Built once at startup in order: config -> infrastructure -> repositories -> services -> handlers.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB

	// Repositories
	PeopleRepo peopleRepo.Repository

	// Services
	PeopleService peopleService.Service

	// Handlers
	PeopleHandler *peopleHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads configuration, opens the pool and wires the people domain.
// A failure to reach the database is returned to the caller, which treats it as fatal.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	// STEP 1: CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	logger.Info("Config loaded", map[string]interface{}{
		"app":     cfg.App.Name,
		"env":     cfg.App.Environment,
		"version": cfg.App.Version,
	})

	// STEP 2: DATABASE
	db := database.NewPostgresDB(config.LoadDatabaseConfig(cfg))
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// STEP 3-5: DOMAIN LAYERS
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.PeopleRepo = peopleRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.PeopleService = peopleService.NewPeopleService(c.PeopleRepo, c.DB.Pool)
}

func (c *Container) initHandlers() {
	c.PeopleHandler = peopleHandler.NewHandler(c.PeopleService)
}

// HealthCheck reports whether the pool can still serve a trivial query.
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("database not initialized")
	}
	return c.DB.HealthCheck(ctx)
}

// Cleanup releases resources on shutdown. Safe to call more than once.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.DB != nil {
		if stats, err := c.DB.Stats(); err == nil {
			log.Info().
				Int64("acquire_count", stats.AcquireCount).
				Dur("avg_acquire", stats.AvgAcquireDuration()).
				Int64("empty_acquire_count", stats.EmptyAcquireCount).
				Int32("total_conns", stats.TotalConns).
				Msg("Database pool stats")
		}
		c.DB.Close()
	}

	log.Info().Msg("Container cleanup completed")
}
