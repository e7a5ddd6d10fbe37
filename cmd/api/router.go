package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	_ "people-api/docs"
	"people-api/internal/config"
	peopleHandler "people-api/internal/domains/people/handler"
	"people-api/internal/shared/middleware"
	"people-api/pkg/container"
)

const (
	openAPIPath        = "/api-docs/openapi.json"
	healthCheckTimeout = 2 * time.Second
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

func SetupRouter(c *container.Container) *gin.Engine {
	return buildRouter(c.Config, c.PeopleHandler, c)
}

func buildRouter(cfg *config.Config, people *peopleHandler.Handler, health HealthChecker) *gin.Engine {
	router := gin.New()

	// Outermost first: CORS answers preflights before anything else runs,
	// and ErrorBodies sees the final status of everything below it.
	router.Use(
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.SecurityHeaders(),
		middleware.ErrorBodies(),
		middleware.Logger(),
		middleware.RequestID(),
		middleware.Recovery(),
	)

	router.GET("/health", healthCheckHandler(health))
	setupDocsRoutes(router)

	api := router.Group("/api")
	setupPeopleRoutes(api, people)

	return router
}

// ========================================
// PEOPLE ROUTES
// ========================================
func setupPeopleRoutes(api *gin.RouterGroup, h *peopleHandler.Handler) {
	people := api.Group("/people")
	{
		people.GET("", h.List)
		people.POST("", h.Create)
		people.GET("/:id", h.GetByID)
		people.PUT("/:id", h.Update)
		people.DELETE("/:id", h.Delete)
	}
}

// ========================================
// API DOCS
// ========================================
func setupDocsRoutes(router *gin.Engine) {
	router.GET(openAPIPath, func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			log.Error().Err(err).Msg("Failed to render API document")
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})

	router.GET("/swagger-ui/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(openAPIPath)))
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := checker.HealthCheck(ctx); err != nil {
			log.Error().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"database_connected": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{"database_connected": true})
	}
}
