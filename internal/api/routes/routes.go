package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"prodcopy-utils/internal/api/handlers"
	"prodcopy-utils/internal/api/middleware"
	"prodcopy-utils/internal/config"
	"prodcopy-utils/internal/generator"
	"prodcopy-utils/internal/llm"
	"prodcopy-utils/internal/scraper/workers"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, poolManager *workers.PoolManager, llmManager *llm.Manager, gen *generator.Generator) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig(cfg))
	e.Use(middleware.RequestValidation())
	// Generation endpoints chain many model calls; give them longer
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 5*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(poolManager, llmManager))
		health.GET("/live", handlers.LivenessHandler)
		health.GET("/workers", handlers.WorkerHealthHandler(poolManager))
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(poolManager, llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/scrape", handlers.ScrapeHandler(cfg, poolManager))
		v1.POST("/generate", handlers.GenerateHandler(cfg, gen))
		v1.POST("/generate/batch", handlers.BatchGenerateHandler(cfg, poolManager, gen))

		// Worker monitoring routes
		workerRoutes := v1.Group("/workers")
		{
			workerRoutes.GET("/stats", handlers.WorkerStatsHandler(poolManager))
			workerRoutes.GET("/status", handlers.DetailedWorkerStatusHandler(poolManager))
		}

		// Domain-specific routes
		domains := v1.Group("/domains")
		{
			domains.GET("/:domain/stats", handlers.DomainStatsHandler(poolManager))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "ProdCopy Content Generator",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
