package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"prodcopy-utils/internal/llm"
	"prodcopy-utils/internal/scraper/workers"
	"prodcopy-utils/pkg/models"
)

var startTime = time.Now()

const serviceVersion = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. The service is
// ready when the worker pool is running; a degraded LLM is reported but
// does not block readiness since scrape endpoints still work.
func ReadinessHandler(poolManager *workers.PoolManager, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api":     "ok",
			"workers": "ok",
			"llm":     "ok",
		}
		status := "ready"
		httpStatus := http.StatusOK

		if !poolManager.IsHealthy() {
			checks["workers"] = "unavailable"
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		}
		if !llmManager.IsHealthy() {
			checks["llm"] = "degraded"
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(httpStatus, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(poolManager *workers.PoolManager, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api":     "operational",
			"workers": "operational",
			"llm":     llmManager.GetProviderName(),
		}
		if !poolManager.IsHealthy() {
			checks["workers"] = "unavailable"
		}
		if !llmManager.IsHealthy() {
			checks["llm"] = "degraded"
		}

		response := models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}
