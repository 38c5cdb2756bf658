package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"prodcopy-utils/internal/config"
	"prodcopy-utils/internal/logging"
	"prodcopy-utils/internal/scraper/workers"
	"prodcopy-utils/pkg/models"
	"prodcopy-utils/pkg/utils"
)

var validate = validator.New()

// ScrapeHandler handles product scraping requests using the worker pool.
// Scrape failures never surface as 5xx: the response degrades to a
// fallback record with the error message and fallback flag set.
func ScrapeHandler(cfg *config.Config, poolManager *workers.PoolManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger().WithField("request_id", requestID)

		var req models.ScrapeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind scrape request", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Scrape request validation failed", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Processing scrape request", map[string]interface{}{
			"url": req.URL,
		})

		record := scrapeWithFallback(c, poolManager, req.URL, req.Options, logger)
		record.ProvidedProductName = req.ProductName
		record.ProvidedCategory = req.Category

		response := models.ScrapeResponse{
			Success:        !record.Fallback,
			Record:         record,
			Error:          record.Error,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		}

		logger.Info("Scrape request completed", map[string]interface{}{
			"url":             req.URL,
			"fallback":        record.Fallback,
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, response)
	}
}

// scrapeWithFallback submits a scrape job and converts every failure
// path into a degraded fallback record
func scrapeWithFallback(c echo.Context, poolManager *workers.PoolManager, url string, options *models.ScrapeOptions, logger logging.Logger) *models.ScrapedRecord {
	result, err := poolManager.SubmitJob(c.Request().Context(), url, options)
	if err != nil {
		logger.Warn("Scrape job submission failed, returning fallback record", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return models.NewFallbackRecord(url, err)
	}

	if result.Error != nil {
		logger.Warn("Scrape job failed, returning fallback record", map[string]interface{}{
			"url":   url,
			"error": result.Error.Error(),
		})
		return models.NewFallbackRecord(url, result.Error)
	}

	return result.Record
}
