package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"prodcopy-utils/internal/config"
	"prodcopy-utils/internal/generator"
	"prodcopy-utils/internal/logging"
	"prodcopy-utils/pkg/models"
	"prodcopy-utils/pkg/utils"
)

// GenerateHandler handles content generation for a single
// already-scraped product
func GenerateHandler(cfg *config.Config, gen *generator.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger().WithField("request_id", requestID)

		var req models.GenerateRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind generate request", map[string]interface{}{
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
			logger.Error("Generate request validation failed", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		record := req.ScrapedData
		if record.URL == "" {
			record.URL = req.URL
		}
		if req.ProductName != "" {
			record.ProvidedProductName = req.ProductName
		}
		if req.Category != "" {
			record.ProvidedCategory = req.Category
		}

		logger.Info("Processing generate request", map[string]interface{}{
			"url": req.URL,
		})

		content := gen.GenerateContent(c.Request().Context(), record)

		response := models.GenerateResponse{
			Success:        content.Success,
			Content:        content,
			Error:          content.Error,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		}

		logger.Info("Generate request completed", map[string]interface{}{
			"url":             req.URL,
			"success":         content.Success,
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, response)
	}
}
