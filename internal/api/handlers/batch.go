package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"prodcopy-utils/internal/config"
	"prodcopy-utils/internal/generator"
	"prodcopy-utils/internal/logging"
	"prodcopy-utils/internal/scraper/workers"
	"prodcopy-utils/pkg/models"
	"prodcopy-utils/pkg/utils"
)

// BatchGenerateHandler scrapes and generates content for a list of
// product URLs. Products are processed strictly sequentially in input
// order; one failing product never aborts the batch, and the response
// carries exactly one result per input.
func BatchGenerateHandler(cfg *config.Config, poolManager *workers.PoolManager, gen *generator.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger().WithField("request_id", requestID)

		var req models.BatchGenerateRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind batch request", map[string]interface{}{
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
			logger.Error("Batch request validation failed", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Processing batch generate request", map[string]interface{}{
			"products": len(req.Products),
		})

		results := make([]models.ProductResult, 0, len(req.Products))
		successful := 0

		for i, product := range req.Products {
			logger.Info("Processing batch product", map[string]interface{}{
				"position": i + 1,
				"total":    len(req.Products),
				"url":      product.URL,
			})

			record := scrapeWithFallback(c, poolManager, product.URL, nil, logger)
			record.ProvidedProductName = product.ProductName
			record.ProvidedCategory = product.Category

			content := gen.GenerateContent(c.Request().Context(), record)

			result := models.ProductResult{
				URL:         product.URL,
				ScrapedData: record,
				Content:     content,
				Success:     content.Success,
				Error:       content.Error,
			}
			if result.Success {
				successful++
			}
			results = append(results, result)
		}

		response := models.BatchGenerateResponse{
			Results:        results,
			Successful:     successful,
			Failed:         len(results) - successful,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		}

		logger.Info("Batch generate request completed", map[string]interface{}{
			"products":        len(req.Products),
			"successful":      successful,
			"failed":          len(results) - successful,
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, response)
	}
}
