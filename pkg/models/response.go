package models

import "time"

// ScrapeResponse represents the response from a scrape request
type ScrapeResponse struct {
	Success        bool           `json:"success"`
	Record         *ScrapedRecord `json:"record,omitempty"`
	Error          string         `json:"error,omitempty"`
	ProcessingTime time.Duration  `json:"processing_time"`
	RequestID      string         `json:"request_id"`
}

// GenerateResponse represents the response from a single-product
// content generation request
type GenerateResponse struct {
	Success        bool              `json:"success"`
	Content        *GeneratedContent `json:"content,omitempty"`
	Error          string            `json:"error,omitempty"`
	ProcessingTime time.Duration     `json:"processing_time"`
	RequestID      string            `json:"request_id"`
}

// BatchGenerateResponse represents the response from a batch generation
// request. Results holds exactly one entry per input product, in input order.
type BatchGenerateResponse struct {
	Results        []ProductResult `json:"results"`
	Successful     int             `json:"successful"`
	Failed         int             `json:"failed"`
	ProcessingTime time.Duration   `json:"processing_time"`
	RequestID      string          `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
