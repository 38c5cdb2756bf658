package models

import "time"

// ScrapeRequest represents the request payload for scraping a product page
type ScrapeRequest struct {
	URL         string         `json:"url" validate:"required,url"`
	ProductName string         `json:"product_name,omitempty"`
	Category    string         `json:"category,omitempty"`
	Options     *ScrapeOptions `json:"options,omitempty"`
}

// ScrapeOptions provides additional configuration for scraping requests
type ScrapeOptions struct {
	Timeout   time.Duration `json:"timeout,omitempty"`    // Request timeout
	UserAgent string        `json:"user_agent,omitempty"` // Custom user agent
}

// GenerateRequest represents the request payload for generating content
// for a single already-scraped product
type GenerateRequest struct {
	URL         string         `json:"url" validate:"required,url"`
	ScrapedData *ScrapedRecord `json:"scraped_data" validate:"required"`
	ProductName string         `json:"product_name,omitempty"`
	Category    string         `json:"category,omitempty"`
}

// BatchProduct is one entry of a batch generation request
type BatchProduct struct {
	URL         string `json:"url" validate:"required,url"`
	ProductName string `json:"product_name,omitempty"`
	Category    string `json:"category,omitempty"`
}

// BatchGenerateRequest represents the request payload for scraping and
// generating content for a list of product URLs
type BatchGenerateRequest struct {
	Products []BatchProduct `json:"products" validate:"required,min=1,dive"`
}
