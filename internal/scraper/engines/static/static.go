package static

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"prodcopy-utils/internal/config"
	"prodcopy-utils/internal/logging"
	"prodcopy-utils/pkg/models"
	"prodcopy-utils/pkg/utils"
)

// StaticEngine scrapes product pages over plain HTTP and parses the
// static HTML with goquery. No JavaScript execution.
type StaticEngine struct {
	config *config.Config
	client *http.Client
	logger logging.Logger
}

// NewStaticEngine creates a new static scraping engine
func NewStaticEngine(cfg *config.Config) *StaticEngine {
	maxRedirects := cfg.Scraper.MaxRedirects

	client := &http.Client{
		Timeout: cfg.Scraper.RequestTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return &StaticEngine{
		config: cfg,
		client: client,
		logger: logging.GetGlobalLogger(),
	}
}

// ScrapeProduct fetches the product page and extracts a structured record.
// A non-nil error means nothing usable was extracted; callers are expected
// to degrade to a fallback record rather than fail the request.
func (s *StaticEngine) ScrapeProduct(ctx context.Context, url string, options *models.ScrapeOptions) (*models.ScrapedRecord, error) {
	start := time.Now()
	s.logger.Info("Starting product scrape", map[string]interface{}{
		"url":    url,
		"engine": "static",
	})

	doc, err := s.fetchDocument(ctx, url, options)
	if err != nil {
		s.logger.Warn("Product page fetch failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return nil, err
	}

	record := s.extractRecord(doc, url)

	s.logger.Info("Product scrape completed", map[string]interface{}{
		"url":             url,
		"title":           record.Title,
		"images":          len(record.Images),
		"features":        len(record.Features),
		"specifications":  len(record.Specifications),
		"processing_time": time.Since(start).String(),
	})

	return record, nil
}

// fetchDocument performs the HTTP GET and parses the response body
func (s *StaticEngine) fetchDocument(ctx context.Context, url string, options *models.ScrapeOptions) (*goquery.Document, error) {
	client := s.client
	if options != nil && options.Timeout > 0 {
		clone := *s.client
		clone.Timeout = options.Timeout
		client = &clone
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, utils.NewScrapingError(fmt.Sprintf("invalid request for %s: %v", url, err))
	}

	userAgent := s.config.Scraper.UserAgent
	if options != nil && options.UserAgent != "" {
		userAgent = options.UserAgent
	}

	// Browser-like headers; bare Go defaults get blocked on many storefronts
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return nil, utils.NewScrapingError(fmt.Sprintf("failed to fetch %s: %v", url, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, utils.NewScrapingError(fmt.Sprintf("unexpected status %d fetching %s", resp.StatusCode, url))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, utils.NewScrapingError(fmt.Sprintf("failed to parse HTML from %s: %v", url, err))
	}

	return doc, nil
}

// Cleanup releases resources held by the engine
func (s *StaticEngine) Cleanup() {
	s.client.CloseIdleConnections()
}

// IsHealthy returns true if the engine can accept jobs
func (s *StaticEngine) IsHealthy() bool {
	return s.client != nil
}
