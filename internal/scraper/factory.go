package scraper

import (
	"fmt"

	"prodcopy-utils/internal/config"
	"prodcopy-utils/internal/scraper/engines/static"
)

// DefaultScraperFactory creates scraper instances based on engine type
type DefaultScraperFactory struct {
	config *config.Config
}

// NewScraperFactory creates a new scraper factory
func NewScraperFactory(cfg *config.Config) ScraperFactory {
	return &DefaultScraperFactory{config: cfg}
}

// CreateScraper creates a new scraper instance for the given engine
func (f *DefaultScraperFactory) CreateScraper(engine string) (Scraper, error) {
	switch engine {
	case "", "static", "auto":
		return static.NewStaticEngine(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported scraper engine: %s", engine)
	}
}

// GetSupportedEngines returns a list of supported engine types
func (f *DefaultScraperFactory) GetSupportedEngines() []string {
	return []string{"static"}
}
