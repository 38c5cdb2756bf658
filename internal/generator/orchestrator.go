package generator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"prodcopy-utils/internal/config"
	"prodcopy-utils/internal/llm"
	"prodcopy-utils/internal/logging"
	"prodcopy-utils/internal/prompts"
	"prodcopy-utils/pkg/models"
)

// Completer is the slice of the LLM manager the generator needs
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
	IsHealthy() bool
}

// Generator orchestrates the content generation pipeline for one
// scraped product: business research, then the sequential core sections,
// then the independent sections in parallel, then parsing and default
// substitution. The returned content is always fully populated.
type Generator struct {
	config *config.Config
	llm    Completer
	logger logging.Logger
}

// NewGenerator creates a new content generator
func NewGenerator(cfg *config.Config, completer Completer) *Generator {
	return &Generator{
		config: cfg,
		llm:    completer,
		logger: logging.GetGlobalLogger(),
	}
}

// parallelSections are generated concurrently after the core sections;
// their prompts depend only on research + title + meta + intro.
var parallelSections = []prompts.Section{
	prompts.SectionFeaturesAndBenefits,
	prompts.SectionTechnicalSpecs,
	prompts.SectionUseCases,
	prompts.SectionSEOKeywords,
	prompts.SectionFAQs,
	prompts.SectionCallToActions,
}

// GenerateContent runs the full pipeline for one scraped record. It
// never returns nil: section failures degrade to defaults, and only a
// fully failed run is marked unsuccessful.
func (g *Generator) GenerateContent(ctx context.Context, record *models.ScrapedRecord) *models.GeneratedContent {
	start := time.Now()

	category := record.ProvidedCategory
	if category == "" {
		category = record.ProductDetails.Category
	}

	library := prompts.LibraryForCategory(category, g.config.Generator.BusinessName)
	pctx := prompts.NewContext(record, g.config.Generator.BusinessName)

	g.logger.Info("Starting content generation", map[string]interface{}{
		"url":      record.URL,
		"category": category,
		"library":  library.Name,
	})

	content := &models.GeneratedContent{ProductURL: record.URL}
	var succeeded, failed int

	// Stage 1: business research feeds every later prompt
	research, err := g.generateSection(ctx, library, prompts.SectionBusinessResearch, pctx,
		g.config.Generator.ResearchTemperature, g.config.Generator.ResearchMaxTokens)
	if err != nil {
		g.logger.Warn("Business research failed, using minimal default", map[string]interface{}{
			"url":   record.URL,
			"error": err.Error(),
		})
		research = defaultBusinessResearch
		failed++
	} else {
		succeeded++
	}
	pctx.BusinessResearch = research
	content.BusinessResearch = research

	// Stage 2: sequential core sections, each merged into the context
	// before the next renders
	title, err := g.generateSection(ctx, library, prompts.SectionProductTitle, pctx, 0, 0)
	if err != nil || title == "" {
		title = defaultTitle(record)
		failed++
	} else {
		succeeded++
	}
	pctx.ProductTitle = title
	content.ProductTitle = title
	content.MetaTitle = title

	meta, err := g.generateSection(ctx, library, prompts.SectionMetaDescription, pctx, 0, 0)
	if err != nil || meta == "" {
		meta = defaultMetaDescription(record, title)
		failed++
	} else {
		succeeded++
	}
	pctx.MetaDescription = meta
	content.MetaDescription = meta

	intro, err := g.generateSection(ctx, library, prompts.SectionIntroduction, pctx, 0, 0)
	if err != nil || intro == "" {
		intro = defaultIntroduction(record)
		failed++
	} else {
		succeeded++
	}
	pctx.Introduction = intro
	content.Introduction = intro

	// Stage 3: independent sections in parallel; all complete before
	// any parsing happens
	raw := make([]string, len(parallelSections))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, section := range parallelSections {
		wg.Add(1)
		go func(slot int, section prompts.Section) {
			defer wg.Done()
			text, err := g.generateSection(ctx, library, section, pctx, 0, 0)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				g.logger.Warn("Section generation failed, default will apply", map[string]interface{}{
					"url":     record.URL,
					"section": string(section),
					"error":   err.Error(),
				})
				failed++
				return
			}
			raw[slot] = text
			succeeded++
		}(i, section)
	}
	wg.Wait()

	// Stage 4: parse each section, substituting defaults on failure
	content.FeaturesAndBenefits = parseWithDefault(raw[0],
		func(s string) []string { return ParseBullets(s, g.config.Generator.MaxFeatureBullets) },
		func(v []string) bool { return len(v) == 0 },
		defaultFeaturesFor(record, g.config.Generator.MaxFeatureBullets))

	content.TechnicalSpecs = parseWithDefault(raw[1],
		func(s string) map[string]string { return ParseSpecTable(s, g.config.Generator.MinSpecRows, 0) },
		func(v map[string]string) bool { return len(v) == 0 },
		defaultSpecsFor(record))

	content.UseCases = parseWithDefault(raw[2],
		func(s string) []string { return ParseBullets(s, g.config.Generator.MaxUseCases) },
		func(v []string) bool { return len(v) == 0 },
		defaultUseCases)

	content.SEOKeywords = parseWithDefault(raw[3],
		ParseKeywordStrategy,
		func(v map[string][]string) bool { return v == nil },
		defaultKeywordsFor(title))

	content.FAQs = parseWithDefault(raw[4],
		func(s string) []models.FAQ { return ParseFAQs(s, g.config.Generator.MaxFAQs) },
		func(v []models.FAQ) bool { return len(v) == 0 },
		defaultFAQs)

	content.CallToActions = strings.TrimSpace(raw[5])
	if content.CallToActions == "" {
		content.CallToActions = defaultCallToActions
	}

	// Stage 5: structured data is always built deterministically from
	// final values, never from model output
	content.StructuredData = BuildStructuredData(content, record)

	content.Success = succeeded > 0
	if !content.Success {
		content.Error = "content generation unavailable: all completion calls failed, defaults applied"
	}

	g.logger.Info("Content generation completed", map[string]interface{}{
		"url":                record.URL,
		"sections_succeeded": succeeded,
		"sections_failed":    failed,
		"processing_time":    time.Since(start).String(),
	})

	return content
}

// generateSection renders and runs one section's prompt. On a failed
// call it makes exactly one more attempt against the fallback model
// before giving up on the section.
func (g *Generator) generateSection(ctx context.Context, library *prompts.Library, section prompts.Section, pctx *prompts.Context, temperature float32, maxTokens int) (string, error) {
	tpl, ok := library.ForSection(section)
	if !ok {
		return "", fmt.Errorf("library %q has no template for section %q", library.Name, section)
	}

	rendered := prompts.Render(tpl, pctx)
	req := llm.CompletionRequest{
		System:      rendered.System,
		User:        rendered.User,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	text, err := g.llm.Complete(ctx, req)
	if err == nil {
		return strings.TrimSpace(text), nil
	}

	if g.config.LLM.FallbackModel == "" {
		return "", err
	}

	g.logger.Debug("Retrying section with fallback model", map[string]interface{}{
		"section": string(section),
		"model":   g.config.LLM.FallbackModel,
		"error":   err.Error(),
	})

	req.Model = g.config.LLM.FallbackModel
	text, fallbackErr := g.llm.Complete(ctx, req)
	if fallbackErr != nil {
		return "", fmt.Errorf("section %s failed on primary and fallback models: %w", section, fallbackErr)
	}

	return strings.TrimSpace(text), nil
}
