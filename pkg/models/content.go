package models

// FAQ is a single generated question/answer pair
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GeneratedContent is the assembled marketing copy for one product.
// Every field is guaranteed populated by the time it leaves the generator:
// sections that fail generation or parsing are overwritten with a
// section-specific default, never left empty.
type GeneratedContent struct {
	ProductTitle        string                 `json:"product_title"`
	MetaTitle           string                 `json:"meta_title"`
	MetaDescription     string                 `json:"meta_description"`
	ProductURL          string                 `json:"product_url"`
	Introduction        string                 `json:"introduction"`
	FeaturesAndBenefits []string               `json:"features_and_benefits"`
	TechnicalSpecs      map[string]string      `json:"technical_specs"`
	UseCases            []string               `json:"use_cases"`
	SEOKeywords         map[string][]string    `json:"seo_keywords"`
	FAQs                []FAQ                  `json:"faqs"`
	CallToActions       string                 `json:"call_to_actions"`
	StructuredData      map[string]interface{} `json:"structured_data"`
	BusinessResearch    string                 `json:"business_research"`
	Success             bool                   `json:"success"`
	Error               string                 `json:"error,omitempty"`
}

// ProductResult pairs the scraped record and generated content for one
// input URL inside a batch response.
type ProductResult struct {
	URL         string            `json:"url"`
	ScrapedData *ScrapedRecord    `json:"scraped_data,omitempty"`
	Content     *GeneratedContent `json:"content,omitempty"`
	Success     bool              `json:"success"`
	Error       string            `json:"error,omitempty"`
}
