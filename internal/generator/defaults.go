package generator

import (
	"fmt"

	"prodcopy-utils/pkg/models"
	"prodcopy-utils/pkg/utils"
)

// Section defaults used whenever a generation call or its parse fails.
// Every field of GeneratedContent has a default so the result is always
// fully populated.

const defaultBusinessResearch = `EXECUTIVE SUMMARY
Established supplier of specialty ingredients serving B2B food and beverage manufacturers. Detailed research was unavailable for this product; content is generated from scraped page data only.

CONTENT RECOMMENDATIONS
- Key Messages to Emphasize: product quality, reliable supply, technical support
- Compliance/Regulatory Mentions: food grade standards and certifications where stated on the source page`

const defaultCallToActions = "Request your free sample today for formulation testing. Our food technologists provide expert guidance to optimize your applications. Download the technical data sheet, request a quote for bulk orders, or complete our online enquiry form - samples ship within 24 hours."

var defaultFeatures = []string{
	"Premium quality construction",
	"Exceptional value for money",
	"Trusted by thousands of customers",
	"Industry-leading performance",
	"Comprehensive warranty included",
}

var defaultSpecs = map[string]string{
	"Product Form":         "Powder/Liquid/Paste (contact for specific form)",
	"Packaging":            "25kg bags/drums (custom packaging available)",
	"Shelf Life":           "12-24 months from production date",
	"Storage Conditions":   "Store in cool, dry conditions below 25°C",
	"Certifications":       "BRC Grade A, FSSC 22000, ISO 9001:2015",
	"Allergen Status":      "Free from 14 EU declarable allergens",
	"Country of Origin":    "Multiple origins (contact for specific batch)",
	"Minimum Order":        "25kg (pallet quantities preferred)",
	"Lead Time":            "3-5 working days (stock dependent)",
	"pH Range":             "Product specific (technical data available)",
	"Microbiological":      "Meets EU food safety standards",
	"GMO Status":           "Non-GMO (certification available)",
	"Kosher/Halal":         "Certification available on request",
	"Processing Method":    "Contact for processing details",
	"Typical Applications": "Food & beverage manufacturing",
}

var defaultUseCases = []string{
	"Beverage manufacturers - Fortify juice drinks and smoothies with natural vitamin content for premium health-focused product lines",
	"Bakery producers - Enhance nutritional profiles of breakfast bars and cereals meeting clean label requirements for retail chains",
	"Dairy processors - Develop functional yogurts and probiotic drinks targeting specific health benefits with stable ingredient integration",
	"Confectionery manufacturers - Create vitamin-enriched gummies and functional sweets for growing wellness confectionery market",
	"Nutraceutical formulators - Produce dietary supplements and functional foods meeting pharmaceutical-grade quality standards",
	"Private label manufacturers - Develop own-brand health products for major supermarket chains requiring consistent quality",
	"Contract manufacturers - Meet diverse client specifications with versatile ingredient suitable for multiple applications",
}

var defaultFAQs = []models.FAQ{
	{
		Question: "What packaging options are available?",
		Answer:   "Standard packaging is 25kg bags or drums, with custom packaging available on request. Pallet quantities are preferred for bulk orders.",
	},
	{
		Question: "What certifications does this product have?",
		Answer:   "Products are supplied to food grade standards; certificates of analysis and compliance documentation are available on request.",
	},
	{
		Question: "How should this product be stored?",
		Answer:   "Store in cool, dry conditions below 25°C away from direct sunlight. Refer to the technical data sheet for product-specific guidance.",
	},
	{
		Question: "Can I request a sample before ordering?",
		Answer:   "Yes, free samples are available for formulation testing. Samples typically ship within 24 hours of the request.",
	},
}

// defaultTitle falls back to the scraped or provided title
func defaultTitle(record *models.ScrapedRecord) string {
	if record.ProvidedProductName != "" {
		return record.ProvidedProductName
	}
	if record.Title != "" && record.Title != "Product" {
		return record.Title
	}
	return "Premium Product - High Quality & Best Value"
}

// defaultMetaDescription composes a meta description from scraped data
func defaultMetaDescription(record *models.ScrapedRecord, title string) string {
	description := record.Description
	if description == "" {
		description = "Best quality and value"
	}
	return utils.TruncateString(fmt.Sprintf("Discover %s. %s. Request a quote today.", title, utils.TruncateString(description, 100)), 160)
}

// defaultIntroduction falls back to the scraped description
func defaultIntroduction(record *models.ScrapedRecord) string {
	if record.Description != "" {
		return record.Description
	}
	return "This exceptional product delivers outstanding value and quality, designed to meet your needs and exceed expectations."
}

// defaultFeaturesFor prefers scraped features over the canned list
func defaultFeaturesFor(record *models.ScrapedRecord, max int) []string {
	if len(record.Features) > 0 {
		features := record.Features
		if max > 0 && len(features) > max {
			features = features[:max]
		}
		return features
	}
	return defaultFeatures
}

// defaultSpecsFor merges scraped specifications over the canned
// defaults; scraped values win on key collisions
func defaultSpecsFor(record *models.ScrapedRecord) map[string]string {
	specs := make(map[string]string, len(defaultSpecs)+len(record.Specifications))
	for k, v := range defaultSpecs {
		specs[k] = v
	}
	for k, v := range record.Specifications {
		specs[k] = v
	}
	return specs
}

// defaultKeywordsFor builds a minimal keyword strategy from the title
func defaultKeywordsFor(title string) map[string][]string {
	return map[string][]string{
		KeywordPrimary:    {title},
		KeywordCommercial: {fmt.Sprintf("buy %s", title), fmt.Sprintf("%s supplier", title), fmt.Sprintf("bulk %s", title)},
		KeywordLongTail:   {fmt.Sprintf("best %s online", title), fmt.Sprintf("%s wholesale price", title)},
		KeywordSemantic:   {"quality", "value", "professional", "trusted", "reliable"},
		KeywordIndustry:   {"food grade", "certified supplier", "technical data sheet"},
	}
}

// parseWithDefault applies a parser to section output, substituting the
// default when the section failed or the parse produced nothing.
func parseWithDefault[T any](raw string, parse func(string) T, isEmpty func(T) bool, fallback T) T {
	if raw == "" {
		return fallback
	}
	parsed := parse(raw)
	if isEmpty(parsed) {
		return fallback
	}
	return parsed
}
