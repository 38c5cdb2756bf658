package prompts

import (
	"encoding/json"
	"strings"

	"prodcopy-utils/pkg/models"
)

// Context carries the values available for placeholder substitution.
// Scraped fields are set up front; generated fields (ProductTitle,
// MetaDescription, ...) are merged in as the pipeline produces them.
type Context struct {
	URL               string
	Domain            string
	Title             string
	Description       string
	Price             string
	Features          []string
	Specifications    map[string]string
	AdditionalContent []string
	Images            []models.ProductImage
	SEOData           models.SEOData
	BusinessInfo      models.BusinessInfo
	ProductCategory   string
	TargetMarket      string
	BusinessName      string

	BusinessResearch    string
	ProductTitle        string
	MetaDescription     string
	Introduction        string
	TechnicalSpecs      map[string]string
	SpecificationsTable string
	UseCases            string
	FeaturesBenefits    string
}

// NewContext builds a render context from a scraped record
func NewContext(record *models.ScrapedRecord, businessName string) *Context {
	ctx := &Context{
		URL:               record.URL,
		Domain:            record.Domain,
		Title:             record.Title,
		Description:       record.Description,
		Price:             record.Price,
		Features:          record.Features,
		Specifications:    record.Specifications,
		AdditionalContent: record.AdditionalContent,
		Images:            record.Images,
		SEOData:           record.SEOData,
		BusinessInfo:      record.BusinessInfo,
		ProductCategory:   record.ProductDetails.Category,
		BusinessName:      businessName,
	}

	// Caller-supplied values override what was scraped
	if record.ProvidedProductName != "" {
		ctx.Title = record.ProvidedProductName
	}
	if record.ProvidedCategory != "" {
		ctx.ProductCategory = record.ProvidedCategory
	}

	return ctx
}

// Render substitutes placeholder tokens in a template. String values are
// substituted directly, structured values are JSON-serialized, and
// absent values render as empty strings. Text outside tokens is
// untouched.
func Render(tpl Template, ctx *Context) Template {
	replacer := ctx.replacer()
	return Template{
		System: replacer.Replace(tpl.System),
		User:   replacer.Replace(tpl.User),
	}
}

func (c *Context) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"{URL}", c.URL,
		"{DOMAIN}", c.Domain,
		"{TITLE}", c.Title,
		"{DESCRIPTION}", c.Description,
		"{PRICE}", c.Price,
		"{FEATURES}", jsonValue(c.Features),
		"{SPECIFICATIONS}", jsonValue(c.Specifications),
		"{ADDITIONAL_CONTENT}", jsonValue(c.AdditionalContent),
		"{IMAGES}", jsonValue(c.Images),
		"{SEO_DATA}", jsonValue(c.SEOData),
		"{BUSINESS_INFO}", jsonValue(c.BusinessInfo),
		"{PRODUCT_CATEGORY}", c.ProductCategory,
		"{TARGET_MARKET}", c.TargetMarket,
		"{BUSINESS_NAME}", c.BusinessName,
		"{BUSINESS_RESEARCH}", c.BusinessResearch,
		"{PRODUCT_TITLE}", c.ProductTitle,
		"{META_DESCRIPTION}", c.MetaDescription,
		"{INTRO_PARAGRAPH}", c.Introduction,
		"{TECHNICAL_SPECS}", jsonValue(c.TechnicalSpecs),
		"{SPECIFICATIONS_TABLE}", c.SpecificationsTable,
		"{USE_CASES}", c.UseCases,
		"{FEATURES_BENEFITS}", c.FeaturesBenefits,
	)
}

// jsonValue serializes a structured value for prompt embedding.
// Nil and empty collections render as empty strings, not "null".
func jsonValue(v interface{}) string {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return ""
		}
	case map[string]string:
		if len(val) == 0 {
			return ""
		}
	case []models.ProductImage:
		if len(val) == 0 {
			return ""
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
