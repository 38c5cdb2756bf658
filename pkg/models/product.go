package models

// ProductImage is a single product image extracted from a page
type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// BusinessInfo holds company-level signals detected on the page
type BusinessInfo struct {
	CompanyName    string   `json:"company_name"`
	Certifications []string `json:"certifications"`
}

// SEOData captures the page's existing SEO surface
type SEOData struct {
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	MetaKeywords    string   `json:"meta_keywords"`
	H1              []string `json:"h1"`
	H2              []string `json:"h2"`
	H3              []string `json:"h3"`
}

// ProductDetails holds secondary product attributes from microdata
type ProductDetails struct {
	SKU          string `json:"sku"`
	Brand        string `json:"brand"`
	Category     string `json:"category"`
	Availability string `json:"availability"`
	Condition    string `json:"condition"`
}

// ScrapedRecord is the flat extraction result for one product URL.
// Extraction never fails the pipeline: on any fetch or parse problem the
// record degrades to defaults with Fallback set and Error populated.
type ScrapedRecord struct {
	URL               string            `json:"url"`
	Domain            string            `json:"domain"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Price             string            `json:"price"`
	Currency          string            `json:"currency"`
	Images            []ProductImage    `json:"images"`
	Features          []string          `json:"features"`
	Specifications    map[string]string `json:"specifications"`
	AdditionalContent []string          `json:"additional_content"`
	Breadcrumb        []string          `json:"breadcrumb"`
	BusinessInfo      BusinessInfo      `json:"business_info"`
	SEOData           SEOData           `json:"seo_data"`
	ProductDetails    ProductDetails    `json:"product_details"`
	FullTextContent   string            `json:"full_text_content,omitempty"`

	// Caller-supplied overrides from spreadsheet upload
	ProvidedProductName string `json:"provided_product_name,omitempty"`
	ProvidedCategory    string `json:"provided_category,omitempty"`

	Error    string `json:"error,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// NewFallbackRecord builds the minimal degraded record used when a scrape
// fails entirely. Same shape as a partial scrape, distinguished only by the
// error message and the fallback flag.
func NewFallbackRecord(url string, err error) *ScrapedRecord {
	rec := &ScrapedRecord{
		URL:            url,
		Title:          "Product",
		Description:    "Unable to fully scrape the page",
		Images:         []ProductImage{},
		Features:       []string{},
		Specifications: map[string]string{},
		Fallback:       true,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	return rec
}
