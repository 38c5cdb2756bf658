package static

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"

	"prodcopy-utils/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scraper.UserAgent = "test-agent"
	cfg.Scraper.RequestTimeout = 5 * time.Second
	cfg.Scraper.MaxRedirects = 5
	cfg.Scraper.MaxImages = 10
	cfg.Scraper.MaxSpecRows = 20
	cfg.Scraper.MaxFeatures = 20
	cfg.Scraper.MaxParagraphs = 10
	cfg.Scraper.MaxFullTextSize = 10000
	return cfg
}

const productPage = `<!DOCTYPE html>
<html>
<head>
<title>Citric Acid Powder | Acme Ingredients</title>
<meta name="description" content="Anhydrous citric acid powder for food and beverage manufacturing.">
<meta name="keywords" content="citric acid, food acid, E330">
<meta property="og:site_name" content="Acme Ingredients Ltd">
<script>var cruft = "should never appear in text";</script>
<style>.price { color: red; }</style>
</head>
<body>
<nav class="breadcrumb"><li>Home</li><li>Acidulants</li><li>Citric Acid</li></nav>
<h1>Citric Acid Powder</h1>
<h2>Product Overview</h2>
<h3>Why choose Acme</h3>
<div class="product-price">£45.00</div>
<div class="product-gallery">
<img src="/images/citric-1.jpg" alt="Citric acid bag">
<img data-src="https://cdn.acme.example/citric-2.jpg" alt="Close up">
<img src="/images/citric-1.jpg" alt="Duplicate">
</div>
<ul class="features">
<li>USP grade purity of 99.5% minimum</li>
<li>ok</li>
<li>Non-GMO and allergen free certified material</li>
</ul>
<table>
<tr><th>Specification</th><th>Details</th></tr>
<tr><td>Assay</td><td>99.5% min</td></tr>
<tr><td>Form</td><td>Anhydrous powder</td></tr>
<tr><td>E Number</td><td>E330</td></tr>
</table>
<div class="product-info">
<p>Our citric acid is manufactured under FSSC 22000 and ISO 9001 certified conditions for consistent quality.</p>
<p>short</p>
</div>
<span itemprop="sku">CIT-25KG</span>
</body>
</html>`

func TestScrapeProductExtraction(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	url := "https://acme.example/products/citric-acid"
	httpmock.RegisterResponder("GET", url, httpmock.NewStringResponder(200, productPage))

	engine := NewStaticEngine(testConfig())
	record, err := engine.ScrapeProduct(context.Background(), url, nil)
	if err != nil {
		t.Fatalf("ScrapeProduct returned error: %v", err)
	}

	if record.Title != "Citric Acid Powder" {
		t.Errorf("title = %q, want %q", record.Title, "Citric Acid Powder")
	}
	if record.Domain != "acme.example" {
		t.Errorf("domain = %q, want acme.example", record.Domain)
	}
	if !strings.Contains(record.Description, "Anhydrous citric acid") {
		t.Errorf("description = %q, want meta description", record.Description)
	}
	if record.Price != "£45.00" {
		t.Errorf("price = %q, want £45.00", record.Price)
	}
	if record.Currency != "£" {
		t.Errorf("currency = %q, want £", record.Currency)
	}

	// Duplicate image collapses, relative URL resolves against the page
	if len(record.Images) != 2 {
		t.Fatalf("images = %d, want 2 (deduped)", len(record.Images))
	}
	if record.Images[0].URL != "https://acme.example/images/citric-1.jpg" {
		t.Errorf("image[0] = %q, want resolved absolute URL", record.Images[0].URL)
	}
	if record.Images[1].URL != "https://cdn.acme.example/citric-2.jpg" {
		t.Errorf("image[1] = %q, want data-src URL", record.Images[1].URL)
	}

	// The two-character "ok" entry is below the length floor
	if len(record.Features) != 2 {
		t.Fatalf("features = %d, want 2, got %v", len(record.Features), record.Features)
	}

	// Header row skipped, data rows kept
	if len(record.Specifications) != 3 {
		t.Fatalf("specifications = %d, want 3, got %v", len(record.Specifications), record.Specifications)
	}
	if record.Specifications["Assay"] != "99.5% min" {
		t.Errorf("Assay spec = %q", record.Specifications["Assay"])
	}

	if len(record.AdditionalContent) != 1 {
		t.Errorf("additional content = %d, want 1 (short paragraph dropped)", len(record.AdditionalContent))
	}

	if len(record.Breadcrumb) != 3 {
		t.Errorf("breadcrumb = %v, want 3 entries", record.Breadcrumb)
	}
	if record.ProductDetails.Category != "Acidulants" {
		t.Errorf("category = %q, want Acidulants", record.ProductDetails.Category)
	}
	if record.ProductDetails.SKU != "CIT-25KG" {
		t.Errorf("sku = %q, want CIT-25KG", record.ProductDetails.SKU)
	}

	if record.BusinessInfo.CompanyName != "Acme Ingredients Ltd" {
		t.Errorf("company = %q", record.BusinessInfo.CompanyName)
	}
	certs := strings.Join(record.BusinessInfo.Certifications, ",")
	for _, want := range []string{"FSSC 22000", "ISO 9001", "Non-GMO"} {
		if !strings.Contains(certs, want) {
			t.Errorf("certifications missing %q, got %v", want, record.BusinessInfo.Certifications)
		}
	}

	if record.SEOData.MetaTitle != "Citric Acid Powder | Acme Ingredients" {
		t.Errorf("meta title = %q", record.SEOData.MetaTitle)
	}
	if len(record.SEOData.H1) != 1 || len(record.SEOData.H2) != 1 || len(record.SEOData.H3) != 1 {
		t.Errorf("headings = %d/%d/%d, want 1/1/1", len(record.SEOData.H1), len(record.SEOData.H2), len(record.SEOData.H3))
	}

	if strings.Contains(record.FullTextContent, "should never appear") {
		t.Error("script content leaked into full text")
	}
	if record.Fallback {
		t.Error("fallback flag set on successful scrape")
	}
}

func TestScrapeProductImageCap(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var sb strings.Builder
	sb.WriteString("<html><body><div class='product-gallery'>")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&sb, "<img src='/img/%d.jpg' alt='img %d'>", i, i)
	}
	sb.WriteString("</div></body></html>")

	url := "https://acme.example/many-images"
	httpmock.RegisterResponder("GET", url, httpmock.NewStringResponder(200, sb.String()))

	engine := NewStaticEngine(testConfig())
	record, err := engine.ScrapeProduct(context.Background(), url, nil)
	if err != nil {
		t.Fatalf("ScrapeProduct returned error: %v", err)
	}

	if len(record.Images) != 10 {
		t.Errorf("images = %d, want capped at 10", len(record.Images))
	}
}

func TestScrapeProductFetchFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", 404},
		{"server error", 500},
		{"forbidden", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Activate()
			defer httpmock.DeactivateAndReset()

			url := "https://blocked.example/product"
			httpmock.RegisterResponder("GET", url, httpmock.NewStringResponder(tt.status, "nope"))

			engine := NewStaticEngine(testConfig())
			record, err := engine.ScrapeProduct(context.Background(), url, nil)
			if err == nil {
				t.Fatal("expected error for non-2xx status")
			}
			if record != nil {
				t.Error("expected nil record on fetch failure")
			}
		})
	}
}

func TestScrapeProductTitleFallbacks(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "page title split on pipe",
			html: "<html><head><title>Vanilla Extract | Acme</title></head><body></body></html>",
			want: "Vanilla Extract",
		},
		{
			name: "og title",
			html: `<html><head><meta property="og:title" content="Pectin Blend"></head><body></body></html>`,
			want: "Pectin Blend",
		},
		{
			name: "nothing found",
			html: "<html><body><div>bare page</div></body></html>",
			want: "Product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Activate()
			defer httpmock.DeactivateAndReset()

			url := "https://titles.example/p"
			httpmock.RegisterResponder("GET", url, httpmock.NewStringResponder(200, tt.html))

			engine := NewStaticEngine(testConfig())
			record, err := engine.ScrapeProduct(context.Background(), url, nil)
			if err != nil {
				t.Fatalf("ScrapeProduct returned error: %v", err)
			}
			if record.Title != tt.want {
				t.Errorf("title = %q, want %q", record.Title, tt.want)
			}
		})
	}
}
