package static

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"prodcopy-utils/pkg/models"
	"prodcopy-utils/pkg/utils"
)

// Ordered selector rules; for scalar fields the first non-empty trimmed
// match wins, collections take the union with caps and dedupe.
var (
	titleSelectors = []string{
		"h1",
		"[class*='product-title']",
		"[class*='product-name']",
		"[class*='productTitle']",
		"[itemprop='name']",
	}

	descriptionSelectors = []string{
		"[class*='product-description'] p",
		"[class*='product-desc'] p",
		"[itemprop='description']",
		"[class*='description'] p",
	}

	priceSelectors = []string{
		"[itemprop='price']",
		"[class*='product-price']",
		"[class*='price-current']",
		"[class*='price']",
		".price",
	}

	imageSelectors = []string{
		"[class*='product-image'] img",
		"[class*='product-gallery'] img",
		"[class*='gallery'] img",
		"[itemprop='image']",
		".product img",
		"main img",
	}

	featureSelectors = []string{
		"[class*='feature'] li",
		"[class*='benefit'] li",
		"[class*='product-highlights'] li",
		"[itemprop='description'] li",
		".product-details li",
	}

	paragraphSelectors = []string{
		"[class*='product-info'] p",
		"[class*='product-content'] p",
		"[class*='description'] p",
		"article p",
		"main p",
	}

	breadcrumbSelectors = []string{
		"[class*='breadcrumb'] li",
		"[class*='breadcrumb'] a",
		"nav[aria-label='breadcrumb'] a",
		"[itemtype*='BreadcrumbList'] [itemprop='name']",
	}
)

var currencyPattern = regexp.MustCompile(`[$€£¥₹]|USD|EUR|GBP|INR|AUD|CAD`)

// certificationKeywords are matched case-insensitively against page text
var certificationKeywords = []string{
	"ISO 9001", "ISO 22000", "ISO 14001", "FSSC 22000", "BRC", "HACCP",
	"GMP", "Halal", "Kosher", "Organic", "Non-GMO", "FDA", "REACH",
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// extractRecord walks the parsed document and builds the flat product record
func (s *StaticEngine) extractRecord(doc *goquery.Document, pageURL string) *models.ScrapedRecord {
	// Strip non-content nodes before any text extraction
	doc.Find("script, style, noscript").Remove()

	record := &models.ScrapedRecord{
		URL:            pageURL,
		Domain:         utils.ExtractDomain(pageURL),
		Images:         []models.ProductImage{},
		Features:       []string{},
		Specifications: map[string]string{},
	}

	record.Title = s.extractTitle(doc)
	record.Description = s.extractDescription(doc)
	record.Price, record.Currency = s.extractPrice(doc)
	record.Images = s.extractImages(doc, pageURL)
	record.Features = s.extractFeatures(doc)
	record.Specifications = s.extractSpecifications(doc)
	record.AdditionalContent = s.extractParagraphs(doc)
	record.Breadcrumb = s.extractBreadcrumb(doc)
	record.SEOData = s.extractSEOData(doc)
	record.BusinessInfo = s.extractBusinessInfo(doc, record.Domain)
	record.ProductDetails = s.extractProductDetails(doc, record.Breadcrumb)
	record.FullTextContent = s.extractFullText(doc)

	return record
}

func (s *StaticEngine) extractTitle(doc *goquery.Document) string {
	for _, sel := range titleSelectors {
		if text := cleanText(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}

	// Page title with the site suffix stripped
	if pageTitle := cleanText(doc.Find("title").First().Text()); pageTitle != "" {
		return cleanText(strings.Split(pageTitle, "|")[0])
	}

	if ogTitle, ok := doc.Find("meta[property='og:title']").Attr("content"); ok {
		if text := cleanText(ogTitle); text != "" {
			return text
		}
	}

	return "Product"
}

func (s *StaticEngine) extractDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find("meta[name='description']").Attr("content"); ok {
		if text := cleanText(desc); text != "" {
			return text
		}
	}

	if ogDesc, ok := doc.Find("meta[property='og:description']").Attr("content"); ok {
		if text := cleanText(ogDesc); text != "" {
			return text
		}
	}

	for _, sel := range descriptionSelectors {
		if text := cleanText(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}

	return ""
}

func (s *StaticEngine) extractPrice(doc *goquery.Document) (string, string) {
	price := ""
	for _, sel := range priceSelectors {
		if text := cleanText(doc.Find(sel).First().Text()); text != "" {
			price = text
			break
		}
	}

	currency := ""
	if c, ok := doc.Find("[itemprop='priceCurrency']").Attr("content"); ok {
		currency = cleanText(c)
	}
	if currency == "" && price != "" {
		currency = currencyPattern.FindString(price)
	}

	return price, currency
}

func (s *StaticEngine) extractImages(doc *goquery.Document, pageURL string) []models.ProductImage {
	base, _ := url.Parse(pageURL)
	images := []models.ProductImage{}
	seen := make(map[string]bool)

	appendImage := func(src, alt string) {
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}
		resolved := resolveURL(base, src)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		images = append(images, models.ProductImage{URL: resolved, Alt: cleanText(alt)})
	}

	for _, sel := range imageSelectors {
		doc.Find(sel).Each(func(_ int, img *goquery.Selection) {
			if len(images) >= s.config.Scraper.MaxImages {
				return
			}
			// Lazy-loaded galleries put the real URL in data attributes
			src, _ := img.Attr("src")
			if dataSrc, ok := img.Attr("data-src"); ok && dataSrc != "" {
				src = dataSrc
			}
			if lazySrc, ok := img.Attr("data-lazy-src"); ok && lazySrc != "" {
				src = lazySrc
			}
			alt, _ := img.Attr("alt")
			appendImage(src, alt)
		})
		if len(images) >= s.config.Scraper.MaxImages {
			break
		}
	}

	if len(images) == 0 {
		if ogImage, ok := doc.Find("meta[property='og:image']").Attr("content"); ok {
			appendImage(ogImage, "")
		}
	}

	return images
}

func (s *StaticEngine) extractFeatures(doc *goquery.Document) []string {
	features := []string{}
	seen := make(map[string]bool)

	collect := func(_ int, li *goquery.Selection) {
		if len(features) >= s.config.Scraper.MaxFeatures {
			return
		}
		text := cleanText(li.Text())
		// Nav cruft is short, legal boilerplate is long; keep the middle
		if len(text) < 5 || len(text) > 300 || seen[text] {
			return
		}
		seen[text] = true
		features = append(features, text)
	}

	for _, sel := range featureSelectors {
		doc.Find(sel).Each(collect)
		if len(features) >= s.config.Scraper.MaxFeatures {
			break
		}
	}

	return features
}

func (s *StaticEngine) extractSpecifications(doc *goquery.Document) map[string]string {
	specs := make(map[string]string)

	addSpec := func(key, value string) {
		key = cleanText(key)
		value = cleanText(value)
		if key == "" || value == "" || len(specs) >= s.config.Scraper.MaxSpecRows {
			return
		}
		// Header rows repeat the column labels as data
		if strings.EqualFold(key, "specification") || strings.EqualFold(key, "specifications") {
			return
		}
		if _, exists := specs[key]; !exists {
			specs[key] = value
		}
	}

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() >= 2 {
			addSpec(cells.Eq(0).Text(), cells.Eq(1).Text())
		}
	})

	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		terms := dl.Find("dt")
		defs := dl.Find("dd")
		for i := 0; i < terms.Length() && i < defs.Length(); i++ {
			addSpec(terms.Eq(i).Text(), defs.Eq(i).Text())
		}
	})

	return specs
}

func (s *StaticEngine) extractParagraphs(doc *goquery.Document) []string {
	paragraphs := []string{}
	seen := make(map[string]bool)

	for _, sel := range paragraphSelectors {
		doc.Find(sel).Each(func(_ int, p *goquery.Selection) {
			if len(paragraphs) >= s.config.Scraper.MaxParagraphs {
				return
			}
			text := cleanText(p.Text())
			if len(text) <= 30 || seen[text] {
				return
			}
			seen[text] = true
			paragraphs = append(paragraphs, text)
		})
		if len(paragraphs) >= s.config.Scraper.MaxParagraphs {
			break
		}
	}

	return paragraphs
}

func (s *StaticEngine) extractBreadcrumb(doc *goquery.Document) []string {
	for _, sel := range breadcrumbSelectors {
		crumbs := []string{}
		doc.Find(sel).Each(func(_ int, item *goquery.Selection) {
			if text := cleanText(item.Text()); text != "" {
				crumbs = append(crumbs, text)
			}
		})
		if len(crumbs) > 0 {
			return crumbs
		}
	}
	return nil
}

func (s *StaticEngine) extractSEOData(doc *goquery.Document) models.SEOData {
	seo := models.SEOData{}

	seo.MetaTitle = cleanText(doc.Find("title").First().Text())
	if desc, ok := doc.Find("meta[name='description']").Attr("content"); ok {
		seo.MetaDescription = cleanText(desc)
	}
	if keywords, ok := doc.Find("meta[name='keywords']").Attr("content"); ok {
		seo.MetaKeywords = cleanText(keywords)
	}

	doc.Find("h1").Each(func(_ int, h *goquery.Selection) {
		if text := cleanText(h.Text()); text != "" {
			seo.H1 = append(seo.H1, text)
		}
	})
	doc.Find("h2").Each(func(_ int, h *goquery.Selection) {
		if text := cleanText(h.Text()); text != "" && len(seo.H2) < 10 {
			seo.H2 = append(seo.H2, text)
		}
	})
	doc.Find("h3").Each(func(_ int, h *goquery.Selection) {
		if text := cleanText(h.Text()); text != "" && len(seo.H3) < 10 {
			seo.H3 = append(seo.H3, text)
		}
	})

	return seo
}

func (s *StaticEngine) extractBusinessInfo(doc *goquery.Document, domain string) models.BusinessInfo {
	info := models.BusinessInfo{}

	if siteName, ok := doc.Find("meta[property='og:site_name']").Attr("content"); ok {
		info.CompanyName = cleanText(siteName)
	}
	if info.CompanyName == "" {
		info.CompanyName = cleanText(doc.Find("[itemprop='brand']").First().Text())
	}
	if info.CompanyName == "" && domain != "" {
		info.CompanyName = strings.TrimPrefix(domain, "www.")
	}

	bodyText := doc.Find("body").Text()
	lowerBody := strings.ToLower(bodyText)
	seen := make(map[string]bool)
	for _, keyword := range certificationKeywords {
		if strings.Contains(lowerBody, strings.ToLower(keyword)) && !seen[keyword] {
			seen[keyword] = true
			info.Certifications = append(info.Certifications, keyword)
		}
	}

	return info
}

func (s *StaticEngine) extractProductDetails(doc *goquery.Document, breadcrumb []string) models.ProductDetails {
	details := models.ProductDetails{}

	details.SKU = firstText(doc, "[itemprop='sku']", "[class*='sku']")
	details.Brand = firstText(doc, "[itemprop='brand']", "[class*='brand']")

	if avail, ok := doc.Find("[itemprop='availability']").Attr("href"); ok {
		details.Availability = cleanText(strings.TrimPrefix(avail, "https://schema.org/"))
	} else {
		details.Availability = firstText(doc, "[itemprop='availability']", "[class*='availability']", "[class*='stock']")
	}

	if cond, ok := doc.Find("[itemprop='itemCondition']").Attr("href"); ok {
		details.Condition = cleanText(strings.TrimPrefix(cond, "https://schema.org/"))
	}

	// Second-to-last breadcrumb entry is the category on most storefronts
	if len(breadcrumb) >= 2 {
		details.Category = breadcrumb[len(breadcrumb)-2]
	}

	return details
}

func (s *StaticEngine) extractFullText(doc *goquery.Document) string {
	text := cleanText(doc.Find("body").Text())
	if len(text) > s.config.Scraper.MaxFullTextSize {
		text = text[:s.config.Scraper.MaxFullTextSize]
	}
	return text
}

// firstText returns the first non-empty trimmed text across the selectors
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := cleanText(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// cleanText collapses runs of whitespace and trims the result
func cleanText(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// resolveURL resolves a possibly-relative image URL against the page URL
func resolveURL(base *url.URL, ref string) string {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	if base != nil {
		parsed = base.ResolveReference(parsed)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	return parsed.String()
}
