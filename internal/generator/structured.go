package generator

import (
	"prodcopy-utils/pkg/models"
)

// BuildStructuredData deterministically assembles the JSON-LD graph for
// a product from final generated values and scraped data. Model output
// never feeds this builder, so the schema shape is always valid.
func BuildStructuredData(content *models.GeneratedContent, record *models.ScrapedRecord) map[string]interface{} {
	name := content.ProductTitle
	if name == "" {
		name = record.Title
	}
	description := content.MetaDescription
	if description == "" {
		description = record.Description
	}

	images := make([]string, 0, len(record.Images))
	for _, img := range record.Images {
		images = append(images, img.URL)
	}

	seller := record.BusinessInfo.CompanyName
	if seller == "" {
		seller = "Product Manufacturer"
	}

	price := record.Price
	if price == "" {
		price = "Contact for pricing"
	}
	currency := record.Currency
	if currency == "" {
		currency = "GBP"
	}

	product := map[string]interface{}{
		"@type":       "Product",
		"name":        name,
		"description": description,
		"image":       images,
		"brand": map[string]interface{}{
			"@type": "Brand",
			"name":  seller,
		},
		"manufacturer": map[string]interface{}{
			"@type": "Organization",
			"name":  seller,
		},
		"offers": map[string]interface{}{
			"@type":         "Offer",
			"price":         price,
			"priceCurrency": currency,
			"availability":  "https://schema.org/InStock",
			"url":           record.URL,
			"seller": map[string]interface{}{
				"@type": "Organization",
				"name":  seller,
			},
		},
	}

	if record.ProductDetails.SKU != "" {
		product["sku"] = record.ProductDetails.SKU
	}
	if record.ProductDetails.Category != "" {
		product["category"] = record.ProductDetails.Category
	}
	if len(record.BusinessInfo.Certifications) > 0 {
		properties := make([]map[string]interface{}, 0, len(record.BusinessInfo.Certifications))
		for _, cert := range record.BusinessInfo.Certifications {
			properties = append(properties, map[string]interface{}{
				"@type": "PropertyValue",
				"name":  "Certification",
				"value": cert,
			})
		}
		product["additionalProperty"] = properties
	}

	return map[string]interface{}{
		"@context": "https://schema.org",
		"@graph":   []interface{}{product},
	}
}
