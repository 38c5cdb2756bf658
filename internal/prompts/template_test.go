package prompts

import (
	"strings"
	"testing"

	"prodcopy-utils/pkg/models"
)

func TestRenderSubstitution(t *testing.T) {
	ctx := &Context{
		URL:            "https://acme.example/p/citric",
		Domain:         "acme.example",
		Title:          "Citric Acid",
		Price:          "£45.00",
		Features:       []string{"USP grade", "Non-GMO"},
		Specifications: map[string]string{"Assay": "99.5% min"},
	}

	tpl := Template{
		System: "You write copy for products on {DOMAIN}.",
		User:   "Product: {TITLE} at {PRICE}. Features: {FEATURES}. Specs: {SPECIFICATIONS}. URL: {URL}",
	}

	got := Render(tpl, ctx)

	if got.System != "You write copy for products on acme.example." {
		t.Errorf("system = %q", got.System)
	}
	for _, want := range []string{
		"Product: Citric Acid at £45.00",
		`"USP grade"`,
		`"Non-GMO"`,
		`"Assay":"99.5% min"`,
		"URL: https://acme.example/p/citric",
	} {
		if !strings.Contains(got.User, want) {
			t.Errorf("user prompt missing %q:\n%s", want, got.User)
		}
	}
}

func TestRenderAbsentValuesAreEmpty(t *testing.T) {
	ctx := &Context{Title: "Pectin"}
	tpl := Template{User: "[{FEATURES}][{SPECIFICATIONS}][{IMAGES}][{BUSINESS_RESEARCH}][{TARGET_MARKET}]"}

	got := Render(tpl, ctx)
	if got.User != "[][][][][]" {
		t.Errorf("absent values should render empty, got %q", got.User)
	}
}

func TestRenderLeavesSurroundingTextAlone(t *testing.T) {
	ctx := &Context{Title: "Agar"}
	tpl := Template{User: "Write {count} words about {TITLE}. Use JSON like {\"key\": 1}."}

	got := Render(tpl, ctx)
	want := "Write {count} words about Agar. Use JSON like {\"key\": 1}."
	if got.User != want {
		t.Errorf("got %q, want %q", got.User, want)
	}
}

func TestRenderGeneratedFieldsMerge(t *testing.T) {
	ctx := &Context{Title: "Xanthan Gum"}
	ctx.ProductTitle = "Premium Xanthan Gum E415"
	ctx.MetaDescription = "Buy premium xanthan gum."
	ctx.Introduction = "Xanthan gum is a versatile thickener."

	tpl := Template{User: "{PRODUCT_TITLE} / {META_DESCRIPTION} / {INTRO_PARAGRAPH}"}
	got := Render(tpl, ctx)
	want := "Premium Xanthan Gum E415 / Buy premium xanthan gum. / Xanthan gum is a versatile thickener."
	if got.User != want {
		t.Errorf("got %q, want %q", got.User, want)
	}
}

func TestNewContextProvidedOverrides(t *testing.T) {
	record := &models.ScrapedRecord{
		URL:    "https://acme.example/p",
		Domain: "acme.example",
		Title:  "Scraped Title",
	}
	record.ProductDetails.Category = "Acidulants"

	ctx := NewContext(record, "Acme Ltd")
	if ctx.Title != "Scraped Title" || ctx.ProductCategory != "Acidulants" {
		t.Fatalf("scraped values not carried: %+v", ctx)
	}
	if ctx.BusinessName != "Acme Ltd" {
		t.Errorf("business name = %q", ctx.BusinessName)
	}

	record.ProvidedProductName = "Client Title"
	record.ProvidedCategory = "Thickeners"
	ctx = NewContext(record, "")
	if ctx.Title != "Client Title" {
		t.Errorf("provided product name should override, got %q", ctx.Title)
	}
	if ctx.ProductCategory != "Thickeners" {
		t.Errorf("provided category should override, got %q", ctx.ProductCategory)
	}
}
