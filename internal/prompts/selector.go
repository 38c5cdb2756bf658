package prompts

import (
	"regexp"
	"strings"
)

// Industry identifies a prompt library family
type Industry string

const (
	IndustryFoodIngredients Industry = "foodIngredients"
	IndustryElectronics     Industry = "electronics"
	IndustryGeneric         Industry = "generic"
)

// industryPatterns maps each industry to the category patterns that
// select it. Ordered: first industry with a match wins. The tables are
// package-level and immutable after init.
var industryOrder = []Industry{IndustryFoodIngredients, IndustryElectronics}

var industryPatterns = map[Industry][]*regexp.Regexp{
	IndustryFoodIngredients: compilePatterns(
		// Direct ingredient mentions
		"ingredient", "additive", "flavor", "flavour", "extract", "powder",
		"concentrate",
		// Food categories
		"food", "culinary", "bakery", "dairy", "beverage", "confection",
		// Ingredient types
		"sweetener", "preservative", "colorant", "emulsifier", "stabilizer",
		"acid", "vitamin", "mineral", "protein", "starch", "gum", "thickener",
		// Specific ingredients
		"vanilla", "citric", "ascorbic", "lecithin", "pectin", "gelatin",
		"agar", "xanthan", "maltodextrin", "glucose", "fructose", "dextrose",
		"caramel", "cocoa", "chocolate", "spice", "herb", "seasoning",
		"salt", "sugar",
		// Industry terms
		"nutraceutical", "supplement", "functional food", "health food",
	),
	IndustryElectronics: compilePatterns(
		"electronic", "semiconductor", "circuit", "component", "resistor",
		"capacitor", "microcontroller", "sensor", "led", "display",
	),
}

func compilePatterns(words ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		patterns[i] = regexp.MustCompile("(?i)" + regexp.QuoteMeta(w))
	}
	return patterns
}

// DetectIndustry classifies a product category string. Empty or
// unmatched categories fall through to generic.
func DetectIndustry(category string) Industry {
	category = strings.TrimSpace(category)
	if category == "" {
		return IndustryGeneric
	}

	for _, industry := range industryOrder {
		for _, pattern := range industryPatterns[industry] {
			if pattern.MatchString(category) {
				return industry
			}
		}
	}

	return IndustryGeneric
}

// LibraryForCategory selects the prompt library for a product category.
// Food ingredients is the richest library and doubles as the generic
// fallback; electronics has no dedicated library yet and falls through
// as well. The optional business name is injected into the templates.
func LibraryForCategory(category, businessName string) *Library {
	switch DetectIndustry(category) {
	case IndustryFoodIngredients:
		return FoodIngredientsLibrary(businessName)
	case IndustryElectronics:
		return FoodIngredientsLibrary(businessName)
	default:
		return FoodIngredientsLibrary(businessName)
	}
}
