package prompts

import (
	"strings"
	"testing"
)

func TestDetectIndustry(t *testing.T) {
	tests := []struct {
		category string
		want     Industry
	}{
		{"Organic Flavour Extract", IndustryFoodIngredients},
		{"Food Additives", IndustryFoodIngredients},
		{"Vanilla Products", IndustryFoodIngredients},
		{"Sweeteners & Acidulants", IndustryFoodIngredients},
		{"citric acid", IndustryFoodIngredients},
		{"Nutraceutical Supplements", IndustryFoodIngredients},
		{"Semiconductor Components", IndustryElectronics},
		{"LED Displays", IndustryElectronics},
		{"Industrial Machinery", IndustryGeneric},
		{"Office Furniture", IndustryGeneric},
		{"", IndustryGeneric},
		{"   ", IndustryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := DetectIndustry(tt.category); got != tt.want {
				t.Errorf("DetectIndustry(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestFoodIngredientsMatchWinsOverElectronics(t *testing.T) {
	// "display" is an electronics pattern but "food" matches first
	if got := DetectIndustry("food display ingredients"); got != IndustryFoodIngredients {
		t.Errorf("DetectIndustry = %v, want foodIngredients to win", got)
	}
}

func TestLibraryForCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
	}{
		{"food category", "flavour extract"},
		{"electronics falls back", "semiconductor"},
		{"unknown falls back", "mystery widgets"},
		{"empty falls back", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := LibraryForCategory(tt.category, "")
			if lib == nil {
				t.Fatal("LibraryForCategory returned nil")
			}
			if lib.Name != "food-ingredients" {
				t.Errorf("library = %q, want food-ingredients", lib.Name)
			}
		})
	}
}

func TestLibraryCoversAllSections(t *testing.T) {
	lib := FoodIngredientsLibrary("")
	for _, section := range AllSections {
		tpl, ok := lib.ForSection(section)
		if !ok {
			t.Errorf("library missing section %q", section)
			continue
		}
		if tpl.System == "" || tpl.User == "" {
			t.Errorf("section %q has empty system or user prompt", section)
		}
	}
}

func TestBusinessNameInjection(t *testing.T) {
	lib := FoodIngredientsLibrary("Acme Ingredients Ltd")
	tpl, _ := lib.ForSection(SectionProductTitle)
	if want := "Acme Ingredients Ltd"; !strings.Contains(tpl.System, want) {
		t.Errorf("system prompt missing injected business name %q", want)
	}

	defaultLib := FoodIngredientsLibrary("")
	tpl, _ = defaultLib.ForSection(SectionProductTitle)
	if !strings.Contains(tpl.System, "a premium food ingredients supplier") {
		t.Error("default supplier wording missing without business name")
	}
}
