package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"ascii truncated", "hello world", 5, "hello..."},
		{"zero max untouched", "hello", 0, "hello"},
		{"pound sign kept whole", "£45.00 per 25kg sack", 7, "£45.00 ..."},
		{"degree sign kept whole", "Store below 25°C away from sunlight", 14, "Store below 25..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("TruncateString produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestTruncateStringNeverSplitsRunes(t *testing.T) {
	// Cutting anywhere inside this string lands mid-rune for byte slicing
	s := strings.Repeat("£°€", 20)
	for max := 1; max < 10; max++ {
		got := TruncateString(s, max)
		if !utf8.ValidString(got) {
			t.Errorf("max=%d produced invalid UTF-8: %q", max, got)
		}
		if utf8.RuneCountInString(strings.TrimSuffix(got, "...")) != max {
			t.Errorf("max=%d kept %d runes", max, utf8.RuneCountInString(strings.TrimSuffix(got, "...")))
		}
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://acme.example/products/citric-acid", "acme.example"},
		{"http://www.acme.example:8080/p", "www.acme.example"},
		{"not a url at all", "not a url at all"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractDomain(tt.in); got != tt.want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
