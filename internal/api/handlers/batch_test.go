package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/labstack/echo/v4"

	"prodcopy-utils/internal/config"
	"prodcopy-utils/internal/generator"
	"prodcopy-utils/internal/llm"
	"prodcopy-utils/pkg/models"
)

// stubCompleter stands in for the LLM manager: fixed text for every
// section, or a fixed error when err is set.
type stubCompleter struct {
	err error
}

func (s *stubCompleter) Complete(context.Context, llm.CompletionRequest) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "Generated copy for the product page.", nil
}

func (s *stubCompleter) IsHealthy() bool { return s.err == nil }

func batchConfig() *config.Config {
	cfg := handlerConfig()
	cfg.Generator.MaxFeatureBullets = 7
	cfg.Generator.MaxUseCases = 8
	cfg.Generator.MaxFAQs = 8
	cfg.Generator.MinSpecRows = 4
	return cfg
}

func TestBatchGenerateHandlerOrderAndDegradation(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	page := `<html><head><title>Citric Acid | Acme</title></head>
<body><h1>Citric Acid</h1></body></html>`
	httpmock.RegisterResponder("GET", "https://acme.example/p/citric",
		httpmock.NewStringResponder(200, page))
	httpmock.RegisterResponder("GET", "https://dead.example/p/gone",
		httpmock.NewStringResponder(500, "boom"))
	httpmock.RegisterResponder("GET", "https://acme.example/p/pectin",
		httpmock.NewStringResponder(200, page))

	cfg := batchConfig()
	pm := startPool(t, cfg)
	gen := generator.NewGenerator(cfg, &stubCompleter{})
	e := echo.New()

	body := `{"products": [
		{"url": "https://acme.example/p/citric"},
		{"url": "https://dead.example/p/gone"},
		{"url": "https://acme.example/p/pectin"}
	]}`
	c, rec := postJSON(e, body)
	if err := BatchGenerateHandler(cfg, pm, gen)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.BatchGenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Exactly one result per input, in input order, the failing URL
	// degrading in place rather than aborting the batch
	if len(resp.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(resp.Results))
	}
	wantOrder := []string{
		"https://acme.example/p/citric",
		"https://dead.example/p/gone",
		"https://acme.example/p/pectin",
	}
	for i, want := range wantOrder {
		if resp.Results[i].URL != want {
			t.Errorf("result[%d].URL = %q, want %q", i, resp.Results[i].URL, want)
		}
	}

	if resp.Results[0].ScrapedData.Fallback {
		t.Error("first result should carry a real scrape")
	}
	if !resp.Results[1].ScrapedData.Fallback {
		t.Error("failing URL should carry a fallback record")
	}
	if resp.Results[2].ScrapedData.Fallback {
		t.Error("result after the failing URL should carry a real scrape")
	}

	// Content is generated for every entry, fallback record included
	for i, result := range resp.Results {
		if result.Content == nil {
			t.Fatalf("result[%d] has no content", i)
		}
		if !result.Success {
			t.Errorf("result[%d].Success = false, error = %q", i, result.Error)
		}
		if len(result.Content.FeaturesAndBenefits) == 0 || result.Content.CallToActions == "" {
			t.Errorf("result[%d] content not fully populated", i)
		}
	}
	if resp.Successful != 3 || resp.Failed != 0 {
		t.Errorf("successful/failed = %d/%d, want 3/0", resp.Successful, resp.Failed)
	}
}

func TestBatchGenerateHandlerGenerationFailure(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	page := `<html><body><h1>Pectin</h1></body></html>`
	httpmock.RegisterResponder("GET", "https://acme.example/p/pectin",
		httpmock.NewStringResponder(200, page))
	httpmock.RegisterResponder("GET", "https://acme.example/p/agar",
		httpmock.NewStringResponder(200, page))

	cfg := batchConfig()
	cfg.LLM.FallbackModel = ""
	pm := startPool(t, cfg)
	gen := generator.NewGenerator(cfg, &stubCompleter{err: errors.New("upstream unavailable")})
	e := echo.New()

	body := `{"products": [
		{"url": "https://acme.example/p/pectin"},
		{"url": "https://acme.example/p/agar"}
	]}`
	c, rec := postJSON(e, body)
	if err := BatchGenerateHandler(cfg, pm, gen)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.BatchGenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("results = %d, want one per input even when generation fails", len(resp.Results))
	}
	for i, result := range resp.Results {
		if result.Success {
			t.Errorf("result[%d].Success = true with all completions failing", i)
		}
		if result.Error == "" {
			t.Errorf("result[%d] missing error message", i)
		}
		// Defaults still populate the content
		if result.Content == nil || len(result.Content.FeaturesAndBenefits) == 0 {
			t.Errorf("result[%d] content not populated from defaults", i)
		}
	}
	if resp.Successful != 0 || resp.Failed != 2 {
		t.Errorf("successful/failed = %d/%d, want 0/2", resp.Successful, resp.Failed)
	}
}

func TestBatchGenerateHandlerValidation(t *testing.T) {
	cfg := batchConfig()
	pm := startPool(t, cfg)
	gen := generator.NewGenerator(cfg, &stubCompleter{})
	e := echo.New()

	tests := []struct {
		name string
		body string
	}{
		{"empty products", `{"products": []}`},
		{"missing products", `{}`},
		{"invalid product url", `{"products": [{"url": "not a url"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := postJSON(e, tt.body)
			if err := BatchGenerateHandler(cfg, pm, gen)(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
