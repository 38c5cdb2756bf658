package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Workers.PoolSize != 10 {
		t.Errorf("pool size = %d, want 10", cfg.Workers.PoolSize)
	}
	if cfg.Scraper.RequestTimeout != 15*time.Second {
		t.Errorf("request timeout = %v, want 15s", cfg.Scraper.RequestTimeout)
	}
	if cfg.LLM.Provider != "claude" {
		t.Errorf("provider = %q, want claude", cfg.LLM.Provider)
	}
	if cfg.LLM.FallbackModel == "" {
		t.Error("fallback model default missing")
	}
	if cfg.Generator.MinSpecRows != 4 {
		t.Errorf("min spec rows = %d, want 4", cfg.Generator.MinSpecRows)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %s/%s, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	content := `
server:
  port: 9090
  read_timeout: 45s
workers:
  pool_size: 3
llm:
  model: test-model
generator:
  business_name: Acme Ingredients Ltd
  max_faqs: 5
`
	path := writeConfigFile(t, content)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090 from file", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("read timeout = %v, want 45s", cfg.Server.ReadTimeout)
	}
	if cfg.Workers.PoolSize != 3 {
		t.Errorf("pool size = %d, want 3", cfg.Workers.PoolSize)
	}
	if cfg.LLM.Model != "test-model" {
		t.Errorf("model = %q", cfg.LLM.Model)
	}
	if cfg.Generator.BusinessName != "Acme Ingredients Ltd" {
		t.Errorf("business name = %q", cfg.Generator.BusinessName)
	}
	if cfg.Generator.MaxFAQs != 5 {
		t.Errorf("max faqs = %d, want 5", cfg.Generator.MaxFAQs)
	}

	// Unset file values keep their defaults
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("write timeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
}

func TestLoadConfigEnvExpansion(t *testing.T) {
	t.Setenv("TEST_API_KEY", "sk-test-123")

	content := `
llm:
  api_key: ${TEST_API_KEY}
  model: ${TEST_UNSET_VAR}
`
	path := writeConfigFile(t, content)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.LLM.APIKey != "sk-test-123" {
		t.Errorf("api key = %q, want expanded value", cfg.LLM.APIKey)
	}
	// Unset variables stay literal rather than collapsing to empty
	if cfg.LLM.Model != "${TEST_UNSET_VAR}" {
		t.Errorf("model = %q, want literal placeholder", cfg.LLM.Model)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_API_KEY", "sk-env-key")
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("GENERATOR_BUSINESS_NAME", "Env Foods Ltd")
	t.Setenv("WORKERS_RATE_LIMIT", "120")

	content := `
server:
  port: 9090
llm:
  model: file-model
`
	path := writeConfigFile(t, content)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, env should override file", cfg.Server.Port)
	}
	if cfg.LLM.APIKey != "sk-env-key" {
		t.Errorf("api key = %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model != "env-model" {
		t.Errorf("model = %q, env should override file", cfg.LLM.Model)
	}
	if cfg.Generator.BusinessName != "Env Foods Ltd" {
		t.Errorf("business name = %q", cfg.Generator.BusinessName)
	}
	if cfg.Workers.RateLimit != 120 {
		t.Errorf("rate limit = %d, want 120", cfg.Workers.RateLimit)
	}
}

func TestLoadConfigBusinessNamePlaceholder(t *testing.T) {
	content := `
generator:
  business_name: ${TEST_UNSET_BUSINESS_NAME}
`
	path := writeConfigFile(t, content)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// An unresolved placeholder must not become the supplier identity
	if cfg.Generator.BusinessName != "" {
		t.Errorf("business name = %q, want empty when env var unset", cfg.Generator.BusinessName)
	}

	t.Setenv("TEST_SET_BUSINESS_NAME", "Acme Ingredients Ltd")
	path = writeConfigFile(t, "generator:\n  business_name: ${TEST_SET_BUSINESS_NAME}\n")
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Generator.BusinessName != "Acme Ingredients Ltd" {
		t.Errorf("business name = %q, want expanded value", cfg.Generator.BusinessName)
	}
}

func TestLoadConfigAnthropicKeyCompat(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-compat")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.LLM.APIKey != "sk-ant-compat" {
		t.Errorf("api key = %q, want ANTHROPIC_API_KEY fallback", cfg.LLM.APIKey)
	}

	t.Setenv("LLM_API_KEY", "sk-primary")
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.LLM.APIKey != "sk-primary" {
		t.Errorf("api key = %q, LLM_API_KEY should take precedence", cfg.LLM.APIKey)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default", cfg.Server.Port)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
