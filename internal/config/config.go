package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
		CORSOrigins  []string      `yaml:"cors_origins"`
	} `yaml:"server"`

	Workers struct {
		PoolSize  int           `yaml:"pool_size" default:"10"`
		QueueSize int           `yaml:"queue_size" default:"100"`
		RateLimit int           `yaml:"rate_limit" default:"60"` // requests per minute per domain
		Timeout   time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"workers"`

	Scraper struct {
		UserAgent       string        `yaml:"user_agent"`
		RequestTimeout  time.Duration `yaml:"request_timeout" default:"15s"`
		MaxRedirects    int           `yaml:"max_redirects" default:"5"`
		MaxImages       int           `yaml:"max_images" default:"10"`
		MaxSpecRows     int           `yaml:"max_spec_rows" default:"20"`
		MaxFeatures     int           `yaml:"max_features" default:"20"`
		MaxParagraphs   int           `yaml:"max_paragraphs" default:"10"`
		MaxFullTextSize int           `yaml:"max_full_text_size" default:"10000"`
	} `yaml:"scraper"`

	LLM struct {
		Provider      string        `yaml:"provider" default:"claude"`
		APIKey        string        `yaml:"api_key"`
		Model         string        `yaml:"model" default:"claude-3-5-sonnet-20241022"`
		FallbackModel string        `yaml:"fallback_model" default:"claude-3-haiku-20240307"`
		MaxTokens     int           `yaml:"max_tokens" default:"2000"`
		Temperature   float32       `yaml:"temperature" default:"0.4"`
		Timeout       time.Duration `yaml:"timeout" default:"60s"`
		MaxRetries    int           `yaml:"max_retries" default:"2"`
		RatePerMinute int           `yaml:"rate_per_minute" default:"50"`
	} `yaml:"llm"`

	Generator struct {
		ResearchTemperature float32 `yaml:"research_temperature" default:"0.3"`
		ResearchMaxTokens   int     `yaml:"research_max_tokens" default:"2000"`
		BusinessName        string  `yaml:"business_name"`
		MaxFeatureBullets   int     `yaml:"max_feature_bullets" default:"7"`
		MaxUseCases         int     `yaml:"max_use_cases" default:"8"`
		MaxFAQs             int     `yaml:"max_faqs" default:"8"`
		MinSpecRows         int     `yaml:"min_spec_rows" default:"4"`
	} `yaml:"generator"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Workers.PoolSize = 10
	config.Workers.QueueSize = 100
	config.Workers.RateLimit = 60
	config.Workers.Timeout = 30 * time.Second

	config.Scraper.RequestTimeout = 15 * time.Second
	config.Scraper.MaxRedirects = 5
	config.Scraper.MaxImages = 10
	config.Scraper.MaxSpecRows = 20
	config.Scraper.MaxFeatures = 20
	config.Scraper.MaxParagraphs = 10
	config.Scraper.MaxFullTextSize = 10000
	config.Scraper.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	config.LLM.Provider = "claude"
	config.LLM.Model = "claude-3-5-sonnet-20241022"
	config.LLM.FallbackModel = "claude-3-haiku-20240307"
	config.LLM.MaxTokens = 2000
	config.LLM.Temperature = 0.4
	config.LLM.Timeout = 60 * time.Second
	config.LLM.MaxRetries = 2
	config.LLM.RatePerMinute = 50

	config.Generator.ResearchTemperature = 0.3
	config.Generator.ResearchMaxTokens = 2000
	config.Generator.MaxFeatureBullets = 7
	config.Generator.MaxUseCases = 8
	config.Generator.MaxFAQs = 8
	config.Generator.MinSpecRows = 4

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	// An unexpanded placeholder is worse than no name here: it would be
	// injected verbatim into every prompt as the supplier identity
	if strings.HasPrefix(config.Generator.BusinessName, "${") {
		config.Generator.BusinessName = ""
	}

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	// Also support ANTHROPIC_API_KEY for compatibility
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if model := os.Getenv("LLM_FALLBACK_MODEL"); model != "" {
		c.LLM.FallbackModel = model
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if retries := os.Getenv("LLM_MAX_RETRIES"); retries != "" {
		if n, err := strconv.Atoi(retries); err == nil {
			c.LLM.MaxRetries = n
		}
	}

	if businessName := os.Getenv("GENERATOR_BUSINESS_NAME"); businessName != "" {
		c.Generator.BusinessName = businessName
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if userAgent := os.Getenv("SCRAPER_USER_AGENT"); userAgent != "" {
		c.Scraper.UserAgent = userAgent
	}

	if timeout := os.Getenv("SCRAPER_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Scraper.RequestTimeout = d
		}
	}

	if poolSize := os.Getenv("WORKERS_POOL_SIZE"); poolSize != "" {
		if n, err := strconv.Atoi(poolSize); err == nil {
			c.Workers.PoolSize = n
		}
	}

	if rateLimit := os.Getenv("WORKERS_RATE_LIMIT"); rateLimit != "" {
		if n, err := strconv.Atoi(rateLimit); err == nil {
			c.Workers.RateLimit = n
		}
	}
}
