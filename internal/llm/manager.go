package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"

	"prodcopy-utils/internal/config"
	"prodcopy-utils/internal/logging"
)

// Manager manages LLM providers and their lifecycle. All completion
// calls go through the manager: it applies a global rate limit across
// sections and retries transient API failures with backoff.
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	limiter  *rate.Limiter
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.LLM.RatePerMinute)/60.0), 2),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the LLM manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed - generation features will be disabled", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
		// Server still starts; scrape endpoints work without the LLM
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// Complete runs a completion through the configured provider with rate
// limiting and retry. Each attempt gets its own timeout from config.
func (m *Manager) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return "", fmt.Errorf("LLM manager not started or provider not available")
	}

	if !healthy {
		return "", fmt.Errorf("LLM provider is not available - check API key configuration (set LLM_API_KEY environment variable)")
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait canceled: %w", err)
	}

	var result string
	err := retry.Do(
		func() error {
			attemptCtx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)
			defer cancel()

			text, err := provider.Complete(attemptCtx, req)
			if err != nil {
				return err
			}
			result = text
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(m.config.LLM.MaxRetries+1)),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			m.logger.Warn("Completion attempt failed, retrying", map[string]interface{}{
				"attempt": attempt + 1,
				"error":   err.Error(),
			})
		}),
	)
	if err != nil {
		return "", err
	}

	return result, nil
}

// IsHealthy checks if the LLM manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the LLM provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
