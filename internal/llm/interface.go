package llm

import (
	"context"

	"prodcopy-utils/internal/llm/providers"
)

// CompletionRequest is a single text completion call. The concrete type
// lives in the providers package; aliased here so callers only import llm.
type CompletionRequest = providers.CompletionRequest

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete sends a completion request and returns the raw text response
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
