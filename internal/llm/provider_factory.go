package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrAPIKeyMissing is returned when the provider for a model has no API key
var ErrAPIKeyMissing = errors.New("api key not configured")

// ProviderFactory creates providers based on model name or explicit provider choice
type ProviderFactory struct {
	openaiAPIKey string
	geminiAPIKey string

	mu        sync.Mutex
	providers map[string]Provider
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(openaiAPIKey, geminiAPIKey string) *ProviderFactory {
	return &ProviderFactory{
		openaiAPIKey: openaiAPIKey,
		geminiAPIKey: geminiAPIKey,
		providers:    make(map[string]Provider),
	}
}

// ProviderNameForModel infers the provider from the model name.
// Unknown models default to OpenAI.
func ProviderNameForModel(model string) string {
	if strings.HasPrefix(strings.ToLower(model), "gemini") {
		return providerNameGemini
	}
	return providerNameOpenAI
}

// GetProvider returns the appropriate provider for the given model/provider name
func (f *ProviderFactory) GetProvider(ctx context.Context, model, providerName string) (Provider, error) {
	if providerName == "" {
		providerName = ProviderNameForModel(model)
	}
	providerName = strings.ToLower(providerName)

	f.mu.Lock()
	defer f.mu.Unlock()

	if p, ok := f.providers[providerName]; ok {
		return p, nil
	}

	p, err := f.newProvider(ctx, providerName)
	if err != nil {
		return nil, err
	}
	f.providers[providerName] = p
	return p, nil
}

func (f *ProviderFactory) newProvider(ctx context.Context, providerName string) (Provider, error) {
	switch providerName {
	case providerNameOpenAI:
		if f.openaiAPIKey == "" {
			return nil, fmt.Errorf("openai: %w", ErrAPIKeyMissing)
		}
		return NewOpenAIProvider(f.openaiAPIKey), nil

	case providerNameGemini:
		if f.geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini: %w", ErrAPIKeyMissing)
		}
		return NewGeminiProvider(ctx, f.geminiAPIKey)

	default:
		return nil, fmt.Errorf("unknown provider: %s (allowed: openai, gemini)", providerName)
	}
}
