package llm

import (
	"context"
)

// Provider defines the interface for LLM providers used by the prompt optimizer
type Provider interface {
	// Generate returns the model's plain-text answer for the request
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for generation
type GenerationRequest struct {
	Model         string
	InputArray    []map[string]any
	ReasoningMode string
	SystemPrompt  string
}

// UserMessage builds a single-message input array
func UserMessage(content string) []map[string]any {
	return []map[string]any{{"role": userRole, "content": content}}
}

// TokenUsage is the provider-neutral token count of one call
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	Text     string     `json:"text"`
	Usage    TokenUsage `json:"usage"`
	Provider string     `json:"provider"`
}
