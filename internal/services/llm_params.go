package services

import "strings"

// DefaultOptimizerModel is used when no model is configured
const DefaultOptimizerModel = "gemini-2.5-flash"

// Reasoning effort constants
const (
	reasoningEffortLow = "low"
)

// LLMParameters contains the configuration for optimizer calls
type LLMParameters struct {
	Model         string
	ReasoningMode string
}

// GetLLMParameters returns the parameters for the configured optimizer model
func GetLLMParameters(model string) LLMParameters {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultOptimizerModel
	}
	return LLMParameters{
		Model:         model,
		ReasoningMode: reasoningEffortLow,
	}
}
