package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/llm"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/logger"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/metrics"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/observability"
)

const optimizerBurst = 2

var (
	ErrOptimizerDisabled = errors.New("prompt optimizer is not configured")
	ErrRateLimited       = errors.New("prompt optimizer rate limit exceeded")
	ErrEmptyPrompt       = errors.New("nothing to optimize: the prompt is empty")
)

// ProviderSource resolves the LLM provider for a model
type ProviderSource interface {
	GetProvider(ctx context.Context, model, providerName string) (llm.Provider, error)
}

// OptimizerConfig configures a PromptOptimizer
type OptimizerConfig struct {
	Enabled       bool
	Model         string
	SystemPrompt  string
	RatePerMinute int
}

// PromptOptimizer rewrites derived prompts with an LLM
type PromptOptimizer struct {
	providers    ProviderSource
	params       LLMParameters
	systemPrompt string
	enabled      bool
	limiter      *rate.Limiter

	sentry     *metrics.SentryMetrics
	cloudwatch *metrics.Client
	langfuse   *observability.LangfuseClient
}

// OptimizeResult is the outcome of one optimizer call
type OptimizeResult struct {
	Original   string         `json:"original"`
	Optimized  string         `json:"optimized"`
	Model      string         `json:"model"`
	Provider   string         `json:"provider"`
	Usage      llm.TokenUsage `json:"usage"`
	CostUSD    float64        `json:"cost_usd"`
	DurationMs int64          `json:"duration_ms"`
}

// NewPromptOptimizer creates an optimizer. Metrics and tracing clients may be nil.
func NewPromptOptimizer(
	cfg OptimizerConfig,
	providers ProviderSource,
	sentryMetrics *metrics.SentryMetrics,
	cloudwatch *metrics.Client,
	langfuse *observability.LangfuseClient,
) *PromptOptimizer {
	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	return &PromptOptimizer{
		providers:    providers,
		params:       GetLLMParameters(cfg.Model),
		systemPrompt: cfg.SystemPrompt,
		enabled:      cfg.Enabled && providers != nil,
		limiter:      rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), optimizerBurst),
		sentry:       sentryMetrics,
		cloudwatch:   cloudwatch,
		langfuse:     langfuse,
	}
}

// Enabled reports whether optimization requests are accepted
func (o *PromptOptimizer) Enabled() bool {
	return o != nil && o.enabled
}

// Model returns the configured model name
func (o *PromptOptimizer) Model() string {
	if o == nil {
		return ""
	}
	return o.params.Model
}

// Optimize sends the prompt to the LLM and returns the rewritten version
func (o *PromptOptimizer) Optimize(ctx context.Context, sessionID, prompt string) (*OptimizeResult, error) {
	if !o.Enabled() {
		return nil, ErrOptimizerDisabled
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if !o.limiter.Allow() {
		return nil, ErrRateLimited
	}

	startTime := time.Now()
	model := o.params.Model

	trace := o.langfuse.StartTrace(ctx, "prompt.optimize", sessionID, map[string]interface{}{
		"model": model,
	})
	defer trace.Finish()
	generation := trace.Generation("optimize", nil)
	defer generation.Finish()

	provider, err := o.providers.GetProvider(ctx, model, "")
	if err != nil {
		generation.Fail(err)
		o.record(ctx, time.Since(startTime), false)
		return nil, fmt.Errorf("failed to get provider for %s: %w", model, err)
	}

	resp, err := provider.Generate(ctx, &llm.GenerationRequest{
		Model:         model,
		InputArray:    llm.UserMessage(prompt),
		ReasoningMode: o.params.ReasoningMode,
		SystemPrompt:  o.systemPrompt,
	})
	duration := time.Since(startTime)
	if err != nil {
		generation.Fail(err)
		o.record(ctx, duration, false)
		logger.Error("Prompt optimization failed", err, logger.Fields{
			"session_id": sessionID,
			"model":      model,
			"provider":   provider.Name(),
		})
		return nil, fmt.Errorf("optimization failed: %w", err)
	}

	usage := resp.Usage
	generation.LogResult(model, prompt, resp.Text, usage.InputTokens, usage.OutputTokens)
	o.record(ctx, duration, true)
	o.sentry.RecordTokenUsage(ctx, model, usage.TotalTokens, usage.InputTokens, usage.OutputTokens)
	o.cloudwatch.RecordTokenUsage(model, usage.TotalTokens, usage.InputTokens, usage.OutputTokens)
	logger.LogOptimization(ctx, model, duration, usage.InputTokens, usage.OutputTokens, logger.Fields{
		"session_id": sessionID,
		"provider":   provider.Name(),
	})

	return &OptimizeResult{
		Original:   prompt,
		Optimized:  resp.Text,
		Model:      model,
		Provider:   provider.Name(),
		Usage:      usage,
		CostUSD:    observability.CalculateCost(model, usage.InputTokens, usage.OutputTokens),
		DurationMs: duration.Milliseconds(),
	}, nil
}

func (o *PromptOptimizer) record(ctx context.Context, duration time.Duration, success bool) {
	o.sentry.RecordOptimization(ctx, duration, success)
	o.cloudwatch.RecordOptimization(duration, success)
}
