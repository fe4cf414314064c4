package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration
// Note: sessions live in memory only; nothing is persisted
type Config struct {
	// Environment
	Environment string
	Port        string

	// Sessions
	SessionSecret string        // Cookie signing key
	SessionTTL    time.Duration // Idle time before a session is dropped

	// Builder
	CatalogPath      string // Optional YAML catalog overriding the embedded one
	ClipboardEnabled bool   // Write copied prompts to the host clipboard

	// Prompt optimizer
	OpenAIAPIKey   string // OpenAI API key for GPT models
	GeminiAPIKey   string // Google Gemini API key
	OptimizerModel string // e.g. gpt-4.1-mini, gemini-2.5-flash

	// Optimizer calls allowed per minute across all sessions
	OptimizerRatePerMinute int

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
	CloudWatchEnabled bool   // Custom metrics; also requires production
}

func Load() *Config {
	return &Config{
		Environment:            getEnv("ENVIRONMENT", "development"),
		Port:                   getEnv("PORT", "8080"),
		SessionSecret:          getEnv("SESSION_SECRET", "dev-session-secret-change-me"),
		SessionTTL:             getDuration("SESSION_TTL", 2*time.Hour),
		CatalogPath:            getEnv("CATALOG_PATH", ""),
		ClipboardEnabled:       getEnv("CLIPBOARD_ENABLED", "false") == "true",
		OpenAIAPIKey:           getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:           getEnv("GEMINI_API_KEY", ""),
		OptimizerModel:         getEnv("OPTIMIZER_MODEL", "gemini-2.5-flash"),
		OptimizerRatePerMinute: getInt("OPTIMIZER_RATE_PER_MINUTE", 20),
		SentryDSN:              getEnv("SENTRY_DSN", ""),
		LangfusePublicKey:      getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey:      getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:           getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:        getEnv("LANGFUSE_ENABLED", "false") == "true",
		CloudWatchEnabled:      getEnv("CLOUDWATCH_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OptimizerEnabled reports whether an API key exists for the optimizer model's provider
func (c *Config) OptimizerEnabled() bool {
	return c.OptimizerAPIKey() != ""
}

// OptimizerAPIKey returns the API key matching the optimizer model
func (c *Config) OptimizerAPIKey() string {
	if strings.HasPrefix(c.OptimizerModel, "gemini") {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}
