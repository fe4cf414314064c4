package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/api"
	apimiddleware "github.com/Conceptual-Machines/imageai-prompt-builder/internal/api/middleware"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/catalog"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/config"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/llm"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/metrics"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/observability"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/prompt"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/services"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/session"
)

const (
	sentryFlushTimeout = 2 * time.Second
	deriveCacheTTL     = 10 * time.Minute
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "imageai-prompt-builder@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			EnableLogs:       true,
			Debug:            !cfg.IsProduction(),
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	langfuse := observability.InitializeLangfuse(ctx, cfg)

	cloudwatch, err := metrics.NewClient(ctx, cfg.Environment, cfg.CloudWatchEnabled)
	if err != nil {
		log.Printf("⚠️  CloudWatch metrics disabled: %v", err)
	}
	sentryMetrics := metrics.NewSentryMetrics()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to load option catalog:", err)
	}

	promptCache := prompt.NewCache(deriveCacheTTL)
	builder := prompt.NewPromptBuilder(promptCache)
	store := session.NewStore(cfg.SessionTTL, builder, session.NewClipboard(cfg.ClipboardEnabled))

	systemPrompt, err := prompt.NewPromptLoader().GetOptimizerPrompt()
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to load optimizer prompt:", err)
	}
	optimizer := services.NewPromptOptimizer(services.OptimizerConfig{
		Enabled:       cfg.OptimizerEnabled(),
		Model:         cfg.OptimizerModel,
		SystemPrompt:  systemPrompt,
		RatePerMinute: cfg.OptimizerRatePerMinute,
	}, llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey), sentryMetrics, cloudwatch, langfuse)
	if optimizer.Enabled() {
		log.Printf("✅ Prompt optimizer enabled (model: %s)", optimizer.Model())
	} else {
		log.Println("⚠️  Prompt optimizer disabled (no API key for OPTIMIZER_MODEL)")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.SetupRouter(api.Dependencies{
		Version:       GetVersion(),
		Catalog:       cat,
		Sessions:      store,
		Cookies:       apimiddleware.NewCookieStore(cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction()),
		PromptCache:   promptCache,
		Optimizer:     optimizer,
		SentryMetrics: sentryMetrics,
		CloudWatch:    cloudwatch,
	})

	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-session-id":  true,
	}

	for k, v := range headers {
		if sensitiveKeys[strings.ToLower(k)] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
