package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/imageai-prompt-builder/internal/api/middleware"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/catalog"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/metrics"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/prompt"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/services"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/session"
	webhandlers "github.com/Conceptual-Machines/imageai-prompt-builder/internal/web/handlers"
	"github.com/Conceptual-Machines/imageai-prompt-builder/pkg/embedded"
)

// Dependencies are the collaborators the router wires into handlers.
// SentryMetrics and CloudWatch may be nil.
type Dependencies struct {
	Version       string
	Catalog       *catalog.Catalog
	Sessions      *session.Store
	Cookies       sessions.Store
	PromptCache   *prompt.Cache
	Optimizer     *services.PromptOptimizer
	SentryMetrics *metrics.SentryMetrics
	CloudWatch    *metrics.Client
}

func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.SentryMetrics, deps.CloudWatch))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Browser assets
	router.StaticFS("/static", http.FS(embedded.StaticFS()))

	// Health check
	healthHandler := handlers.NewHealthHandler(deps.Optimizer.Enabled(), deps.Optimizer.Model())
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(deps.Version, deps.Sessions, deps.PromptCache)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	withSession := apimiddleware.Sessions(deps.Cookies, deps.Sessions)

	// Web page
	webHandler := webhandlers.NewWebHandler(deps.Catalog, deps.Optimizer.Enabled())
	router.GET("/", withSession, webHandler.Home)

	v1 := router.Group("/api/v1")
	{
		catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
		v1.GET("/catalog", catalogHandler.GetCatalog)
		v1.GET("/catalog/:category", catalogHandler.GetCategory)
	}

	// Builder session
	sess := v1.Group("/session")
	sess.Use(withSession)
	{
		sessionHandler := handlers.NewSessionHandler(deps.SentryMetrics, deps.CloudWatch)
		sess.GET("", sessionHandler.GetState)
		sess.PUT("/main-text", sessionHandler.SetMainText)
		sess.PUT("/subject-count", sessionHandler.SetSubjectCount)
		sess.PATCH("/subjects/:id", sessionHandler.UpdateSubject)
		sess.POST("/subjects/:id/clothing/toggle", sessionHandler.ToggleClothing)
		sess.PATCH("/style", sessionHandler.UpdateStyle)
		sess.POST("/style/:field/toggle", sessionHandler.ToggleStyle)
		sess.PATCH("/tool", sessionHandler.UpdateTool)
		sess.PUT("/group-interaction", sessionHandler.SetGroupInteraction)
		sess.GET("/prompt", sessionHandler.GetPrompt)
		sess.POST("/reset", sessionHandler.Reset)
		sess.POST("/copy", sessionHandler.Copy)

		optimizeHandler := handlers.NewOptimizeHandler(deps.Optimizer)
		sess.POST("/optimize", optimizeHandler.Optimize)
	}

	return router
}
