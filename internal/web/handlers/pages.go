package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apimiddleware "github.com/Conceptual-Machines/imageai-prompt-builder/internal/api/middleware"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/catalog"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/logger"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/web/templates"
)

type WebHandler struct {
	catalog          *catalog.Catalog
	optimizerEnabled bool
}

func NewWebHandler(cat *catalog.Catalog, optimizerEnabled bool) *WebHandler {
	return &WebHandler{
		catalog:          cat,
		optimizerEnabled: optimizerEnabled,
	}
}

// Home renders the builder page for the caller's session
func (h *WebHandler) Home(c *gin.Context) {
	sess, ok := apimiddleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not resolved"})
		return
	}

	data := templates.PageData{
		SessionID:  sess.ID,
		Result:     sess.Derive(),
		Categories: h.catalog.Categories(),
		Optimizer:  h.optimizerEnabled,
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := templates.BuilderPage(data).Render(c.Request.Context(), c.Writer); err != nil {
		logger.Error("Failed to render builder page", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
	}
}
