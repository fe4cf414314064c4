package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/logger"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/services"
)

type OptimizeHandler struct {
	optimizer *services.PromptOptimizer
}

func NewOptimizeHandler(optimizer *services.PromptOptimizer) *OptimizeHandler {
	return &OptimizeHandler{optimizer: optimizer}
}

// OptimizeRequest optionally overrides the prompt; the derived prompt is used otherwise
type OptimizeRequest struct {
	Prompt string `json:"prompt"`
}

// Optimize rewrites the session's prompt with the configured LLM
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody, "details": err.Error()})
		return
	}

	text := strings.TrimSpace(req.Prompt)
	if text == "" {
		text = sess.Derive().Prompt
	}

	result, err := h.optimizer.Optimize(c.Request.Context(), sess.ID, text)
	if err != nil {
		fields := logger.WithContext(c).With(logger.Fields{"error": err.Error()})
		switch {
		case errors.Is(err, services.ErrOptimizerDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrRateLimited):
			logger.Warn("Optimizer rate limited", fields)
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEmptyPrompt):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Optimizer request failed", err, logger.WithContext(c))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Prompt optimization failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
