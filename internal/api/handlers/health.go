package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	optimizerEnabled bool
	optimizerModel   string
}

func NewHealthHandler(optimizerEnabled bool, optimizerModel string) *HealthHandler {
	return &HealthHandler{
		optimizerEnabled: optimizerEnabled,
		optimizerModel:   optimizerModel,
	}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	optimizerStatus := "disabled"
	if h.optimizerEnabled {
		optimizerStatus = "enabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"optimizer": gin.H{
			"status": optimizerStatus,
			"model":  h.optimizerModel,
		},
	})
}
