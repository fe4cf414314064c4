package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetCatalog returns every option list
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

// GetCategory returns a single option list by name
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	name := c.Param("category")
	options, ok := h.catalog.Categories()[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown catalog category", "category": name})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": name,
		"options":  options,
	})
}
