package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/homestead/internal/catalog"
)

// CatalogHandler serves the built-in crop and recipe catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler constructs the HTTP handler adapter.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Register mounts the catalog routes.
func (h *CatalogHandler) Register(g *gin.RouterGroup) {
	cat := g.Group("/catalog")
	cat.GET("/crops", h.Crops)
	cat.GET("/crops/:id", h.Crop)
	cat.GET("/categories", h.Categories)
	cat.GET("/recipes", h.Recipes)
}

// Crops lists catalog crops, optionally filtered by ?season=.
func (h *CatalogHandler) Crops(c *gin.Context) {
	if season := c.Query("season"); season != "" {
		c.JSON(http.StatusOK, h.catalog.CropsBySeason(season))
		return
	}
	c.JSON(http.StatusOK, h.catalog.Crops())
}

// Crop returns one catalog crop with its recipes.
func (h *CatalogHandler) Crop(c *gin.Context) {
	crop, ok := h.catalog.CropByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "crop not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"crop": crop, "recipes": h.catalog.RecipesByCrop(crop.ID)})
}

// Categories lists the crop categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Categories())
}

// Recipes lists preservation recipes, optionally filtered by ?crop=.
func (h *CatalogHandler) Recipes(c *gin.Context) {
	if crop := c.Query("crop"); crop != "" {
		c.JSON(http.StatusOK, h.catalog.RecipesByCrop(crop))
		return
	}
	c.JSON(http.StatusOK, h.catalog.Recipes())
}
