package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/homestead/internal/catalog"
	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/service/planner"
	"github.com/mamadbah2/homestead/internal/service/yield"
)

// CalculatorHandler runs stateless calculations on records sent in the body.
type CalculatorHandler struct {
	calc          *yield.Calculator
	catalog       *catalog.Catalog
	householdSize int
	logger        *zap.Logger
}

// NewCalculatorHandler constructs the HTTP handler adapter.
func NewCalculatorHandler(calc *yield.Calculator, cat *catalog.Catalog, householdSize int, logger *zap.Logger) *CalculatorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculatorHandler{calc: calc, catalog: cat, householdSize: householdSize, logger: logger}
}

// Register mounts the calculation routes.
func (h *CalculatorHandler) Register(g *gin.RouterGroup) {
	calc := g.Group("/calculate")
	calc.POST("/yield", h.Yield)
	calc.POST("/garden", h.Garden)
	calc.POST("/livestock", h.Livestock)
	calc.POST("/water", h.Water)
	calc.POST("/labor", h.Labor)
	calc.POST("/roi", h.ROI)
	calc.POST("/food-security", h.FoodSecurity)
	calc.POST("/preservation", h.Preservation)
}

type yieldRequest struct {
	Crop           models.Crop     `json:"crop"`
	Settings       models.Settings `json:"settings"`
	IncludeWeather bool            `json:"includeWeather"`
}

type gardenRequest struct {
	Crops    []models.Crop   `json:"crops" binding:"dive"`
	Settings models.Settings `json:"settings"`
}

type livestockRequest struct {
	Items     []models.LivestockItem              `json:"items" binding:"dive"`
	Overrides map[string]models.LivestockOverride `json:"overrides"`
}

type waterRequest struct {
	Crops         []models.Crop `json:"crops" binding:"dive"`
	CostPerGallon float64       `json:"costPerGallon" binding:"min=0"`
}

type foodSecurityRequest struct {
	TotalCalories float64 `json:"totalCalories" binding:"min=0"`
	HouseholdSize int     `json:"householdSize"`
}

type preservationRequest struct {
	Yield    float64                   `json:"yield" binding:"min=0"`
	Ratio    *models.PreservationRatio `json:"ratio"`
	RecipeID string                    `json:"recipeId"`
}

type preservationResponse struct {
	yield.PreservationPlan
	Recipe   *models.PreservationRecipe `json:"recipe,omitempty"`
	Supplies *yield.SupplyCost          `json:"supplies,omitempty"`
}

// Yield computes one crop's adjusted yield.
func (h *CalculatorHandler) Yield(c *gin.Context) {
	var req yieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.calc.AdjustedYield(req.Crop, req.Settings, req.IncludeWeather))
}

// Garden totals value and calories over the crops.
func (h *CalculatorHandler) Garden(c *gin.Context) {
	var req gardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.calc.GardenValue(req.Crops, req.Settings))
}

// Livestock computes livestock economics.
func (h *CalculatorHandler) Livestock(c *gin.Context) {
	var req livestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.calc.LivestockMetrics(req.Items, req.Overrides))
}

// Water sums weekly water use and cost.
func (h *CalculatorHandler) Water(c *gin.Context) {
	var req waterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.calc.WaterCosts(req.Crops, req.CostPerGallon))
}

// Labor sums seasonal labor hours.
func (h *CalculatorHandler) Labor(c *gin.Context) {
	var req gardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.calc.LaborRequirements(req.Crops, req.Settings))
}

// ROI computes the garden's return on investment.
func (h *CalculatorHandler) ROI(c *gin.Context) {
	var req gardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.calc.GardenROI(req.Crops, req.Settings))
}

// FoodSecurity rates calorie coverage. A missing household size uses the
// configured household.
func (h *CalculatorHandler) FoodSecurity(c *gin.Context) {
	var req foodSecurityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	household := req.HouseholdSize
	if household == 0 {
		household = h.householdSize
	}
	c.JSON(http.StatusOK, h.calc.FoodSecurity(req.TotalCalories, household))
}

// Preservation converts a harvest through a ratio or a catalog recipe.
func (h *CalculatorHandler) Preservation(c *gin.Context) {
	var req preservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	var resp preservationResponse
	var ratio models.PreservationRatio
	switch {
	case req.RecipeID != "":
		recipe, ok := h.catalog.RecipeByID(req.RecipeID)
		if !ok {
			respondError(c, h.logger, "preservation", fmt.Errorf("recipe %q: %w", req.RecipeID, planner.ErrNotFound))
			return
		}
		supplies := yield.SupplyCosts(recipe)
		resp.Recipe = &recipe
		resp.Supplies = &supplies
		ratio = recipe.Ratio()
	case req.Ratio != nil:
		ratio = *req.Ratio
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "ratio or recipeId is required"})
		return
	}

	plan, err := yield.PreservationNeeds(req.Yield, ratio)
	if err != nil {
		respondError(c, h.logger, "preservation", err)
		return
	}
	resp.PreservationPlan = plan
	c.JSON(http.StatusOK, resp)
}
