package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/service/planner"
	"github.com/mamadbah2/homestead/internal/service/yield"
)

// PlannerHandler exposes the stored homestead plan over HTTP.
type PlannerHandler struct {
	svc    *planner.Service
	logger *zap.Logger
}

// NewPlannerHandler constructs the HTTP handler adapter.
func NewPlannerHandler(svc *planner.Service, logger *zap.Logger) *PlannerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerHandler{svc: svc, logger: logger}
}

// Register mounts the plan routes.
func (h *PlannerHandler) Register(g *gin.RouterGroup) {
	g.GET("/state", h.State)
	g.PATCH("/settings", h.UpdateSettings)

	g.POST("/crops", h.AddCrop)
	g.PATCH("/crops/:id", h.UpdateCrop)
	g.DELETE("/crops/:id", h.RemoveCrop)

	g.POST("/livestock", h.AddLivestock)
	g.PATCH("/livestock/:id", h.UpdateLivestock)
	g.DELETE("/livestock/:id", h.RemoveLivestock)

	g.POST("/beds", h.AddBed)
	g.PUT("/beds/sync", h.SyncBeds)
	g.GET("/beds/distribution", h.Distribution)
	g.DELETE("/beds/:id", h.RemoveBed)
	g.POST("/beds/:id/crops", h.AssignCropToBed)
	g.DELETE("/beds/:id/crops/:cropId", h.RemoveCropFromBed)
	g.PUT("/beds/:id/cells/:index", h.AssignCell)
	g.DELETE("/beds/:id/cells/:index", h.ClearCell)

	g.GET("/labor", h.LaborTotals)
	g.POST("/labor", h.AddLabor)
	g.PATCH("/labor/:id", h.UpdateLabor)
	g.DELETE("/labor/:id", h.RemoveLabor)

	g.POST("/meals", h.AddMeal)

	g.GET("/pantry", h.Pantry)
	g.POST("/pantry/initialize", h.InitializePantry)
	g.POST("/pantry/:id/consume", h.ConsumePantry)

	g.GET("/dashboard", h.Dashboard)
	g.GET("/calendar", h.Calendar)
}

// State returns the whole homestead document.
func (h *PlannerHandler) State(c *gin.Context) {
	st, err := h.svc.State(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "load state", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// UpdateSettings merges a partial settings update.
func (h *PlannerHandler) UpdateSettings(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	st, err := h.svc.UpdateSettings(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.logger, "update settings", err)
		return
	}
	c.JSON(http.StatusOK, st.Settings)
}

// AddCrop adds a catalog or custom crop.
func (h *PlannerHandler) AddCrop(c *gin.Context) {
	var req planner.NewCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	crop, err := h.svc.AddCrop(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "add crop", err)
		return
	}
	c.JSON(http.StatusCreated, crop)
}

// UpdateCrop patches a crop.
func (h *PlannerHandler) UpdateCrop(c *gin.Context) {
	var patch models.CropPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	crop, err := h.svc.UpdateCrop(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, "update crop", err)
		return
	}
	c.JSON(http.StatusOK, crop)
}

// RemoveCrop deletes a crop.
func (h *PlannerHandler) RemoveCrop(c *gin.Context) {
	if err := h.svc.RemoveCrop(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "remove crop", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddLivestock adds a livestock group.
func (h *PlannerHandler) AddLivestock(c *gin.Context) {
	var item models.LivestockItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	item, err := h.svc.AddLivestock(c.Request.Context(), item)
	if err != nil {
		respondError(c, h.logger, "add livestock", err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateLivestock patches a livestock group.
func (h *PlannerHandler) UpdateLivestock(c *gin.Context) {
	var patch models.LivestockPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	item, err := h.svc.UpdateLivestock(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, "update livestock", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveLivestock deletes a livestock group.
func (h *PlannerHandler) RemoveLivestock(c *gin.Context) {
	if err := h.svc.RemoveLivestock(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "remove livestock", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddBed appends an empty bed.
func (h *PlannerHandler) AddBed(c *gin.Context) {
	bed, err := h.svc.AddBed(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "add bed", err)
		return
	}
	c.JSON(http.StatusCreated, bed)
}

type syncBedsRequest struct {
	Count *int `json:"count" binding:"required,min=0,max=500"`
}

// SyncBeds resizes the bed list.
func (h *PlannerHandler) SyncBeds(c *gin.Context) {
	var req syncBedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	st, err := h.svc.SyncBedCount(c.Request.Context(), *req.Count)
	if err != nil {
		respondError(c, h.logger, "sync beds", err)
		return
	}
	c.JSON(http.StatusOK, st.Beds)
}

// Distribution counts planted cells per crop.
func (h *PlannerHandler) Distribution(c *gin.Context) {
	dist, err := h.svc.CropDistribution(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "crop distribution", err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

// RemoveBed deletes a bed.
func (h *PlannerHandler) RemoveBed(c *gin.Context) {
	if err := h.svc.RemoveBed(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "remove bed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

type cropRef struct {
	CropID string `json:"cropId" binding:"required"`
}

// AssignCropToBed lists a crop in a bed.
func (h *PlannerHandler) AssignCropToBed(c *gin.Context) {
	var req cropRef
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	bed, err := h.svc.AssignCropToBed(c.Request.Context(), c.Param("id"), req.CropID)
	if err != nil {
		respondError(c, h.logger, "assign crop to bed", err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

// RemoveCropFromBed drops a crop from a bed's list.
func (h *PlannerHandler) RemoveCropFromBed(c *gin.Context) {
	bed, err := h.svc.RemoveCropFromBed(c.Request.Context(), c.Param("id"), c.Param("cropId"))
	if err != nil {
		respondError(c, h.logger, "remove crop from bed", err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

// AssignCell plants a crop in one grid cell.
func (h *PlannerHandler) AssignCell(c *gin.Context) {
	index, ok := intParam(c, "index")
	if !ok {
		return
	}

	var req cropRef
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	bed, err := h.svc.AssignCropToCell(c.Request.Context(), c.Param("id"), index, req.CropID)
	if err != nil {
		respondError(c, h.logger, "assign cell", err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

// ClearCell empties one grid cell.
func (h *PlannerHandler) ClearCell(c *gin.Context) {
	index, ok := intParam(c, "index")
	if !ok {
		return
	}

	bed, err := h.svc.ClearCell(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		respondError(c, h.logger, "clear cell", err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

// LaborTotals reports logged hours.
func (h *PlannerHandler) LaborTotals(c *gin.Context) {
	totals, err := h.svc.LaborTotals(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "labor totals", err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// AddLabor logs work.
func (h *PlannerHandler) AddLabor(c *gin.Context) {
	var entry models.LaborEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	entry, err := h.svc.AddLabor(c.Request.Context(), entry)
	if err != nil {
		respondError(c, h.logger, "add labor", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateLabor patches a labor entry.
func (h *PlannerHandler) UpdateLabor(c *gin.Context) {
	var patch models.LaborPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	entry, err := h.svc.UpdateLabor(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, "update labor", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RemoveLabor deletes a labor entry.
func (h *PlannerHandler) RemoveLabor(c *gin.Context) {
	if err := h.svc.RemoveLabor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "remove labor", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMeal plans a meal.
func (h *PlannerHandler) AddMeal(c *gin.Context) {
	var req planner.NewMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	meal, err := h.svc.AddMeal(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "add meal", err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// Pantry returns the pantry items with their totals.
func (h *PlannerHandler) Pantry(c *gin.Context) {
	st, err := h.svc.State(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "load pantry", err)
		return
	}
	totals, err := h.svc.PantryTotals(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "pantry totals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": st.Pantry, "totals": totals})
}

// InitializePantry fills the pantry from expected production.
func (h *PlannerHandler) InitializePantry(c *gin.Context) {
	items, err := h.svc.InitializePantryFromProduction(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "initialize pantry", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type consumeRequest struct {
	Amount float64 `json:"amount" binding:"gt=0"`
}

// ConsumePantry takes an amount off a pantry item.
func (h *PlannerHandler) ConsumePantry(c *gin.Context) {
	var req consumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	item, err := h.svc.ConsumePantry(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, h.logger, "consume pantry", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type dashboardQuery struct {
	yield.Scenario
	Household int `form:"household" binding:"min=0"`
}

// Dashboard evaluates the plan under the scenario in the query string.
func (h *PlannerHandler) Dashboard(c *gin.Context) {
	var q dashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	if !validScenario(q.Scenario) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scenario fractions must be between 0 and 1 and bedMultiplier non-negative"})
		return
	}

	dash, err := h.svc.Dashboard(c.Request.Context(), q.Scenario, q.Household)
	if err != nil {
		respondError(c, h.logger, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Calendar lays out the year's planting and harvest dates.
func (h *PlannerHandler) Calendar(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a positive integer"})
			return
		}
		year = v
	}

	cal, err := h.svc.Calendar(c.Request.Context(), year)
	if err != nil {
		respondError(c, h.logger, "calendar", err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

func validScenario(s yield.Scenario) bool {
	unit := func(v float64) bool { return v >= 0 && v <= 1 }
	return s.BedMultiplier >= 0 && unit(s.DroughtPenalty) && unit(s.EggReduction) && s.FeedIncrease >= 0
}
