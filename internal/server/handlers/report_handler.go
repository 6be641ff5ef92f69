package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/service/reporting"
)

const defaultHistoryLimit = 12

// Reports generates and lists weekly reports.
type Reports interface {
	GenerateWeeklyReport(ctx context.Context, now time.Time) (reporting.Report, error)
	History(ctx context.Context, limit int) ([]models.PlanSnapshot, error)
}

// ReportHandler exposes the weekly snapshots.
type ReportHandler struct {
	reports Reports
	logger  *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(reports Reports, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reports: reports, logger: logger}
}

// Register mounts the report routes.
func (h *ReportHandler) Register(g *gin.RouterGroup) {
	g.GET("/reports", h.History)
	g.POST("/reports/weekly", h.Generate)
}

// History lists the latest snapshots, ?limit= defaults to 12.
func (h *ReportHandler) History(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	snaps, err := h.reports.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "report history", err)
		return
	}
	c.JSON(http.StatusOK, snaps)
}

// Generate takes a snapshot now and returns the summary without sending it.
func (h *ReportHandler) Generate(c *gin.Context) {
	report, err := h.reports.GenerateWeeklyReport(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, h.logger, "generate report", err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
