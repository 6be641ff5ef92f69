package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/homestead/internal/server/handlers"
)

// Handlers groups the API handlers mounted under /api/v1.
type Handlers struct {
	Planner    *handlers.PlannerHandler
	Calculator *handlers.CalculatorHandler
	Catalog    *handlers.CatalogHandler
	Reports    *handlers.ReportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	if h.Planner != nil {
		h.Planner.Register(api)
	}
	if h.Calculator != nil {
		h.Calculator.Register(api)
	}
	if h.Catalog != nil {
		h.Catalog.Register(api)
	}
	if h.Reports != nil {
		h.Reports.Register(api)
	}

	logger.Info("router initialized", zap.Int("routes", len(r.Routes())))
	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
