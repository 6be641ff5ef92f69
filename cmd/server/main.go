package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/homestead/internal/catalog"
	"github.com/mamadbah2/homestead/internal/config"
	"github.com/mamadbah2/homestead/internal/repository"
	"github.com/mamadbah2/homestead/internal/repository/memory"
	"github.com/mamadbah2/homestead/internal/repository/mongodb"
	"github.com/mamadbah2/homestead/internal/repository/sheets"
	"github.com/mamadbah2/homestead/internal/scheduler"
	"github.com/mamadbah2/homestead/internal/server/handlers"
	"github.com/mamadbah2/homestead/internal/server/router"
	"github.com/mamadbah2/homestead/internal/service/notification"
	"github.com/mamadbah2/homestead/internal/service/planner"
	reportingsvc "github.com/mamadbah2/homestead/internal/service/reporting"
	"github.com/mamadbah2/homestead/internal/service/yield"
	whatsappclient "github.com/mamadbah2/homestead/pkg/clients/whatsapp"
	"github.com/mamadbah2/homestead/pkg/logger"
)

type store interface {
	repository.StateRepository
	repository.SnapshotRepository
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)
	gin.SetMode(gin.ReleaseMode)

	var repo store = memory.New()
	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		repo = mongoRepo
	} else {
		baseLogger.Warn("MONGODB_URI missing, homestead state is kept in memory")
	}

	var sheetWriter sheets.Writer
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		sheetWriter = sheetsRepo
	}

	cat := catalog.MustLoad()

	calc := yield.New(yield.Params{
		GrowingSeasonWeeks:     cfg.Planning.GrowingSeasonWeeks,
		InvestmentPerBed:       cfg.Planning.InvestmentPerBed,
		DailyCaloriesPerPerson: cfg.Planning.DailyCaloriesPerPerson,
		WaterCostPerGallon:     cfg.Planning.WaterCostPerGallon,
	})

	plannerSvc := planner.NewService(repo, calc, cat, cfg.Planning.HouseholdSize, baseLogger.Named("svc.planner"))
	reportingSvc := reportingsvc.NewService(plannerSvc, repo, sheetWriter, cfg.Sheets.ExportRange, baseLogger.Named("svc.reporting"))

	var notifier notification.Notifier
	if cfg.WhatsApp.Enabled() {
		notifier = notification.NewWhatsAppNotifier(whatsappclient.NewClient(cfg.WhatsApp), baseLogger.Named("svc.notification"))
	} else {
		baseLogger.Warn("whatsapp not configured, weekly summaries are only logged")
		notifier = notification.NewLogNotifier(baseLogger.Named("svc.notification"))
	}

	sched, err := scheduler.NewScheduler(*cfg, reportingSvc, notifier, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	engine := router.New(router.Handlers{
		Planner:    handlers.NewPlannerHandler(plannerSvc, baseLogger.Named("handlers.planner")),
		Calculator: handlers.NewCalculatorHandler(calc, cat, cfg.Planning.HouseholdSize, baseLogger.Named("handlers.calculator")),
		Catalog:    handlers.NewCatalogHandler(cat),
		Reports:    handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.reports")),
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
