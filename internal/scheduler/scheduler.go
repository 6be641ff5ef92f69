package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/homestead/internal/config"
	"github.com/mamadbah2/homestead/internal/service/notification"
	"github.com/mamadbah2/homestead/internal/service/reporting"
)

const reportTimeout = 2 * time.Minute

// ReportGenerator produces the weekly report.
type ReportGenerator interface {
	GenerateWeeklyReport(ctx context.Context, now time.Time) (reporting.Report, error)
}

// Scheduler runs the weekly snapshot and summary on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	reports   ReportGenerator
	notifier  notification.Notifier
	schedule  string
	recipient string
	location  *time.Location
	logger    *zap.Logger
}

// NewScheduler creates a scheduler in the configured reporting timezone.
func NewScheduler(cfg config.Config, reports ReportGenerator, notifier notification.Notifier, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := cfg.Reporting.Location()
	if err != nil {
		return nil, fmt.Errorf("load reporting timezone: %w", err)
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		reports:   reports,
		notifier:  notifier,
		schedule:  cfg.Reporting.CronSchedule,
		recipient: cfg.WhatsApp.ReportRecipient,
		location:  loc,
		logger:    logger,
	}, nil
}

// Start registers the weekly job and starts the scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sendWeeklyReport); err != nil {
		return fmt.Errorf("schedule weekly report %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("schedule", s.schedule), zap.String("timezone", s.location.String()))
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendWeeklyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	if err := s.RunWeeklyReport(ctx, time.Now().In(s.location)); err != nil {
		s.logger.Error("weekly report failed", zap.Error(err))
	}
}

// RunWeeklyReport generates the report and sends it to the configured recipient.
func (s *Scheduler) RunWeeklyReport(ctx context.Context, now time.Time) error {
	s.logger.Info("generating weekly report")

	report, err := s.reports.GenerateWeeklyReport(ctx, now)
	if err != nil {
		return fmt.Errorf("generate weekly report: %w", err)
	}

	if err := s.notifier.Send(ctx, s.recipient, report.Text); err != nil {
		return fmt.Errorf("send weekly report: %w", err)
	}

	s.logger.Info("weekly report sent")
	return nil
}
