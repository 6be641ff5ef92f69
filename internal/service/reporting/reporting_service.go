package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/repository"
	"github.com/mamadbah2/homestead/internal/repository/sheets"
	"github.com/mamadbah2/homestead/internal/service/planner"
	"github.com/mamadbah2/homestead/internal/service/yield"
)

const dateLayout = "2006-01-02"

// DashboardProvider evaluates the current plan.
type DashboardProvider interface {
	Dashboard(ctx context.Context, scenario yield.Scenario, householdSize int) (planner.Dashboard, error)
}

// Report is one weekly summary.
type Report struct {
	Snapshot models.PlanSnapshot `json:"snapshot"`
	Text     string              `json:"text"`
}

// Service snapshots the plan every week and renders the summary message.
type Service struct {
	planner     DashboardProvider
	snapshots   repository.SnapshotRepository
	sheet       sheets.Writer
	exportRange string
	logger      *zap.Logger
}

// NewService wires a new reporting service instance. sheet may be nil to skip
// the spreadsheet export.
func NewService(provider DashboardProvider, snapshots repository.SnapshotRepository, sheet sheets.Writer, exportRange string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		planner:     provider,
		snapshots:   snapshots,
		sheet:       sheet,
		exportRange: exportRange,
		logger:      logger,
	}
}

// GenerateWeeklyReport stores a snapshot of the plan as of now, exports the
// crop breakdown and returns the summary text.
func (s *Service) GenerateWeeklyReport(ctx context.Context, now time.Time) (Report, error) {
	dash, err := s.planner.Dashboard(ctx, yield.Scenario{}, 0)
	if err != nil {
		return Report{}, fmt.Errorf("evaluate plan: %w", err)
	}

	var previous *models.PlanSnapshot
	if history, err := s.snapshots.ListSnapshots(ctx, 1); err != nil {
		s.logger.Warn("previous snapshot lookup failed", zap.Error(err))
	} else if len(history) > 0 {
		previous = &history[0]
	}

	snap := Snapshot(dash, now)
	if err := s.snapshots.SaveSnapshot(ctx, snap); err != nil {
		return Report{}, fmt.Errorf("save snapshot: %w", err)
	}

	if s.sheet != nil {
		if err := s.sheet.AppendRows(ctx, s.exportRange, BreakdownRows(dash, now)); err != nil {
			s.logger.Warn("crop breakdown export failed", zap.Error(err))
		}
	}

	s.logger.Info("weekly snapshot stored",
		zap.Time("date", snap.Date),
		zap.Float64("net_value", snap.NetValue),
		zap.Int("food_security_score", snap.FoodSecurityScore),
	)

	return Report{Snapshot: snap, Text: Summary(snap, previous)}, nil
}

// History returns the latest snapshots, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]models.PlanSnapshot, error) {
	snaps, err := s.snapshots.ListSnapshots(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snaps, nil
}

// Snapshot condenses a dashboard into the stored weekly record.
func Snapshot(dash planner.Dashboard, now time.Time) models.PlanSnapshot {
	day := now.UTC().Truncate(24 * time.Hour)
	return models.PlanSnapshot{
		Date:              day,
		GardenValue:       money(dash.Garden.TotalValue),
		GardenCalories:    dash.Garden.TotalCalories,
		LivestockNetValue: money(dash.Livestock.NetValue),
		LivestockCalories: dash.Livestock.TotalCalories,
		AnnualCosts:       money(dash.ROI.AnnualCosts),
		NetValue:          money(dash.ROI.NetValue + dash.Livestock.NetValue),
		ROIPercent:        dash.ROI.ROIPercent,
		BreakEvenMonths:   dash.ROI.BreakEvenMonths,
		FoodSecurityScore: dash.FoodSecurity.Score,
		DaysOfFood:        dash.FoodSecurity.DaysOfFood,
		LaborHoursLogged:  dash.LaborLogged.TotalHours,
		CreatedAt:         now.UTC(),
	}
}

// BreakdownRows is the per-crop spreadsheet export: date, crop, yield, value, calories.
func BreakdownRows(dash planner.Dashboard, now time.Time) [][]interface{} {
	date := now.UTC().Format(dateLayout)
	rows := make([][]interface{}, 0, len(dash.Garden.Breakdown))
	for _, line := range dash.Garden.Breakdown {
		rows = append(rows, []interface{}{
			date,
			line.CropName,
			decimal.NewFromFloat(line.Yield).StringFixed(1),
			decimal.NewFromFloat(line.Value).StringFixed(2),
			decimal.NewFromFloat(line.Calories).Round(0).String(),
		})
	}
	return rows
}

// Summary renders the WhatsApp message for a snapshot, with the change in net
// value when a previous week exists.
func Summary(snap models.PlanSnapshot, previous *models.PlanSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Homestead summary (%s)\n", snap.Date.Format(dateLayout))
	fmt.Fprintf(&b, "Garden: %s/yr, %s kcal\n", dollars(snap.GardenValue), calories(snap.GardenCalories))
	fmt.Fprintf(&b, "Livestock: %s net/yr, %s kcal\n", dollars(snap.LivestockNetValue), calories(snap.LivestockCalories))
	fmt.Fprintf(&b, "Net value: %s/yr", dollars(snap.NetValue))
	if previous != nil {
		delta := decimal.NewFromFloat(snap.NetValue).Sub(decimal.NewFromFloat(previous.NetValue)).Round(2)
		sign := "+"
		if delta.IsNegative() {
			sign = "-"
		}
		fmt.Fprintf(&b, " (%s$%s vs %s)", sign, delta.Abs().StringFixed(2), previous.Date.Format(dateLayout))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Garden ROI: %s%%", decimal.NewFromFloat(snap.ROIPercent).StringFixed(1))
	if snap.BreakEvenMonths != nil {
		fmt.Fprintf(&b, ", break-even in %d months", *snap.BreakEvenMonths)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Food security: %d/100, %d days of food\n", snap.FoodSecurityScore, snap.DaysOfFood)
	fmt.Fprintf(&b, "Labor logged: %s h", decimal.NewFromFloat(snap.LaborHoursLogged).StringFixed(1))
	return b.String()
}

func money(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func dollars(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

func calories(v float64) string {
	return decimal.NewFromFloat(v).Round(0).String()
}
