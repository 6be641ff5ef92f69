package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/homestead/internal/catalog"
	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/repository/memory"
	"github.com/mamadbah2/homestead/internal/service/planner"
	"github.com/mamadbah2/homestead/internal/service/yield"
)

type recordingSheet struct {
	ranges []string
	rows   [][]interface{}
	err    error
}

func (r *recordingSheet) AppendRows(_ context.Context, sheetRange string, rows [][]interface{}) error {
	r.ranges = append(r.ranges, sheetRange)
	r.rows = append(r.rows, rows...)
	return r.err
}

func newPlanner(t *testing.T, repo *memory.Repository) *planner.Service {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	svc := planner.NewService(repo, yield.New(yield.Params{}), cat, 1, nil)

	_, err = svc.AddCrop(context.Background(), planner.NewCropRequest{
		Crop: &models.Crop{Name: "Tomatoes", Beds: 2, YieldPerBed: 50, Unit: "lbs", PricePerUnit: 3, CaloriesPerUnit: 82},
	})
	require.NoError(t, err)
	return svc
}

func TestGenerateWeeklyReport(t *testing.T) {
	repo := memory.New()
	plan := newPlanner(t, repo)
	sheet := &recordingSheet{}
	svc := NewService(plan, repo, sheet, "Yields!A:F", nil)
	ctx := context.Background()

	now := time.Date(2026, time.June, 5, 20, 0, 0, 0, time.UTC)
	report, err := svc.GenerateWeeklyReport(ctx, now)
	require.NoError(t, err)

	snap := report.Snapshot
	assert.Equal(t, time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC), snap.Date)
	assert.InDelta(t, 70.38*3, snap.GardenValue, 0.005)
	assert.InDelta(t, 174+430, snap.LivestockNetValue, 0.005)
	assert.Contains(t, report.Text, "Homestead summary (2026-06-05)")
	assert.Contains(t, report.Text, "Garden: $211.14/yr")
	assert.NotContains(t, report.Text, " vs ")

	require.Equal(t, []string{"Yields!A:F"}, sheet.ranges)
	require.Len(t, sheet.rows, 1)
	assert.Equal(t, []interface{}{"2026-06-05", "Tomatoes", "70.4", "211.14", "5771"}, sheet.rows[0])

	history, err := svc.History(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = plan.UpdateLivestock(ctx, models.LivestockChickens, models.LivestockPatch{Count: floatPtr(0)})
	require.NoError(t, err)

	next, err := svc.GenerateWeeklyReport(ctx, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Contains(t, next.Text, "(-$174.00 vs 2026-06-05)")

	history, err = svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Date.After(history[1].Date))
}

func TestGenerateWeeklyReportIgnoresExportFailure(t *testing.T) {
	repo := memory.New()
	sheet := &recordingSheet{err: errors.New("quota exceeded")}
	svc := NewService(newPlanner(t, repo), repo, sheet, "Yields!A:F", nil)

	_, err := svc.GenerateWeeklyReport(context.Background(), time.Now())
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestGenerateWeeklyReportWithoutSheet(t *testing.T) {
	repo := memory.New()
	svc := NewService(newPlanner(t, repo), repo, nil, "", nil)

	report, err := svc.GenerateWeeklyReport(context.Background(), time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, report.Text)
}

func TestSummary(t *testing.T) {
	months := 10
	snap := models.PlanSnapshot{
		Date:              time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC),
		GardenValue:       1234.5,
		GardenCalories:    100000.4,
		LivestockNetValue: -12.345,
		NetValue:          1222.15,
		ROIPercent:        140,
		BreakEvenMonths:   &months,
		FoodSecurityScore: 12,
		DaysOfFood:        40,
		LaborHoursLogged:  6.25,
	}

	text := Summary(snap, nil)
	assert.Contains(t, text, "Garden: $1234.50/yr, 100000 kcal")
	assert.Contains(t, text, "Livestock: -$12.35 net/yr")
	assert.Contains(t, text, "Garden ROI: 140.0%, break-even in 10 months")
	assert.Contains(t, text, "Food security: 12/100, 40 days of food")
	assert.Contains(t, text, "Labor logged: 6.3 h")

	prev := models.PlanSnapshot{Date: snap.Date.AddDate(0, 0, -7), NetValue: 1000}
	assert.Contains(t, Summary(snap, &prev), "(+$222.15 vs 2026-06-05)")
}

func floatPtr(v float64) *float64 { return &v }
