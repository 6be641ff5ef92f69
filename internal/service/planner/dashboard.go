package planner

import (
	"context"
	"time"

	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/service/yield"
)

// Dashboard is every calculated view of the current plan.
type Dashboard struct {
	GeneratedAt   time.Time              `json:"generatedAt"`
	HouseholdSize int                    `json:"householdSize"`
	Garden        yield.GardenSummary    `json:"garden"`
	Livestock     yield.LivestockSummary `json:"livestock"`
	Water         yield.WaterSummary     `json:"water"`
	Labor         yield.LaborSummary     `json:"labor"`
	ROI           yield.ROI              `json:"roi"`
	FoodSecurity  yield.FoodSecurity     `json:"foodSecurity"`
	Outlook       yield.Outlook          `json:"outlook"`
	LaborLogged   LaborLog               `json:"laborLogged"`
	Pantry        PantryTotals           `json:"pantry"`
	Distribution  map[string]int         `json:"distribution"`
}

// Dashboard evaluates the stored plan. The garden, water, labor, ROI and food
// security figures describe the plan as entered; the livestock and outlook
// figures apply the scenario. householdSize < 1 uses the configured household.
func (s *Service) Dashboard(ctx context.Context, scenario yield.Scenario, householdSize int) (Dashboard, error) {
	st, err := s.State(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	if householdSize < 1 {
		householdSize = s.householdSize
	}

	return s.evaluate(st, scenario, householdSize), nil
}

func (s *Service) evaluate(st models.HomesteadState, scenario yield.Scenario, householdSize int) Dashboard {
	garden := s.calc.GardenValue(st.Crops, st.Settings)
	herd := s.calc.LivestockMetrics(st.Livestock, scenario.Overrides())
	asEntered := s.calc.LivestockMetrics(st.Livestock, nil)

	return Dashboard{
		GeneratedAt:   s.now().UTC(),
		HouseholdSize: householdSize,
		Garden:        garden,
		Livestock:     herd,
		Water:         s.calc.WaterCosts(st.Crops, 0),
		Labor:         s.calc.LaborRequirements(st.Crops, st.Settings),
		ROI:           s.calc.GardenROI(st.Crops, st.Settings),
		FoodSecurity:  s.calc.FoodSecurity(garden.TotalCalories+asEntered.TotalCalories, householdSize),
		Outlook:       s.calc.Outlook(st.Crops, st.Livestock, st.Settings, scenario, householdSize),
		LaborLogged:   laborLog(st.Labor),
		Pantry:        pantryTotals(st.Pantry),
		Distribution:  distribution(st.Beds),
	}
}

// LaborTotals reports logged hours overall and per category.
func (s *Service) LaborTotals(ctx context.Context) (LaborLog, error) {
	st, err := s.State(ctx)
	if err != nil {
		return LaborLog{}, err
	}
	return laborLog(st.Labor), nil
}

// PantryTotals values what is left in the pantry.
func (s *Service) PantryTotals(ctx context.Context) (PantryTotals, error) {
	st, err := s.State(ctx)
	if err != nil {
		return PantryTotals{}, err
	}
	return pantryTotals(st.Pantry), nil
}

// Calendar lays out planting and harvest dates for the stored crops.
func (s *Service) Calendar(ctx context.Context, year int) (yield.Calendar, error) {
	st, err := s.State(ctx)
	if err != nil {
		return yield.Calendar{}, err
	}
	if year <= 0 {
		year = s.now().Year()
	}
	return yield.HarvestCalendar(st.Crops, year), nil
}
