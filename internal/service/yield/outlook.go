package yield

import (
	"math"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

// Scenario holds the dashboard's what-if sliders. Fractions are 0..1.
type Scenario struct {
	BedMultiplier  float64 `json:"bedMultiplier" form:"bedMultiplier"`
	DroughtPenalty float64 `json:"droughtPenalty" form:"droughtPenalty"`
	EggReduction   float64 `json:"eggReduction" form:"eggReduction"`
	FeedIncrease   float64 `json:"feedIncrease" form:"feedIncrease"`
}

// Overrides turns the livestock sliders into the per-id override table.
// Only chickens are affected.
func (s Scenario) Overrides() map[string]models.LivestockOverride {
	if s.EggReduction == 0 && s.FeedIncrease == 0 {
		return nil
	}
	return map[string]models.LivestockOverride{
		models.LivestockChickens: {ProductionReduction: s.EggReduction, CostIncrease: s.FeedIncrease},
	}
}

func (s Scenario) cropScale() float64 {
	mult := s.BedMultiplier
	if mult <= 0 {
		mult = 1
	}
	return mult * (1 - s.DroughtPenalty)
}

// Outlook is the whole-homestead view under a scenario.
type Outlook struct {
	Scenario        Scenario         `json:"scenario"`
	Garden          GardenSummary    `json:"garden"`
	Livestock       LivestockSummary `json:"livestock"`
	TotalCalories   float64          `json:"totalCalories"`
	CalorieCoverage float64          `json:"calorieCoverage"`
	DaysOfCalories  int              `json:"daysOfCalories"`
	FoodSecurity    FoodSecurity     `json:"foodSecurity"`
}

// Outlook applies the scenario on top of the adjusted garden yields and the
// livestock overrides, then rates the household's calorie coverage.
func (c *Calculator) Outlook(crops []models.Crop, livestock []models.LivestockItem, settings models.Settings, scenario Scenario, householdSize int) Outlook {
	if householdSize < 1 {
		householdSize = 1
	}

	garden := c.gardenValue(crops, settings, scenario.cropScale())
	herd := c.LivestockMetrics(livestock, scenario.Overrides())
	total := garden.TotalCalories + herd.TotalCalories

	daily := c.params.DailyCaloriesPerPerson * float64(householdSize)
	out := Outlook{
		Scenario:        scenario,
		Garden:          garden,
		Livestock:       herd,
		TotalCalories:   total,
		CalorieCoverage: total / (daily * 365),
		FoodSecurity:    c.FoodSecurity(total, householdSize),
	}
	if total > 0 {
		out.DaysOfCalories = int(math.Floor(total / daily))
	}
	return out
}
