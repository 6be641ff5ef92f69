package yield

import "math"

// FoodSecurity rates produced calories against a household's annual need.
type FoodSecurity struct {
	Score          int     `json:"score"`
	DaysOfFood     int     `json:"daysOfFood"`
	PercentOfNeeds float64 `json:"percentOfNeeds"`
	AnnualNeed     float64 `json:"annualNeed"`
}

// FoodSecurity scores totalCalories on 0-100: the first quarter of annual
// need earns 40 points, the next quarter 30, and the rest 0.6 per percent.
func (c *Calculator) FoodSecurity(totalCalories float64, householdSize int) FoodSecurity {
	if householdSize < 1 {
		householdSize = 1
	}

	daily := c.params.DailyCaloriesPerPerson * float64(householdSize)
	need := daily * 365
	percent := totalCalories / need * 100

	var score float64
	switch {
	case percent <= 25:
		score = percent * 1.6
	case percent <= 50:
		score = 40 + (percent-25)*1.2
	default:
		score = 70 + (percent-50)*0.6
	}

	days := math.Floor(totalCalories / daily)
	if days < 0 {
		days = 0
	}

	return FoodSecurity{
		Score:          int(math.Max(0, math.Min(100, math.Round(score)))),
		DaysOfFood:     int(days),
		PercentOfNeeds: percent,
		AnnualNeed:     need,
	}
}
