package yield

import "github.com/mamadbah2/homestead/internal/domain/models"

// Modifiers are the multipliers applied to a crop's base yield.
type Modifiers struct {
	Experience float64 `json:"experience"`
	Spoilage   float64 `json:"spoilage"`
	Pest       float64 `json:"pest"`
	Weather    *Band   `json:"weather,omitempty"`
}

// Estimate is a crop's expected yield.
type Estimate struct {
	BaseYield     float64   `json:"baseYield"`
	AdjustedYield float64   `json:"adjustedYield"`
	MinYield      float64   `json:"minYield"`
	MaxYield      float64   `json:"maxYield"`
	Modifiers     Modifiers `json:"modifiers"`
}

// CropResult is one crop's line in a garden breakdown.
type CropResult struct {
	CropID   string  `json:"cropId"`
	CropName string  `json:"cropName"`
	Yield    float64 `json:"yield"`
	Value    float64 `json:"value"`
	Calories float64 `json:"calories"`
}

// GardenSummary totals the garden. Breakdown follows input order.
type GardenSummary struct {
	TotalValue    float64      `json:"totalValue"`
	TotalCalories float64      `json:"totalCalories"`
	TotalYield    float64      `json:"totalYield"`
	Breakdown     []CropResult `json:"breakdown"`
}

// AdjustedYield scales beds x yieldPerBed by experience, spoilage and pest
// losses. With includeWeather the min/max band comes from the weather impact;
// otherwise both equal the adjusted yield. Results never go below zero.
func (c *Calculator) AdjustedYield(crop models.Crop, settings models.Settings, includeWeather bool) Estimate {
	mods := Modifiers{
		Experience: ExperienceModifier(settings.ExperienceLevel),
		Spoilage:   SpoilageModifier(settings.SpoilageRate),
		Pest:       PestLossModifier(settings.PestPressure),
	}

	base := crop.Beds * crop.YieldPerBed
	adjusted := nonNegative(base * mods.Experience * mods.Spoilage * mods.Pest)

	est := Estimate{
		BaseYield:     nonNegative(base),
		AdjustedYield: adjusted,
		MinYield:      adjusted,
		MaxYield:      adjusted,
		Modifiers:     mods,
	}

	if includeWeather {
		band := WeatherVariability(settings.WeatherImpact)
		est.MinYield = nonNegative(adjusted * band.Min)
		est.MaxYield = nonNegative(adjusted * band.Max)
		est.Modifiers.Weather = &band
	}

	return est
}

// GardenValue prices and counts calories for every crop's adjusted yield.
func (c *Calculator) GardenValue(crops []models.Crop, settings models.Settings) GardenSummary {
	return c.gardenValue(crops, settings, 1)
}

func (c *Calculator) gardenValue(crops []models.Crop, settings models.Settings, scale float64) GardenSummary {
	summary := GardenSummary{Breakdown: make([]CropResult, 0, len(crops))}

	for _, crop := range crops {
		y := nonNegative(c.AdjustedYield(crop, settings, false).AdjustedYield * scale)
		line := CropResult{
			CropID:   crop.ID,
			CropName: crop.Name,
			Yield:    y,
			Value:    y * crop.PricePerUnit,
			Calories: y * crop.CaloriesPerUnit,
		}

		summary.TotalYield += line.Yield
		summary.TotalValue += line.Value
		summary.TotalCalories += line.Calories
		summary.Breakdown = append(summary.Breakdown, line)
	}

	return summary
}
