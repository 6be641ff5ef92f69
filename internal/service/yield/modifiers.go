package yield

import "github.com/mamadbah2/homestead/internal/domain/models"

const defaultSpoilageRate = 0.1

// Band is a multiplicative min/max range applied to an expected yield.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ExperienceModifier returns the share of optimal yield a grower of the given
// level realistically gets. Unknown levels count as intermediate.
func ExperienceModifier(level models.ExperienceLevel) float64 {
	switch level {
	case models.ExperienceBeginner:
		return 0.70
	case models.ExperienceAdvanced:
		return 0.95
	default:
		return 0.85
	}
}

// SpoilageModifier returns the share of the harvest left after spoilage.
// A nil rate means 10%.
func SpoilageModifier(rate *float64) float64 {
	r := defaultSpoilageRate
	if rate != nil {
		r = *rate
	}
	return 1 - r
}

// PestLossModifier returns the share of the harvest surviving pests.
func PestLossModifier(pressure models.Pressure) float64 {
	switch pressure {
	case models.PressureLow:
		return 0.98
	case models.PressureHigh:
		return 0.83
	default:
		return 0.92
	}
}

// WeatherVariability returns the yield band for a weather impact level.
func WeatherVariability(impact models.Pressure) Band {
	switch impact {
	case models.PressureLow:
		return Band{Min: 0.95, Max: 1.05}
	case models.PressureHigh:
		return Band{Min: 0.75, Max: 1.25}
	default:
		return Band{Min: 0.85, Max: 1.15}
	}
}
