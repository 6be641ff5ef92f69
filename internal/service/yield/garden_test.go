package yield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

func tomatoes() models.Crop {
	return models.Crop{
		ID:              "tomatoes",
		Name:            "Tomatoes",
		Beds:            1,
		YieldPerBed:     40,
		Unit:            "lbs",
		PricePerUnit:    2.5,
		CaloriesPerUnit: 82,
	}
}

func baselineSettings() models.Settings {
	return models.Settings{
		NumberOfBeds:    4,
		ExperienceLevel: models.ExperienceIntermediate,
		SpoilageRate:    models.Float(0.1),
		PestPressure:    models.PressureModerate,
		WeatherImpact:   models.PressureModerate,
	}
}

func TestModifiers(t *testing.T) {
	assert.Equal(t, 0.70, ExperienceModifier(models.ExperienceBeginner))
	assert.Equal(t, 0.85, ExperienceModifier(models.ExperienceIntermediate))
	assert.Equal(t, 0.95, ExperienceModifier(models.ExperienceAdvanced))
	assert.Equal(t, 0.85, ExperienceModifier(""))
	assert.Equal(t, 0.85, ExperienceModifier("expert"))

	assert.InDelta(t, 0.9, SpoilageModifier(nil), 1e-12)
	assert.InDelta(t, 1.0, SpoilageModifier(models.Float(0)), 1e-12)
	assert.InDelta(t, 0.75, SpoilageModifier(models.Float(0.25)), 1e-12)

	assert.Equal(t, 0.98, PestLossModifier(models.PressureLow))
	assert.Equal(t, 0.92, PestLossModifier(models.PressureModerate))
	assert.Equal(t, 0.83, PestLossModifier(models.PressureHigh))
	assert.Equal(t, 0.92, PestLossModifier("swarm"))

	assert.Equal(t, Band{Min: 0.95, Max: 1.05}, WeatherVariability(models.PressureLow))
	assert.Equal(t, Band{Min: 0.85, Max: 1.15}, WeatherVariability(models.PressureModerate))
	assert.Equal(t, Band{Min: 0.75, Max: 1.25}, WeatherVariability(models.PressureHigh))
	assert.Equal(t, Band{Min: 0.85, Max: 1.15}, WeatherVariability(""))
}

func TestModifierProductStaysWithinUnitInterval(t *testing.T) {
	levels := []models.ExperienceLevel{models.ExperienceBeginner, models.ExperienceIntermediate, models.ExperienceAdvanced, ""}
	pressures := []models.Pressure{models.PressureLow, models.PressureModerate, models.PressureHigh, ""}
	rates := []*float64{nil, models.Float(0), models.Float(0.1), models.Float(0.5)}

	for _, l := range levels {
		for _, p := range pressures {
			for _, r := range rates {
				product := ExperienceModifier(l) * SpoilageModifier(r) * PestLossModifier(p)
				assert.Greater(t, product, 0.0)
				assert.LessOrEqual(t, product, 1.0)
			}
		}
	}

	for _, p := range pressures {
		band := WeatherVariability(p)
		assert.LessOrEqual(t, band.Min, band.Max)
	}
}

func TestAdjustedYieldMatchesWorkedExample(t *testing.T) {
	calc := New(DefaultParams())

	est := calc.AdjustedYield(tomatoes(), baselineSettings(), false)
	assert.Equal(t, 40.0, est.BaseYield)
	assert.InDelta(t, 28.152, est.AdjustedYield, 1e-9)
	assert.Equal(t, est.AdjustedYield, est.MinYield)
	assert.Equal(t, est.AdjustedYield, est.MaxYield)
	assert.Nil(t, est.Modifiers.Weather)

	summary := calc.GardenValue([]models.Crop{tomatoes()}, baselineSettings())
	assert.InDelta(t, 70.38, summary.TotalValue, 1e-9)
	assert.InDelta(t, 2308.464, summary.TotalCalories, 1e-9)
	assert.InDelta(t, 28.152, summary.TotalYield, 1e-9)
}

func TestAdjustedYieldWithWeatherBand(t *testing.T) {
	calc := New(Params{})

	tests := []struct {
		impact   models.Pressure
		min, max float64
	}{
		{models.PressureLow, 0.95, 1.05},
		{models.PressureModerate, 0.85, 1.15},
		{models.PressureHigh, 0.75, 1.25},
		{"", 0.85, 1.15},
	}

	for _, tt := range tests {
		t.Run(string(tt.impact), func(t *testing.T) {
			settings := baselineSettings()
			settings.WeatherImpact = tt.impact

			est := calc.AdjustedYield(tomatoes(), settings, true)
			require.NotNil(t, est.Modifiers.Weather)
			assert.InDelta(t, 28.152*tt.min, est.MinYield, 1e-9)
			assert.InDelta(t, 28.152*tt.max, est.MaxYield, 1e-9)
			assert.LessOrEqual(t, est.MinYield, est.AdjustedYield)
			assert.LessOrEqual(t, est.AdjustedYield, est.MaxYield)
			assert.LessOrEqual(t, est.AdjustedYield, est.BaseYield)
		})
	}
}

func TestZeroBedsYieldNothing(t *testing.T) {
	calc := New(DefaultParams())
	crop := tomatoes()
	crop.Beds = 0

	for _, level := range []models.ExperienceLevel{models.ExperienceBeginner, models.ExperienceAdvanced} {
		settings := baselineSettings()
		settings.ExperienceLevel = level

		est := calc.AdjustedYield(crop, settings, true)
		assert.Zero(t, est.AdjustedYield)
		assert.Zero(t, est.MinYield)
		assert.Zero(t, est.MaxYield)

		summary := calc.GardenValue([]models.Crop{crop}, settings)
		assert.Zero(t, summary.TotalValue)
		assert.Zero(t, summary.TotalCalories)
	}
}

func TestNegativeInputsClampToZero(t *testing.T) {
	calc := New(DefaultParams())
	crop := tomatoes()
	crop.Beds = -2

	est := calc.AdjustedYield(crop, baselineSettings(), true)
	assert.Zero(t, est.BaseYield)
	assert.Zero(t, est.AdjustedYield)
	assert.Zero(t, est.MinYield)
	assert.Zero(t, est.MaxYield)
}

func TestGardenValueKeepsInputOrder(t *testing.T) {
	calc := New(DefaultParams())
	kale := models.Crop{ID: "kale", Name: "Kale", Beds: 2, YieldPerBed: 10, PricePerUnit: 5, CaloriesPerUnit: 35}
	crops := []models.Crop{kale, tomatoes()}

	summary := calc.GardenValue(crops, baselineSettings())
	require.Len(t, summary.Breakdown, 2)
	assert.Equal(t, "Kale", summary.Breakdown[0].CropName)
	assert.Equal(t, "Tomatoes", summary.Breakdown[1].CropName)
	assert.InDelta(t, summary.Breakdown[0].Value+summary.Breakdown[1].Value, summary.TotalValue, 1e-9)
}
