package yield

import "github.com/mamadbah2/homestead/internal/domain/models"

// WaterSummary is the garden's irrigation demand and its cost.
type WaterSummary struct {
	WeeklyGallons float64 `json:"weeklyGallons"`
	WeeklyCost    float64 `json:"weeklyCost"`
	AnnualCost    float64 `json:"annualCost"`
}

// CropLabor is one crop's seasonal labor.
type CropLabor struct {
	CropID   string   `json:"cropId"`
	CropName string   `json:"cropName"`
	Hours    float64  `json:"hours"`
	Cost     *float64 `json:"cost,omitempty"`
}

// LaborSummary is the garden's seasonal labor. LaborCost is nil when no
// hourly value is configured.
type LaborSummary struct {
	TotalSeasonHours   float64     `json:"totalSeasonHours"`
	WeeklyHoursAverage float64     `json:"weeklyHoursAverage"`
	LaborCost          *float64    `json:"laborCost,omitempty"`
	Breakdown          []CropLabor `json:"breakdown"`
}

// WaterCosts sums weekly gallons over crops (per-bed need defaults to the
// configured gallons) and prices the growing season. costPerGallon <= 0 uses
// the configured water price.
func (c *Calculator) WaterCosts(crops []models.Crop, costPerGallon float64) WaterSummary {
	if costPerGallon <= 0 {
		costPerGallon = c.params.WaterCostPerGallon
	}

	var gallons float64
	for _, crop := range crops {
		need := c.params.WaterGallonsPerBed
		if crop.WaterNeedsPerWeek != nil {
			need = *crop.WaterNeedsPerWeek
		}
		gallons += need * crop.Beds
	}

	weekly := gallons * costPerGallon
	return WaterSummary{
		WeeklyGallons: gallons,
		WeeklyCost:    weekly,
		AnnualCost:    weekly * c.params.GrowingSeasonWeeks,
	}
}

// LaborRequirements sums seasonal hours per crop and prices them at the
// settings' hourly value when one is set.
func (c *Calculator) LaborRequirements(crops []models.Crop, settings models.Settings) LaborSummary {
	rate := hourlyRate(settings)
	summary := LaborSummary{Breakdown: make([]CropLabor, 0, len(crops))}

	for _, crop := range crops {
		perBed := c.params.LaborHoursPerBed
		if crop.LaborHoursPerBed != nil {
			perBed = *crop.LaborHoursPerBed
		}

		line := CropLabor{CropID: crop.ID, CropName: crop.Name, Hours: perBed * crop.Beds}
		if rate != nil {
			cost := line.Hours * *rate
			line.Cost = &cost
		}

		summary.TotalSeasonHours += line.Hours
		summary.Breakdown = append(summary.Breakdown, line)
	}

	summary.WeeklyHoursAverage = summary.TotalSeasonHours / c.params.GrowingSeasonWeeks
	if rate != nil {
		cost := summary.TotalSeasonHours * *rate
		summary.LaborCost = &cost
	}

	return summary
}

func hourlyRate(settings models.Settings) *float64 {
	if settings.LaborHourlyValue == nil || *settings.LaborHourlyValue <= 0 {
		return nil
	}
	return settings.LaborHourlyValue
}
