package yield

import (
	"math"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

// ROI is the garden's annual return on its running costs.
type ROI struct {
	AnnualValue       float64 `json:"annualValue"`
	AnnualCosts       float64 `json:"annualCosts"`
	NetValue          float64 `json:"netValue"`
	ROIPercent        float64 `json:"roi"`
	InitialInvestment float64 `json:"initialInvestment"`
	BreakEvenMonths   *int    `json:"breakEvenMonths,omitempty"`
	IncludesLaborCost bool    `json:"includesLaborCost"`
}

// GardenROI weighs the garden's value against seed, water and (when priced)
// labor costs. ROI is 0 when there are no costs. BreakEvenMonths is nil when
// the garden never pays back its bed setup.
func (c *Calculator) GardenROI(crops []models.Crop, settings models.Settings) ROI {
	value := c.GardenValue(crops, settings).TotalValue
	water := c.WaterCosts(crops, 0).AnnualCost
	labor := c.LaborRequirements(crops, settings).LaborCost

	costs := water
	if settings.SeedBudget != nil {
		costs += *settings.SeedBudget
	}
	if labor != nil {
		costs += *labor
	}

	out := ROI{
		AnnualValue:       value,
		AnnualCosts:       costs,
		NetValue:          value - costs,
		InitialInvestment: float64(settings.NumberOfBeds) * c.params.InvestmentPerBed,
		IncludesLaborCost: labor != nil && *labor > 0,
	}

	if costs > 0 {
		out.ROIPercent = out.NetValue / costs * 100
	}

	if out.NetValue > 0 {
		months := int(math.Ceil(out.InitialInvestment / out.NetValue * 12))
		out.BreakEvenMonths = &months
	}

	return out
}
