// Package yield turns a homestead plan into yield, value, calorie, labor,
// water and return-on-investment figures. Everything here is pure: inputs are
// read by value and never mutated.
package yield

// Defaults for the planning constants.
const (
	DefaultGrowingSeasonWeeks     = 20.0
	DefaultInvestmentPerBed       = 50.0
	DefaultDailyCaloriesPerPerson = 2500.0
	DefaultWaterGallonsPerBed     = 5.0
	DefaultLaborHoursPerBed       = 4.0
	DefaultWaterCostPerGallon     = 0.01
)

// Params holds the planning constants. Zero fields fall back to the defaults.
type Params struct {
	GrowingSeasonWeeks     float64 `json:"growingSeasonWeeks" yaml:"growingSeasonWeeks"`
	InvestmentPerBed       float64 `json:"investmentPerBed" yaml:"investmentPerBed"`
	DailyCaloriesPerPerson float64 `json:"dailyCaloriesPerPerson" yaml:"dailyCaloriesPerPerson"`
	WaterGallonsPerBed     float64 `json:"waterGallonsPerBed" yaml:"waterGallonsPerBed"`
	LaborHoursPerBed       float64 `json:"laborHoursPerBed" yaml:"laborHoursPerBed"`
	WaterCostPerGallon     float64 `json:"waterCostPerGallon" yaml:"waterCostPerGallon"`
}

// DefaultParams returns the stock planning constants.
func DefaultParams() Params {
	return Params{
		GrowingSeasonWeeks:     DefaultGrowingSeasonWeeks,
		InvestmentPerBed:       DefaultInvestmentPerBed,
		DailyCaloriesPerPerson: DefaultDailyCaloriesPerPerson,
		WaterGallonsPerBed:     DefaultWaterGallonsPerBed,
		LaborHoursPerBed:       DefaultLaborHoursPerBed,
		WaterCostPerGallon:     DefaultWaterCostPerGallon,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.GrowingSeasonWeeks <= 0 {
		p.GrowingSeasonWeeks = d.GrowingSeasonWeeks
	}
	if p.InvestmentPerBed <= 0 {
		p.InvestmentPerBed = d.InvestmentPerBed
	}
	if p.DailyCaloriesPerPerson <= 0 {
		p.DailyCaloriesPerPerson = d.DailyCaloriesPerPerson
	}
	if p.WaterGallonsPerBed <= 0 {
		p.WaterGallonsPerBed = d.WaterGallonsPerBed
	}
	if p.LaborHoursPerBed <= 0 {
		p.LaborHoursPerBed = d.LaborHoursPerBed
	}
	if p.WaterCostPerGallon <= 0 {
		p.WaterCostPerGallon = d.WaterCostPerGallon
	}
	return p
}

// Calculator evaluates plans against a fixed set of planning constants.
// It holds no other state and is safe for concurrent use.
type Calculator struct {
	params Params
}

// New builds a calculator.
func New(params Params) *Calculator {
	return &Calculator{params: params.withDefaults()}
}

// Params reports the effective constants.
func (c *Calculator) Params() Params {
	return c.params
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
