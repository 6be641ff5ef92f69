package models

// ExperienceLevel describes the grower's skill, which scales expected yields.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Pressure grades an external factor such as weather impact or pest pressure.
type Pressure string

const (
	PressureLow      Pressure = "low"
	PressureModerate Pressure = "moderate"
	PressureHigh     Pressure = "high"
)

// Settings holds the homestead-wide economics and reality factors.
// Optional values are pointers; nil selects the documented default.
type Settings struct {
	NumberOfBeds            int      `json:"numberOfBeds" bson:"numberOfBeds" yaml:"numberOfBeds" binding:"min=0"`
	BedLengthFeet           float64  `json:"bedLengthFeet" bson:"bedLengthFeet" yaml:"bedLengthFeet" binding:"min=0"`
	BedWidthFeet            float64  `json:"bedWidthFeet" bson:"bedWidthFeet" yaml:"bedWidthFeet" binding:"min=0"`
	MonthlyGroceryBudget    float64  `json:"monthlyGroceryBudget" bson:"monthlyGroceryBudget" yaml:"monthlyGroceryBudget"`
	LaborHourlyValue        *float64 `json:"laborHourlyValue,omitempty" bson:"laborHourlyValue,omitempty" yaml:"laborHourlyValue,omitempty"`
	EggPricePerDozen        float64  `json:"eggPricePerDozen" bson:"eggPricePerDozen" yaml:"eggPricePerDozen"`
	HoneyPricePerLb         float64  `json:"honeyPricePerLb" bson:"honeyPricePerLb" yaml:"honeyPricePerLb"`
	FeedCostPerChickenMonth float64  `json:"feedCostPerChickenMonth" bson:"feedCostPerChickenMonth" yaml:"feedCostPerChickenMonth"`
	HiveMaintenanceAnnual   float64  `json:"hiveMaintenanceAnnual" bson:"hiveMaintenanceAnnual" yaml:"hiveMaintenanceAnnual"`

	ClimateZone     string          `json:"climateZone,omitempty" bson:"climateZone,omitempty" yaml:"climateZone,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty" bson:"experienceLevel,omitempty" yaml:"experienceLevel,omitempty"`
	SeedBudget      *float64        `json:"seedBudget,omitempty" bson:"seedBudget,omitempty" yaml:"seedBudget,omitempty"`

	SpoilageRate  *float64 `json:"spoilageRate,omitempty" bson:"spoilageRate,omitempty" yaml:"spoilageRate,omitempty" binding:"omitempty,min=0,max=1"`
	WeatherImpact Pressure `json:"weatherImpact,omitempty" bson:"weatherImpact,omitempty" yaml:"weatherImpact,omitempty"`
	PestPressure  Pressure `json:"pestPressure,omitempty" bson:"pestPressure,omitempty" yaml:"pestPressure,omitempty"`
}

// SettingsPatch carries a partial settings update. Nil fields are left untouched.
type SettingsPatch struct {
	NumberOfBeds            *int             `json:"numberOfBeds,omitempty" binding:"omitempty,min=0,max=500"`
	BedLengthFeet           *float64         `json:"bedLengthFeet,omitempty" binding:"omitempty,min=0"`
	BedWidthFeet            *float64         `json:"bedWidthFeet,omitempty" binding:"omitempty,min=0"`
	MonthlyGroceryBudget    *float64         `json:"monthlyGroceryBudget,omitempty" binding:"omitempty,min=0"`
	LaborHourlyValue        *float64         `json:"laborHourlyValue,omitempty" binding:"omitempty,min=0"`
	EggPricePerDozen        *float64         `json:"eggPricePerDozen,omitempty" binding:"omitempty,min=0"`
	HoneyPricePerLb         *float64         `json:"honeyPricePerLb,omitempty" binding:"omitempty,min=0"`
	FeedCostPerChickenMonth *float64         `json:"feedCostPerChickenMonth,omitempty" binding:"omitempty,min=0"`
	HiveMaintenanceAnnual   *float64         `json:"hiveMaintenanceAnnual,omitempty" binding:"omitempty,min=0"`
	ClimateZone             *string          `json:"climateZone,omitempty"`
	ExperienceLevel         *ExperienceLevel `json:"experienceLevel,omitempty" binding:"omitempty,oneof=beginner intermediate advanced"`
	SeedBudget              *float64         `json:"seedBudget,omitempty" binding:"omitempty,min=0"`
	SpoilageRate            *float64         `json:"spoilageRate,omitempty" binding:"omitempty,min=0,max=1"`
	WeatherImpact           *Pressure        `json:"weatherImpact,omitempty" binding:"omitempty,oneof=low moderate high"`
	PestPressure            *Pressure        `json:"pestPressure,omitempty" binding:"omitempty,oneof=low moderate high"`
}

// Apply returns a copy of s with the non-nil patch fields set.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.NumberOfBeds != nil {
		s.NumberOfBeds = *p.NumberOfBeds
	}
	if p.BedLengthFeet != nil {
		s.BedLengthFeet = *p.BedLengthFeet
	}
	if p.BedWidthFeet != nil {
		s.BedWidthFeet = *p.BedWidthFeet
	}
	if p.MonthlyGroceryBudget != nil {
		s.MonthlyGroceryBudget = *p.MonthlyGroceryBudget
	}
	if p.LaborHourlyValue != nil {
		v := *p.LaborHourlyValue
		s.LaborHourlyValue = &v
	}
	if p.EggPricePerDozen != nil {
		s.EggPricePerDozen = *p.EggPricePerDozen
	}
	if p.HoneyPricePerLb != nil {
		s.HoneyPricePerLb = *p.HoneyPricePerLb
	}
	if p.FeedCostPerChickenMonth != nil {
		s.FeedCostPerChickenMonth = *p.FeedCostPerChickenMonth
	}
	if p.HiveMaintenanceAnnual != nil {
		s.HiveMaintenanceAnnual = *p.HiveMaintenanceAnnual
	}
	if p.ClimateZone != nil {
		s.ClimateZone = *p.ClimateZone
	}
	if p.ExperienceLevel != nil {
		s.ExperienceLevel = *p.ExperienceLevel
	}
	if p.SeedBudget != nil {
		v := *p.SeedBudget
		s.SeedBudget = &v
	}
	if p.SpoilageRate != nil {
		v := *p.SpoilageRate
		s.SpoilageRate = &v
	}
	if p.WeatherImpact != nil {
		s.WeatherImpact = *p.WeatherImpact
	}
	if p.PestPressure != nil {
		s.PestPressure = *p.PestPressure
	}
	return s
}

// Float returns a pointer to v, handy for optional fields.
func Float(v float64) *float64 {
	return &v
}
