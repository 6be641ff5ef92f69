package models

// StorageMethod names how a harvest is kept after picking.
type StorageMethod string

const (
	StorageFresh      StorageMethod = "fresh"
	StorageCanned     StorageMethod = "canned"
	StorageFrozen     StorageMethod = "frozen"
	StorageDried      StorageMethod = "dried"
	StorageRootCellar StorageMethod = "root-cellar"
	StorageFermented  StorageMethod = "fermented"
)

// Crop is a planted crop allocated to some number of bed units.
type Crop struct {
	ID              string  `json:"id" bson:"id" yaml:"id"`
	Name            string  `json:"name" bson:"name" yaml:"name"`
	Season          string  `json:"season" bson:"season" yaml:"season"`
	Beds            float64 `json:"beds" bson:"beds" yaml:"beds" binding:"min=0"`
	YieldPerBed     float64 `json:"yieldPerBed" bson:"yieldPerBed" yaml:"yieldPerBed" binding:"min=0"`
	Unit            string  `json:"unit" bson:"unit" yaml:"unit"`
	PricePerUnit    float64 `json:"pricePerUnit" bson:"pricePerUnit" yaml:"pricePerUnit"`
	CaloriesPerUnit float64 `json:"caloriesPerUnit" bson:"caloriesPerUnit" yaml:"caloriesPerUnit"`

	DaysToHarvest       *int          `json:"daysToHarvest,omitempty" bson:"daysToHarvest,omitempty" yaml:"daysToHarvest,omitempty"`
	HarvestWindowDays   *int          `json:"harvestWindowDays,omitempty" bson:"harvestWindowDays,omitempty" yaml:"harvestWindowDays,omitempty"`
	PlantingWindowStart string        `json:"plantingWindowStart,omitempty" bson:"plantingWindowStart,omitempty" yaml:"plantingWindowStart,omitempty"`
	PlantingWindowEnd   string        `json:"plantingWindowEnd,omitempty" bson:"plantingWindowEnd,omitempty" yaml:"plantingWindowEnd,omitempty"`
	WaterNeedsPerWeek   *float64      `json:"waterNeedsPerWeek,omitempty" bson:"waterNeedsPerWeek,omitempty" yaml:"waterNeedsPerWeek,omitempty"`
	LaborHoursPerBed    *float64      `json:"laborHoursPerBed,omitempty" bson:"laborHoursPerBed,omitempty" yaml:"laborHoursPerBed,omitempty"`
	StorageMethod       StorageMethod `json:"storageMethod,omitempty" bson:"storageMethod,omitempty" yaml:"storageMethod,omitempty"`
	ShelfLifeDays       *int          `json:"shelfLifeDays,omitempty" bson:"shelfLifeDays,omitempty" yaml:"shelfLifeDays,omitempty"`
}

// CropPatch is a partial crop update.
type CropPatch struct {
	Name                *string        `json:"name,omitempty"`
	Season              *string        `json:"season,omitempty"`
	Beds                *float64       `json:"beds,omitempty" binding:"omitempty,min=0"`
	YieldPerBed         *float64       `json:"yieldPerBed,omitempty" binding:"omitempty,min=0"`
	Unit                *string        `json:"unit,omitempty"`
	PricePerUnit        *float64       `json:"pricePerUnit,omitempty" binding:"omitempty,min=0"`
	CaloriesPerUnit     *float64       `json:"caloriesPerUnit,omitempty" binding:"omitempty,min=0"`
	DaysToHarvest       *int           `json:"daysToHarvest,omitempty" binding:"omitempty,min=0"`
	HarvestWindowDays   *int           `json:"harvestWindowDays,omitempty" binding:"omitempty,min=0"`
	PlantingWindowStart *string        `json:"plantingWindowStart,omitempty"`
	PlantingWindowEnd   *string        `json:"plantingWindowEnd,omitempty"`
	WaterNeedsPerWeek   *float64       `json:"waterNeedsPerWeek,omitempty" binding:"omitempty,min=0"`
	LaborHoursPerBed    *float64       `json:"laborHoursPerBed,omitempty" binding:"omitempty,min=0"`
	StorageMethod       *StorageMethod `json:"storageMethod,omitempty"`
	ShelfLifeDays       *int           `json:"shelfLifeDays,omitempty" binding:"omitempty,min=0"`
}

// Apply returns a copy of c with the non-nil patch fields set.
func (p CropPatch) Apply(c Crop) Crop {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Season != nil {
		c.Season = *p.Season
	}
	if p.Beds != nil {
		c.Beds = *p.Beds
	}
	if p.YieldPerBed != nil {
		c.YieldPerBed = *p.YieldPerBed
	}
	if p.Unit != nil {
		c.Unit = *p.Unit
	}
	if p.PricePerUnit != nil {
		c.PricePerUnit = *p.PricePerUnit
	}
	if p.CaloriesPerUnit != nil {
		c.CaloriesPerUnit = *p.CaloriesPerUnit
	}
	if p.DaysToHarvest != nil {
		v := *p.DaysToHarvest
		c.DaysToHarvest = &v
	}
	if p.HarvestWindowDays != nil {
		v := *p.HarvestWindowDays
		c.HarvestWindowDays = &v
	}
	if p.PlantingWindowStart != nil {
		c.PlantingWindowStart = *p.PlantingWindowStart
	}
	if p.PlantingWindowEnd != nil {
		c.PlantingWindowEnd = *p.PlantingWindowEnd
	}
	if p.WaterNeedsPerWeek != nil {
		v := *p.WaterNeedsPerWeek
		c.WaterNeedsPerWeek = &v
	}
	if p.LaborHoursPerBed != nil {
		v := *p.LaborHoursPerBed
		c.LaborHoursPerBed = &v
	}
	if p.StorageMethod != nil {
		c.StorageMethod = *p.StorageMethod
	}
	if p.ShelfLifeDays != nil {
		v := *p.ShelfLifeDays
		c.ShelfLifeDays = &v
	}
	return c
}

// PlantingWindow is a "Mon D" formatted sowing window, e.g. "Mar 15".
type PlantingWindow struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// HarvestWindow describes when a crop matures and how long it keeps producing.
type HarvestWindow struct {
	DaysToHarvest     int `json:"daysToHarvest" yaml:"daysToHarvest"`
	HarvestPeriodDays int `json:"harvestPeriodDays" yaml:"harvestPeriodDays"`
}

// GrowingRequirements captures per-bed growing needs.
type GrowingRequirements struct {
	WaterGallonsPerWeek float64 `json:"waterGallonsPerWeek" yaml:"waterGallonsPerWeek"`
	Sun                 string  `json:"sun" yaml:"sun"`
	SpacingInches       float64 `json:"spacingInches" yaml:"spacingInches"`
	RowSpacingInches    float64 `json:"rowSpacingInches" yaml:"rowSpacingInches"`
}

// PreservationRatio converts fresh produce into preserved output,
// e.g. 10 lbs tomatoes -> 7 quarts sauce.
type PreservationRatio struct {
	InputAmount  float64 `json:"inputAmount" yaml:"inputAmount"`
	InputUnit    string  `json:"inputUnit,omitempty" yaml:"inputUnit,omitempty"`
	OutputAmount float64 `json:"outputAmount" yaml:"outputAmount"`
	OutputUnit   string  `json:"outputUnit,omitempty" yaml:"outputUnit,omitempty"`
}

// PreservationData lists how a catalog crop can be stored.
type PreservationData struct {
	StorageMethods []StorageMethod   `json:"storageMethods" yaml:"storageMethods"`
	ShelfLifeDays  int               `json:"shelfLifeDays" yaml:"shelfLifeDays"`
	Ratio          PreservationRatio `json:"ratio" yaml:"ratio"`
}

// CropData is a catalog entry with realistic growing data for zone 6-7.
type CropData struct {
	ID             string              `json:"id" yaml:"id"`
	Name           string              `json:"name" yaml:"name"`
	Category       string              `json:"category" yaml:"category"`
	Season         string              `json:"season" yaml:"season"`
	PlantingWindow PlantingWindow      `json:"plantingWindow" yaml:"plantingWindow"`
	HarvestWindow  HarvestWindow       `json:"harvestWindow" yaml:"harvestWindow"`
	YieldLow       float64             `json:"yieldPerBedLow" yaml:"yieldPerBedLow"`
	YieldAverage   float64             `json:"yieldPerBedAverage" yaml:"yieldPerBedAverage"`
	YieldHigh      float64             `json:"yieldPerBedHigh" yaml:"yieldPerBedHigh"`
	Unit           string              `json:"unit" yaml:"unit"`
	PricePerUnit   float64             `json:"pricePerUnit" yaml:"pricePerUnit"`
	CaloriesPer    float64             `json:"caloriesPerUnit" yaml:"caloriesPerUnit"`
	Requirements   GrowingRequirements `json:"requirements" yaml:"requirements"`
	Preservation   PreservationData    `json:"preservation" yaml:"preservation"`
	LaborHours     float64             `json:"laborHoursPerBed" yaml:"laborHoursPerBed"`
	Companions     []string            `json:"companionPlants,omitempty" yaml:"companionPlants,omitempty"`
	Avoid          []string            `json:"avoidPlants,omitempty" yaml:"avoidPlants,omitempty"`
	Notes          string              `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ToCrop turns a catalog entry into a plantable crop using the average yield.
func (d CropData) ToCrop(beds float64) Crop {
	days := d.HarvestWindow.DaysToHarvest
	window := d.HarvestWindow.HarvestPeriodDays
	water := d.Requirements.WaterGallonsPerWeek
	labor := d.LaborHours
	shelf := d.Preservation.ShelfLifeDays

	crop := Crop{
		ID:                  d.ID,
		Name:                d.Name,
		Season:              d.Season,
		Beds:                beds,
		YieldPerBed:         d.YieldAverage,
		Unit:                d.Unit,
		PricePerUnit:        d.PricePerUnit,
		CaloriesPerUnit:     d.CaloriesPer,
		DaysToHarvest:       &days,
		HarvestWindowDays:   &window,
		PlantingWindowStart: d.PlantingWindow.Start,
		PlantingWindowEnd:   d.PlantingWindow.End,
		WaterNeedsPerWeek:   &water,
		LaborHoursPerBed:    &labor,
		ShelfLifeDays:       &shelf,
	}
	if len(d.Preservation.StorageMethods) > 0 {
		crop.StorageMethod = d.Preservation.StorageMethods[0]
	}
	return crop
}
