package models

// Well-known livestock ids seeded into a fresh homestead.
const (
	LivestockChickens = "chickens"
	LivestockBees     = "bees"
)

// LivestockItem is a group of animals (or hives) producing a single product.
type LivestockItem struct {
	ID                      string  `json:"id" bson:"id" yaml:"id"`
	Name                    string  `json:"name" bson:"name" yaml:"name" binding:"required"`
	Count                   float64 `json:"count" bson:"count" yaml:"count" binding:"min=0"`
	Unit                    string  `json:"unit" bson:"unit" yaml:"unit"`
	AnnualProductionPerUnit float64 `json:"annualProductionPerUnit" bson:"annualProductionPerUnit" yaml:"annualProductionPerUnit"`
	PricePerUnit            float64 `json:"pricePerUnit" bson:"pricePerUnit" yaml:"pricePerUnit"`
	AnnualCostPerUnit       float64 `json:"annualCostPerUnit" bson:"annualCostPerUnit" yaml:"annualCostPerUnit"`
	CaloriesPerUnit         float64 `json:"caloriesPerUnit" bson:"caloriesPerUnit" yaml:"caloriesPerUnit"`
}

// LivestockPatch is a partial livestock update.
type LivestockPatch struct {
	Name                    *string  `json:"name,omitempty"`
	Count                   *float64 `json:"count,omitempty" binding:"omitempty,min=0"`
	Unit                    *string  `json:"unit,omitempty"`
	AnnualProductionPerUnit *float64 `json:"annualProductionPerUnit,omitempty" binding:"omitempty,min=0"`
	PricePerUnit            *float64 `json:"pricePerUnit,omitempty" binding:"omitempty,min=0"`
	AnnualCostPerUnit       *float64 `json:"annualCostPerUnit,omitempty" binding:"omitempty,min=0"`
	CaloriesPerUnit         *float64 `json:"caloriesPerUnit,omitempty" binding:"omitempty,min=0"`
}

// Apply returns a copy of l with the non-nil patch fields set.
func (p LivestockPatch) Apply(l LivestockItem) LivestockItem {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Count != nil {
		l.Count = *p.Count
	}
	if p.Unit != nil {
		l.Unit = *p.Unit
	}
	if p.AnnualProductionPerUnit != nil {
		l.AnnualProductionPerUnit = *p.AnnualProductionPerUnit
	}
	if p.PricePerUnit != nil {
		l.PricePerUnit = *p.PricePerUnit
	}
	if p.AnnualCostPerUnit != nil {
		l.AnnualCostPerUnit = *p.AnnualCostPerUnit
	}
	if p.CaloriesPerUnit != nil {
		l.CaloriesPerUnit = *p.CaloriesPerUnit
	}
	return l
}

// LivestockOverride scales one livestock group's production down and its
// costs up, both as fractions (0.2 = 20%).
type LivestockOverride struct {
	ProductionReduction float64 `json:"productionReduction"`
	CostIncrease        float64 `json:"costIncrease"`
}
