package models

import "time"

// StoreName keys the persisted homestead document.
const StoreName = "homestead-store"

// BedGridCells is the number of planting cells in every bed's layout grid.
const BedGridCells = 32

// HomesteadState is the whole planner document: everything the dashboard reads.
type HomesteadState struct {
	Settings  Settings        `json:"settings" bson:"settings"`
	Crops     []Crop          `json:"crops" bson:"crops"`
	Livestock []LivestockItem `json:"livestock" bson:"livestock"`
	Beds      []GardenBed     `json:"beds" bson:"beds"`
	Labor     []LaborEntry    `json:"labor" bson:"labor"`
	Meals     []Meal          `json:"meals" bson:"meals"`
	Pantry    []PantryItem    `json:"pantry" bson:"pantry"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Clone returns a deep copy. Nil lists come back empty so they encode as [].
func (s HomesteadState) Clone() HomesteadState {
	out := s
	out.Crops = cloneSlice(s.Crops)
	out.Livestock = cloneSlice(s.Livestock)
	out.Labor = cloneSlice(s.Labor)
	out.Pantry = cloneSlice(s.Pantry)

	out.Beds = make([]GardenBed, len(s.Beds))
	for i, bed := range s.Beds {
		out.Beds[i] = GardenBed{
			ID:    bed.ID,
			Crops: cloneSlice(bed.Crops),
			Grid:  cloneSlice(bed.Grid),
		}
	}

	out.Meals = make([]Meal, len(s.Meals))
	for i, meal := range s.Meals {
		meal.Ingredients = cloneSlice(meal.Ingredients)
		out.Meals[i] = meal
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// GardenBed is one physical bed. Grid holds a crop id per cell, "" when empty.
type GardenBed struct {
	ID    string   `json:"id" bson:"id"`
	Crops []string `json:"crops" bson:"crops"`
	Grid  []string `json:"grid" bson:"grid"`
}

// NewGardenBed returns a bed with an empty grid.
func NewGardenBed(id string) GardenBed {
	return GardenBed{ID: id, Crops: []string{}, Grid: make([]string, BedGridCells)}
}

// LaborEntry is one logged block of work.
type LaborEntry struct {
	ID       string  `json:"id" bson:"id"`
	Category string  `json:"category" bson:"category" binding:"required"`
	Task     string  `json:"task" bson:"task" binding:"required"`
	Hours    float64 `json:"hours" bson:"hours" binding:"gt=0"`
	Date     string  `json:"date" bson:"date" binding:"required"`
	Notes    string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// LaborPatch is a partial labor entry update.
type LaborPatch struct {
	Category *string  `json:"category,omitempty"`
	Task     *string  `json:"task,omitempty"`
	Hours    *float64 `json:"hours,omitempty" binding:"omitempty,gt=0"`
	Date     *string  `json:"date,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// Apply returns a copy of e with the non-nil patch fields set.
func (p LaborPatch) Apply(e LaborEntry) LaborEntry {
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Task != nil {
		e.Task = *p.Task
	}
	if p.Hours != nil {
		e.Hours = *p.Hours
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	return e
}

// MealIngredient links a meal to a crop or a livestock product.
type MealIngredient struct {
	CropID      string  `json:"cropId,omitempty" bson:"cropId,omitempty"`
	LivestockID string  `json:"livestockId,omitempty" bson:"livestockId,omitempty"`
	Amount      float64 `json:"amount" bson:"amount"`
	Unit        string  `json:"unit" bson:"unit"`
}

// Meal is a planned dish with its estimated cost and calories.
type Meal struct {
	ID                string           `json:"id" bson:"id"`
	Name              string           `json:"name" bson:"name"`
	Description       string           `json:"description,omitempty" bson:"description,omitempty"`
	Ingredients       []MealIngredient `json:"ingredients" bson:"ingredients"`
	EstimatedCost     float64          `json:"estimatedCost" bson:"estimatedCost"`
	EstimatedCalories float64          `json:"estimatedCalories" bson:"estimatedCalories"`
}

// PantrySource records where a pantry item came from.
type PantrySource string

const (
	PantryGarden    PantrySource = "garden"
	PantryLivestock PantrySource = "livestock"
	PantryStore     PantrySource = "store"
)

// PantryItem is stored food on hand.
type PantryItem struct {
	ID                string       `json:"id" bson:"id"`
	Name              string       `json:"name" bson:"name"`
	Source            PantrySource `json:"source" bson:"source"`
	Unit              string       `json:"unit" bson:"unit"`
	Quantity          float64      `json:"quantity" bson:"quantity"`
	CaloriesPerUnit   *float64     `json:"caloriesPerUnit,omitempty" bson:"caloriesPerUnit,omitempty"`
	CostPerUnit       *float64     `json:"costPerUnit,omitempty" bson:"costPerUnit,omitempty"`
	LinkedCropID      string       `json:"linkedCropId,omitempty" bson:"linkedCropId,omitempty"`
	LinkedLivestockID string       `json:"linkedLivestockId,omitempty" bson:"linkedLivestockId,omitempty"`
}
