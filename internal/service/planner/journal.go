package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

// AddLabor logs a block of work.
func (s *Service) AddLabor(ctx context.Context, entry models.LaborEntry) (models.LaborEntry, error) {
	if entry.Hours <= 0 || strings.TrimSpace(entry.Task) == "" {
		return models.LaborEntry{}, fmt.Errorf("labor entry needs a task and positive hours: %w", ErrInvalidInput)
	}

	_, err := s.mutate(ctx, "add labor", func(st *models.HomesteadState) error {
		id, err := s.id()
		if err != nil {
			return err
		}
		entry.ID = id
		st.Labor = append(st.Labor, entry)
		return nil
	})
	if err != nil {
		return models.LaborEntry{}, err
	}
	return entry, nil
}

// UpdateLabor patches a labor entry.
func (s *Service) UpdateLabor(ctx context.Context, id string, patch models.LaborPatch) (models.LaborEntry, error) {
	var updated models.LaborEntry
	_, err := s.mutate(ctx, "update labor", func(st *models.HomesteadState) error {
		for i := range st.Labor {
			if st.Labor[i].ID == id {
				st.Labor[i] = patch.Apply(st.Labor[i])
				updated = st.Labor[i]
				return nil
			}
		}
		return fmt.Errorf("labor entry %q: %w", id, ErrNotFound)
	})
	return updated, err
}

// RemoveLabor deletes a labor entry.
func (s *Service) RemoveLabor(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "remove labor", func(st *models.HomesteadState) error {
		for i := range st.Labor {
			if st.Labor[i].ID == id {
				st.Labor = append(st.Labor[:i], st.Labor[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("labor entry %q: %w", id, ErrNotFound)
	})
	return err
}

// LaborLog totals logged hours overall and per category.
type LaborLog struct {
	TotalHours float64            `json:"totalHours"`
	ByCategory map[string]float64 `json:"byCategory"`
}

func laborLog(entries []models.LaborEntry) LaborLog {
	log := LaborLog{ByCategory: make(map[string]float64)}
	for _, e := range entries {
		log.TotalHours += e.Hours
		log.ByCategory[e.Category] += e.Hours
	}
	return log
}

// NewMealRequest describes a meal to plan.
type NewMealRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	Ingredients []models.MealIngredient `json:"ingredients" binding:"required,min=1"`
}

// AddMeal plans a meal, estimating cost and calories from the linked crops
// and livestock products.
func (s *Service) AddMeal(ctx context.Context, req NewMealRequest) (models.Meal, error) {
	if strings.TrimSpace(req.Name) == "" || len(req.Ingredients) == 0 {
		return models.Meal{}, fmt.Errorf("meal needs a name and ingredients: %w", ErrInvalidInput)
	}

	var meal models.Meal
	_, err := s.mutate(ctx, "add meal", func(st *models.HomesteadState) error {
		meal = models.Meal{Name: req.Name, Description: req.Description}

		for _, ing := range req.Ingredients {
			if ing.Amount <= 0 {
				return fmt.Errorf("ingredient amount must be positive: %w", ErrInvalidInput)
			}

			price, calories, unit, err := ingredientRates(st, ing)
			if err != nil {
				return err
			}
			if ing.Unit == "" {
				ing.Unit = unit
			}

			meal.EstimatedCost += ing.Amount * price
			meal.EstimatedCalories += ing.Amount * calories
			meal.Ingredients = append(meal.Ingredients, ing)
		}

		id, err := s.id()
		if err != nil {
			return err
		}
		meal.ID = id
		st.Meals = append(st.Meals, meal)
		return nil
	})
	if err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

func ingredientRates(st *models.HomesteadState, ing models.MealIngredient) (price, calories float64, unit string, err error) {
	switch {
	case ing.CropID != "" && ing.LivestockID != "":
		return 0, 0, "", fmt.Errorf("ingredient links both a crop and livestock: %w", ErrInvalidInput)
	case ing.CropID != "":
		i := cropIndex(st.Crops, ing.CropID)
		if i < 0 {
			return 0, 0, "", fmt.Errorf("ingredient crop %q: %w", ing.CropID, ErrInvalidInput)
		}
		c := st.Crops[i]
		return c.PricePerUnit, c.CaloriesPerUnit, c.Unit, nil
	case ing.LivestockID != "":
		for _, l := range st.Livestock {
			if l.ID == ing.LivestockID {
				return l.PricePerUnit, l.CaloriesPerUnit, l.Unit, nil
			}
		}
		return 0, 0, "", fmt.Errorf("ingredient livestock %q: %w", ing.LivestockID, ErrInvalidInput)
	default:
		return 0, 0, "", fmt.Errorf("ingredient links nothing: %w", ErrInvalidInput)
	}
}

// InitializePantryFromProduction replaces the garden and livestock pantry
// items with one year of expected production. Store-bought items are kept.
func (s *Service) InitializePantryFromProduction(ctx context.Context) ([]models.PantryItem, error) {
	st, err := s.mutate(ctx, "initialize pantry", func(st *models.HomesteadState) error {
		pantry := make([]models.PantryItem, 0, len(st.Pantry))
		for _, item := range st.Pantry {
			if item.Source == models.PantryStore {
				pantry = append(pantry, item)
			}
		}

		garden := s.calc.GardenValue(st.Crops, st.Settings)
		for i, line := range garden.Breakdown {
			crop := st.Crops[i]
			id, err := s.id()
			if err != nil {
				return err
			}
			pantry = append(pantry, models.PantryItem{
				ID:              id,
				Name:            line.CropName,
				Source:          models.PantryGarden,
				Unit:            crop.Unit,
				Quantity:        line.Yield,
				CaloriesPerUnit: models.Float(crop.CaloriesPerUnit),
				CostPerUnit:     models.Float(crop.PricePerUnit),
				LinkedCropID:    crop.ID,
			})
		}

		herd := s.calc.LivestockMetrics(st.Livestock, nil)
		for i, line := range herd.Items {
			animal := st.Livestock[i]
			id, err := s.id()
			if err != nil {
				return err
			}
			pantry = append(pantry, models.PantryItem{
				ID:                id,
				Name:              line.Name,
				Source:            models.PantryLivestock,
				Unit:              animal.Unit,
				Quantity:          line.AnnualProduction,
				CaloriesPerUnit:   models.Float(animal.CaloriesPerUnit),
				CostPerUnit:       models.Float(animal.PricePerUnit),
				LinkedLivestockID: animal.ID,
			})
		}

		st.Pantry = pantry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st.Pantry, nil
}

// ConsumePantry takes amount off an item; quantities never go below zero.
func (s *Service) ConsumePantry(ctx context.Context, id string, amount float64) (models.PantryItem, error) {
	if amount <= 0 {
		return models.PantryItem{}, fmt.Errorf("consume amount must be positive: %w", ErrInvalidInput)
	}

	var item models.PantryItem
	_, err := s.mutate(ctx, "consume pantry", func(st *models.HomesteadState) error {
		for i := range st.Pantry {
			if st.Pantry[i].ID == id {
				st.Pantry[i].Quantity -= amount
				if st.Pantry[i].Quantity < 0 {
					st.Pantry[i].Quantity = 0
				}
				item = st.Pantry[i]
				return nil
			}
		}
		return fmt.Errorf("pantry item %q: %w", id, ErrNotFound)
	})
	return item, err
}

// PantryTotals values the pantry, counting only positive quantities.
type PantryTotals struct {
	Calories float64 `json:"calories"`
	Value    float64 `json:"value"`
	Items    int     `json:"items"`
}

func pantryTotals(items []models.PantryItem) PantryTotals {
	totals := PantryTotals{Items: len(items)}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if item.CaloriesPerUnit != nil {
			totals.Calories += *item.CaloriesPerUnit * item.Quantity
		}
		if item.CostPerUnit != nil {
			totals.Value += *item.CostPerUnit * item.Quantity
		}
	}
	return totals
}
