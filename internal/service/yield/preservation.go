package yield

import (
	"errors"
	"fmt"
	"math"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

// ErrInvalidRatio reports a preservation ratio whose input amount is not positive.
var ErrInvalidRatio = errors.New("invalid preservation ratio")

// PreservationPlan is what a harvest turns into under a recipe ratio.
type PreservationPlan struct {
	OutputQuantity float64 `json:"outputQuantity"`
	BatchesNeeded  int     `json:"batchesNeeded"`
}

// SupplyCost splits a recipe's supplies into reusable and consumable spend.
type SupplyCost struct {
	OneTimeCost    float64 `json:"oneTimeCost"`
	RecurringCost  float64 `json:"recurringCost"`
	TotalFirstTime float64 `json:"totalFirstTime"`
}

// PreservationNeeds converts yieldAmount through the ratio.
func PreservationNeeds(yieldAmount float64, ratio models.PreservationRatio) (PreservationPlan, error) {
	if ratio.InputAmount <= 0 {
		return PreservationPlan{}, fmt.Errorf("%w: input amount %v must be positive", ErrInvalidRatio, ratio.InputAmount)
	}

	batches := yieldAmount / ratio.InputAmount
	return PreservationPlan{
		OutputQuantity: batches * ratio.OutputAmount,
		BatchesNeeded:  int(math.Ceil(batches)),
	}, nil
}

// SupplyCosts prices one batch of a recipe.
func SupplyCosts(recipe models.PreservationRecipe) SupplyCost {
	var out SupplyCost
	for _, s := range recipe.Supplies {
		cost := s.Quantity * s.CostPer
		if s.Reusable {
			out.OneTimeCost += cost
		} else {
			out.RecurringCost += cost
		}
	}
	out.TotalFirstTime = out.OneTimeCost + out.RecurringCost
	return out
}
