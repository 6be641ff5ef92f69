package yield

import "github.com/mamadbah2/homestead/internal/domain/models"

// LivestockResult is one livestock group's annual economics.
type LivestockResult struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AnnualProduction float64 `json:"annualProduction"`
	Value            float64 `json:"value"`
	Cost             float64 `json:"cost"`
	Net              float64 `json:"net"`
	Calories         float64 `json:"calories"`
}

// LivestockSummary totals all livestock groups.
type LivestockSummary struct {
	TotalProduction float64           `json:"totalProduction"`
	TotalValue      float64           `json:"totalValue"`
	TotalCost       float64           `json:"totalCost"`
	NetValue        float64           `json:"netValue"`
	TotalCalories   float64           `json:"totalCalories"`
	Items           []LivestockResult `json:"items"`
}

// LivestockMetrics computes production, value, cost and calories per group.
// Overrides are looked up by livestock id; groups without one pass through.
func (c *Calculator) LivestockMetrics(items []models.LivestockItem, overrides map[string]models.LivestockOverride) LivestockSummary {
	summary := LivestockSummary{Items: make([]LivestockResult, 0, len(items))}

	for _, item := range items {
		production := item.AnnualProductionPerUnit * item.Count
		cost := item.AnnualCostPerUnit * item.Count

		if o, ok := overrides[item.ID]; ok {
			production *= 1 - o.ProductionReduction
			cost *= 1 + o.CostIncrease
		}

		value := production * item.PricePerUnit
		res := LivestockResult{
			ID:               item.ID,
			Name:             item.Name,
			AnnualProduction: production,
			Value:            value,
			Cost:             cost,
			Net:              value - cost,
			Calories:         production * item.CaloriesPerUnit,
		}

		summary.TotalProduction += res.AnnualProduction
		summary.TotalValue += res.Value
		summary.TotalCost += res.Cost
		summary.TotalCalories += res.Calories
		summary.Items = append(summary.Items, res)
	}

	summary.NetValue = summary.TotalValue - summary.TotalCost
	return summary
}
