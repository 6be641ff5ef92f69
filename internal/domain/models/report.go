package models

import "time"

// PlanSnapshot is the weekly record of the plan's headline metrics stored in MongoDB.
type PlanSnapshot struct {
	Date              time.Time `bson:"date" json:"date"`
	GardenValue       float64   `bson:"garden_value" json:"garden_value"`
	GardenCalories    float64   `bson:"garden_calories" json:"garden_calories"`
	LivestockNetValue float64   `bson:"livestock_net_value" json:"livestock_net_value"`
	LivestockCalories float64   `bson:"livestock_calories" json:"livestock_calories"`
	AnnualCosts       float64   `bson:"annual_costs" json:"annual_costs"`
	NetValue          float64   `bson:"net_value" json:"net_value"`
	ROIPercent        float64   `bson:"roi_percent" json:"roi_percent"`
	BreakEvenMonths   *int      `bson:"break_even_months,omitempty" json:"break_even_months,omitempty"`
	FoodSecurityScore int       `bson:"food_security_score" json:"food_security_score"`
	DaysOfFood        int       `bson:"days_of_food" json:"days_of_food"`
	LaborHoursLogged  float64   `bson:"labor_hours_logged" json:"labor_hours_logged"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}
