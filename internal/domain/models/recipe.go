package models

// Supply is a consumable or reusable item needed to run a preservation batch.
type Supply struct {
	Item     string  `json:"item" yaml:"item"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
	CostPer  float64 `json:"costPer" yaml:"costPer"`
	Reusable bool    `json:"reusable" yaml:"reusable"`
}

// PreservationRecipe turns one batch of fresh produce into preserved food.
type PreservationRecipe struct {
	ID                    string   `json:"id" yaml:"id"`
	Name                  string   `json:"name" yaml:"name"`
	CropID                string   `json:"cropId" yaml:"cropId"`
	Method                string   `json:"method" yaml:"method"`
	InputAmount           float64  `json:"inputAmount" yaml:"inputAmount"`
	InputUnit             string   `json:"inputUnit" yaml:"inputUnit"`
	OutputAmount          float64  `json:"outputAmount" yaml:"outputAmount"`
	OutputUnit            string   `json:"outputUnit" yaml:"outputUnit"`
	JarSize               string   `json:"jarSize,omitempty" yaml:"jarSize,omitempty"`
	ContainerCount        int      `json:"containerCount,omitempty" yaml:"containerCount,omitempty"`
	Supplies              []Supply `json:"supplies" yaml:"supplies"`
	PrepTimeMinutes       int      `json:"prepTimeMinutes" yaml:"prepTimeMinutes"`
	ProcessingTimeMinutes int      `json:"processingTimeMinutes" yaml:"processingTimeMinutes"`
	Difficulty            string   `json:"difficulty" yaml:"difficulty"`
	Notes                 string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Ratio exposes the recipe's conversion ratio.
func (r PreservationRecipe) Ratio() PreservationRatio {
	return PreservationRatio{
		InputAmount:  r.InputAmount,
		InputUnit:    r.InputUnit,
		OutputAmount: r.OutputAmount,
		OutputUnit:   r.OutputUnit,
	}
}
