package calculator

import "poolbalance/internal/dosage"

// CalculationRequest is the JSON body for POST /api/calculate. Numeric
// fields are pointers so a missing value is told apart from zero.
type CalculationRequest struct {
	CalculationType      string   `json:"calculation_type"`
	CurrentValue         *float64 `json:"current_value" validate:"required"`
	TargetValue          *float64 `json:"target_value" validate:"required"`
	PoolVolumeLiters     *float64 `json:"pool_volume_liters" validate:"required"`
	ProductType          string   `json:"product_type"`
	ProductConcentration *float64 `json:"product_concentration,omitempty"`
	PoolID               string   `json:"pool_id,omitempty"`
	Language             string   `json:"language,omitempty"`
}

// BatchRequest is the JSON body for POST /api/calculate/batch. Entries are
// computed independently of each other.
type BatchRequest struct {
	Calculations []CalculationRequest `json:"calculations"`
}

// BatchResponse is the JSON response for POST /api/calculate/batch.
type BatchResponse struct {
	Results []dosage.Result `json:"results"`
}
