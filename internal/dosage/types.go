package dosage

import (
	"fmt"
	"strings"
)

// Kind selects which formula a Request is run through.
type Kind string

const (
	KindDisinfectant Kind = "disinfectant"
	KindPH           Kind = "ph"
	KindAlkalinity   Kind = "alkalinity"
	KindStabilizer   Kind = "stabilizer"
)

// Older clients send the chemical name instead of the kind.
var kindAliases = map[string]Kind{
	"chlorine":      KindDisinfectant,
	"cyanuric_acid": KindStabilizer,
}

// ParseKind resolves a calculation_type value by exact match against the
// known kinds and their aliases.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDisinfectant, KindPH, KindAlkalinity, KindStabilizer:
		return k, nil
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCalculationType, s)
}

// Unit is the display unit of a Result amount.
type Unit string

const (
	Milliliters Unit = "ml"
	Liters      Unit = "L"
	Grams       Unit = "g"
	Kilograms   Unit = "kg"
)

// Request is a normalized calculation request. Values are in the native
// scale of the measurement: ppm, or pH units for KindPH.
type Request struct {
	CalculationType string  `json:"calculation_type"`
	CurrentValue    float64 `json:"current_value" validate:"finite,gte=0"`
	TargetValue     float64 `json:"target_value" validate:"finite,gte=0"`
	VolumeLiters    float64 `json:"pool_volume_liters" validate:"finite,gt=0"`
	ProductType     string  `json:"product_type" validate:"required"`

	// Concentration overrides the product's default strength, in percent.
	Concentration *float64 `json:"product_concentration,omitempty" validate:"omitempty,finite,gt=0,lte=100"`

	// PoolID is carried for the caller's reference only.
	PoolID string `json:"pool_id,omitempty"`

	// Language selects the notes catalog. Empty means DefaultLanguage.
	Language string `json:"language,omitempty"`
}

// Result is the dose for a single Request.
type Result struct {
	Amount             float64        `json:"amount"`
	Unit               Unit           `json:"unit"`
	Notes              string         `json:"notes"`
	CalculationDetails map[string]any `json:"calculation_details"`
}

func (r Request) messages() Messages {
	return MessagesFor(strings.ToLower(r.Language))
}

func (r Request) product() ProductID {
	return ProductID(r.ProductType)
}
