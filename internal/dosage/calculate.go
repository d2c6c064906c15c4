package dosage

import (
	"fmt"

	"poolbalance/internal/validator"
)

var calculators = map[Kind]func(Request) Result{
	KindDisinfectant: Disinfectant,
	KindPH:           PH,
	KindAlkalinity:   Alkalinity,
	KindStabilizer:   Stabilizer,
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validator {
	v := validator.NewValidator()
	v.Register(validator.NewCalculationValidationRules()...)
	return v
}

// Calculate validates req and runs it through the formula selected by its
// calculation type. Nothing is computed when validation fails.
func Calculate(req Request) (Result, error) {
	kind, err := validate(req)
	if err != nil {
		return Result{}, err
	}
	return calculators[kind](req), nil
}

// Validate checks req without computing anything.
func Validate(req Request) error {
	_, err := validate(req)
	return err
}

func validate(req Request) (Kind, error) {
	kind, err := ParseKind(req.CalculationType)
	if err != nil {
		return "", err
	}

	if err := requestValidator.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// The dilution share is a fraction of the current level.
	if kind == KindStabilizer && req.product() == FreshWaterDilution && req.CurrentValue <= 0 {
		return "", fmt.Errorf("%w: current_value must be greater than 0 for dilution", ErrInvalidInput)
	}

	return kind, nil
}
