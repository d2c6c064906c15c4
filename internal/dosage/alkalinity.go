package dosage

import "fmt"

// Alkalinity computes the dose that raises total alkalinity from
// CurrentValue to TargetValue ppm.
func Alkalinity(req Request) Result {
	m := req.messages()
	product := req.product()
	current, target, volume := req.CurrentValue, req.TargetValue, req.VolumeLiters

	if target <= current {
		return Result{
			Amount: 0,
			Unit:   Grams,
			Notes:  m.AlkalinityAtTarget,
			CalculationDetails: map[string]any{
				"current": current,
				"target":  target,
			},
		}
	}

	increase := target - current
	factor := product.alkalinityFactor()

	gallons := volume * gallonsPerLiter
	amount := (gallons / 10000) * (increase / 10) * factor
	amount, unit := normalizeMagnitude(amount, Grams)
	formula := fmt.Sprintf("Pool standard: (%s/10000) * (%s/10) * %sg",
		formatNumber(round(gallons, 0)), formatNumber(increase), formatNumber(factor))

	return Result{
		Amount: amount,
		Unit:   unit,
		Notes:  m.dose(amount, unit, product),
		CalculationDetails: map[string]any{
			"current":        current,
			"target":         target,
			"increase":       increase,
			"volume_liters":  volume,
			"volume_gallons": round(gallons, 2),
			"formula_used":   formula,
		},
	}
}
