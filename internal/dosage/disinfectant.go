package dosage

const disinfectantFormula = "Standard pool chemical formula: (ppm_increase * volume_L) / (1000 * concentration_decimal)"

// Disinfectant computes the product dose that raises the disinfectant
// level from CurrentValue to TargetValue ppm.
func Disinfectant(req Request) Result {
	m := req.messages()
	product := req.product()
	current, target, volume := req.CurrentValue, req.TargetValue, req.VolumeLiters

	strength := product.strength()
	if req.Concentration != nil && *req.Concentration > 0 {
		strength = *req.Concentration
	}

	if target <= current {
		return Result{
			Amount: 0,
			Unit:   product.doseUnit(KindDisinfectant),
			Notes:  m.DisinfectantAtTarget,
			CalculationDetails: map[string]any{
				"current":    current,
				"target":     target,
				"difference": 0,
			},
		}
	}

	increase := target - current
	amount := (increase * volume) / (1000 * (strength / 100))
	amount, unit := normalizeMagnitude(amount, product.doseUnit(KindDisinfectant))

	return Result{
		Amount: amount,
		Unit:   unit,
		Notes:  m.dose(amount, unit, product),
		CalculationDetails: map[string]any{
			"current":       current,
			"target":        target,
			"increase":      increase,
			"volume":        volume,
			"concentration": strength,
			"formula_used":  disinfectantFormula,
		},
	}
}
