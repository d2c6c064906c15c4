package dosage

import (
	"fmt"
	"math"
)

// pH changes smaller than this are treated as already on target.
const phTolerance = 0.1

// PH computes the dose that moves the pH from CurrentValue to TargetValue.
// The direction of the change selects the product factor.
func PH(req Request) Result {
	m := req.messages()
	product := req.product()
	current, target, volume := req.CurrentValue, req.TargetValue, req.VolumeLiters

	if math.Abs(target-current) < phTolerance {
		return Result{
			Amount: 0,
			Unit:   Grams,
			Notes:  m.PHInRange,
			CalculationDetails: map[string]any{
				"current": current,
				"target":  target,
			},
		}
	}

	change := target - current
	raise := change > 0
	factor := product.phFactor(raise)

	gallons := volume * gallonsPerLiter
	amount := (gallons / 10000) * (math.Abs(change) / 0.2) * factor
	amount, unit := normalizeMagnitude(amount, product.doseUnit(KindPH))
	formula := fmt.Sprintf("Pool standard: (%s/10000) * (%s/0.2) * %s",
		formatNumber(round(gallons, 0)), formatNumber(math.Abs(change)), formatNumber(factor))

	return Result{
		Amount: amount,
		Unit:   unit,
		Notes:  m.phDose(amount, unit, product, raise),
		CalculationDetails: map[string]any{
			"current":        current,
			"target":         target,
			"change":         change,
			"volume_liters":  volume,
			"volume_gallons": round(gallons, 2),
			"formula_used":   formula,
		},
	}
}
