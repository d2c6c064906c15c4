package dosage

// Stabilizer computes either the granular cyanuric acid dose that raises
// the stabilizer level, or, for FreshWaterDilution, the volume of water to
// replace to lower it.
func Stabilizer(req Request) Result {
	if req.product() == FreshWaterDilution {
		return dilution(req)
	}

	m := req.messages()
	current, target, volume := req.CurrentValue, req.TargetValue, req.VolumeLiters

	if target <= current {
		return Result{
			Amount: 0,
			Unit:   Grams,
			Notes:  m.StabilizerAtTarget,
			CalculationDetails: map[string]any{
				"current": current,
				"target":  target,
			},
		}
	}

	increase := target - current
	amount := (volume / 1000) * (increase / 10) * stabilizerFactor
	amount, unit := normalizeMagnitude(amount, Grams)

	return Result{
		Amount: amount,
		Unit:   unit,
		Notes:  m.granularStabilizer(amount, unit),
		CalculationDetails: map[string]any{
			"current":  current,
			"target":   target,
			"increase": increase,
			"volume":   volume,
		},
	}
}

// dilution requires CurrentValue > 0, which Validate enforces before
// dispatch.
func dilution(req Request) Result {
	m := req.messages()
	current, target, volume := req.CurrentValue, req.TargetValue, req.VolumeLiters

	if target >= current {
		return Result{
			Amount: 0,
			Unit:   Liters,
			Notes:  m.DilutionCannotIncrease,
			CalculationDetails: map[string]any{
				"current": current,
				"target":  target,
			},
		}
	}

	reduction := current - target
	fraction := reduction / current
	water := volume * fraction

	return Result{
		Amount: round(water, 2),
		Unit:   Liters,
		Notes:  m.dilution(water, fraction),
		CalculationDetails: map[string]any{
			"current":                current,
			"target":                 target,
			"reduction_needed":       reduction,
			"volume":                 volume,
			"replacement_percentage": fraction,
		},
	}
}
